package notify

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

// Telegram sends announcements to one group chat.
type Telegram struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger *logrus.Logger
}

func NewTelegram(token string, chatID int64, logger *logrus.Logger) (*Telegram, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}
	logger.Infof("Telegram notifier authorized as @%s", bot.Self.UserName)
	return &Telegram{bot: bot, chatID: chatID, logger: logger}, nil
}

// Notify sends in the background and never blocks the caller. Failures are logged.
func (t *Telegram) Notify(_ context.Context, text string) error {
	msg := tgbotapi.NewMessage(t.chatID, text)
	msg.DisableWebPagePreview = true

	go func() {
		if _, err := t.bot.Send(msg); err != nil {
			t.logger.WithError(err).WithField("chat_id", t.chatID).Warn("failed to send telegram notification")
		}
	}()
	return nil
}
