// Package notify posts short announcements to the group's chat.
package notify

import "context"

// Notifier announces changes to the travelling group.
type Notifier interface {
	Notify(ctx context.Context, text string) error
}

// Nop discards every announcement. It is used when no chat is configured.
type Nop struct{}

func (Nop) Notify(context.Context, string) error { return nil }
