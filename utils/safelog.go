// utils/safelog.go
// ============================================================================
// SAFE LOGGING - masks personal data and credentials in production
// ============================================================================

package utils

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

// ============================================================================
// CONFIGURATION
// ============================================================================

var (
	// Logger is the process-wide structured logger.
	Logger = newLogger("info")

	// IsProduction enables masking of sensitive values.
	IsProduction = false

	secretsMu sync.RWMutex
	secrets   []string
)

func newLogger(level string) *logrus.Logger {
	logger := logrus.New()

	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logger.SetOutput(os.Stdout)

	return logger
}

// InitLogger configures the shared logger. Production switches to JSON output
// and turns masking on.
func InitLogger(level string, production bool) *logrus.Logger {
	Logger = newLogger(level)
	IsProduction = production
	if production {
		Logger.SetFormatter(&logrus.JSONFormatter{})
	}
	return Logger
}

// RegisterSecret makes MaskString hide every occurrence of s, e.g. the group invite code.
func RegisterSecret(s string) {
	if strings.TrimSpace(s) == "" {
		return
	}
	secretsMu.Lock()
	defer secretsMu.Unlock()
	secrets = append(secrets, s)
}

// ============================================================================
// MASKING PATTERNS
// ============================================================================

var (
	bearerRegex = regexp.MustCompile(`(?i)bearer\s+[A-Za-z0-9\-_.]+`)
	jwtRegex    = regexp.MustCompile(`eyJ[A-Za-z0-9\-_]+\.[A-Za-z0-9\-_]+\.[A-Za-z0-9\-_]+`)
	uuidRegex   = regexp.MustCompile(`[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}`)
)

// MaskString hides tokens, registered secrets and full UUIDs.
func MaskString(input string) string {
	if !IsProduction {
		return input
	}

	result := bearerRegex.ReplaceAllString(input, "Bearer ***")
	result = jwtRegex.ReplaceAllString(result, "***jwt***")

	secretsMu.RLock()
	for _, s := range secrets {
		result = strings.ReplaceAll(result, s, "***")
	}
	secretsMu.RUnlock()

	return uuidRegex.ReplaceAllStringFunc(result, shortenID)
}

// MaskID keeps the first 8 characters of an identifier.
func MaskID(id string) string {
	if !IsProduction {
		return id
	}
	return shortenID(id)
}

// MaskName keeps only the first letter of a display name.
func MaskName(name string) string {
	if !IsProduction {
		return name
	}
	if name == "" {
		return "***"
	}
	return string([]rune(name)[:1]) + "***"
}

func shortenID(id string) string {
	if len(id) > 8 {
		return id[:8] + "..."
	}
	return "***"
}

// ============================================================================
// SAFE LOGGING
// ============================================================================

func SafeDebug(format string, args ...interface{}) {
	Logger.Debug(MaskString(fmt.Sprintf(format, args...)))
}

func SafeInfo(format string, args ...interface{}) {
	Logger.Info(MaskString(fmt.Sprintf(format, args...)))
}

func SafeWarn(format string, args ...interface{}) {
	Logger.Warn(MaskString(fmt.Sprintf(format, args...)))
}

func SafeError(format string, args ...interface{}) {
	Logger.Error(MaskString(fmt.Sprintf(format, args...)))
}

// ============================================================================
// DOMAIN LOGGING
// ============================================================================

// LogAuthAction logs a signup/signin attempt without leaking names in production.
func LogAuthAction(action string, name string, success bool) {
	entry := Logger.WithFields(logrus.Fields{
		"component": "auth",
		"action":    action,
		"name":      MaskName(name),
		"success":   success,
	})
	if success {
		entry.Info("auth action")
		return
	}
	entry.Warn("auth action")
}

// LogTripAction logs a mutation on trip content.
func LogTripAction(action string, tripID string, userID string) {
	Logger.WithFields(logrus.Fields{
		"component": "trip",
		"action":    action,
		"trip_id":   MaskID(tripID),
		"user_id":   MaskID(userID),
	}).Info("trip action")
}

// LogAPIRequest logs a finished HTTP request.
func LogAPIRequest(method string, path string, userID string, statusCode int, duration string) {
	Logger.WithFields(logrus.Fields{
		"component": "api",
		"method":    method,
		"path":      MaskString(path),
		"user_id":   MaskID(userID),
		"status":    statusCode,
		"duration":  duration,
	}).Info("request")
}

// LogWebSocket logs a websocket lifecycle event.
func LogWebSocket(action string, tripID string, userID string) {
	Logger.WithFields(logrus.Fields{
		"component": "ws",
		"action":    action,
		"trip_id":   MaskID(tripID),
		"user_id":   MaskID(userID),
	}).Info("websocket")
}

// LogStartup logs the startup banner.
func LogStartup(appName string, version string, port string) {
	mode := "development"
	if IsProduction {
		mode = "production"
	}
	Logger.WithFields(logrus.Fields{
		"version": version,
		"mode":    mode,
		"port":    port,
		"level":   Logger.GetLevel().String(),
	}).Infof("%s starting", appName)
}
