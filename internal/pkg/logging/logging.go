package logging

import (
	"io"
	"log/slog"
	"strings"
)

const (
	envProduction = "production"
	redacted      = "[REDACTED]"
)

// sensitiveKeys are attribute keys whose values never reach the log output.
var sensitiveKeys = []string{"authorization", "token", "signing_key"}

// SetupLogger installs the default slog logger: text output during
// development and JSON in production. Credential-bearing attributes are
// redacted.
func SetupLogger(appEnv, logLevel string, out io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:       stringToLogLevel(logLevel),
		ReplaceAttr: redact,
	}

	var handler slog.Handler = slog.NewTextHandler(out, opts)

	if appEnv == envProduction {
		handler = slog.NewJSONHandler(out, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

func stringToLogLevel(levelStr string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(levelStr)) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARNING", "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func redact(_ []string, a slog.Attr) slog.Attr {
	if a.Value.Kind() == slog.KindGroup {
		return a
	}

	for _, key := range sensitiveKeys {
		if strings.EqualFold(a.Key, key) {
			return slog.String(a.Key, redacted)
		}
	}
	return a
}
