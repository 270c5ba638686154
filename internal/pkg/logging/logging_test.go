package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/ferdiebergado/tokenecho/internal/pkg/logging"
)

//nolint:paralleltest //SetupLogger replaces the default logger.
func TestSetupLogger(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	tests := []struct {
		name, env, level string
		json             bool
		debug, warn      bool
	}{
		{"Development text output", "development", "info", false, false, true},
		{"Production JSON output", "production", "", true, false, true},
		{"Debug level", "development", "debug", false, true, true},
		{"Error level", "production", "ERROR", true, false, false},
		{"Unknown level falls back to info", "development", "verbose", false, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := logging.SetupLogger(tt.env, tt.level, &buf)

			if slog.Default() != logger {
				t.Error("SetupLogger did not install the default logger")
			}

			ctx := context.Background()
			if got := logger.Enabled(ctx, slog.LevelDebug); got != tt.debug {
				t.Errorf("logger.Enabled(debug) = %t, want: %t", got, tt.debug)
			}
			if got := logger.Enabled(ctx, slog.LevelWarn); got != tt.warn {
				t.Errorf("logger.Enabled(warn) = %t, want: %t", got, tt.warn)
			}

			logger.Error("boom")
			line := strings.TrimSpace(buf.String())
			if got := json.Valid([]byte(line)); got != tt.json {
				t.Errorf("json.Valid(%q) = %t, want: %t", line, got, tt.json)
			}
		})
	}
}

//nolint:paralleltest //SetupLogger replaces the default logger.
func TestSetupLogger_RedactsCredentials(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	const secret = "eyJzdWIiOjF9.c2ln"

	for _, env := range []string{"development", "production"} {
		var buf bytes.Buffer
		logger := logging.SetupLogger(env, "debug", &buf)

		logger.Info("request",
			"Authorization", "Bearer "+secret,
			slog.Group("auth", "token", secret),
			"path", "/echo",
		)

		out := buf.String()
		if strings.Contains(out, secret) {
			t.Errorf("%s log output = %q, must not contain the token", env, out)
		}

		if !strings.Contains(out, "/echo") {
			t.Errorf("%s log output = %q, want it to keep other attributes", env, out)
		}
	}
}
