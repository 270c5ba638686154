package env_test

import (
	"testing"

	"github.com/ferdiebergado/tokenecho/internal/pkg/env"
)

func TestEnv(t *testing.T) {
	const fallback = "example.com"

	tests := []struct {
		name, envVar, envVal, fallback, val string
		set                                 bool
	}{
		{"EnvVar is set", "HOST", "localhost", fallback, "localhost", true},
		{"EnvVar is set but empty", "HOST", "", fallback, "", true},
		{"EnvVar is not set", "TOKENECHO_UNSET_HOST", "", fallback, fallback, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.set {
				t.Setenv(tc.envVar, tc.envVal)
			}
			val := env.Env(tc.envVar, tc.fallback)

			if val != tc.val {
				t.Errorf("env.Env(%q, %q) = %q, want: %q", tc.envVar, tc.fallback, val, tc.val)
			}
		})
	}
}

func TestInt(t *testing.T) {
	const fallback = 3000

	tests := []struct {
		name, envVal string
		set          bool
		want         int
	}{
		{"Number", "8080", true, 8080},
		{"Not a number", "eighty", true, fallback},
		{"Empty", "", true, fallback},
		{"Unset", "", false, fallback},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			const key = "TOKENECHO_TEST_PORT"
			if tc.set {
				t.Setenv(key, tc.envVal)
			}

			if got := env.Int(key, fallback); got != tc.want {
				t.Errorf("env.Int(%q, %d) = %d, want: %d", key, fallback, got, tc.want)
			}
		})
	}
}
