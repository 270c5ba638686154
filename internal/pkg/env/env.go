package env

import (
	"log/slog"
	"os"
	"strconv"
)

// Env returns the value of the environment variable named by the key.
// If the variable is not present in the environment, it returns the provided fallback value.
func Env(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

// Int returns the environment variable named by key parsed as an int. The
// fallback is returned when the variable is unset or is not a number.
func Int(key string, fallback int) int {
	val, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}

	n, err := strconv.Atoi(val)
	if err != nil {
		slog.Warn("Ignoring environment variable that is not a number.", "env", key, "fallback", fallback)
		return fallback
	}
	return n
}
