package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/ferdiebergado/tokenecho/internal/pkg/env"
	timex "github.com/ferdiebergado/tokenecho/internal/pkg/time"
	"github.com/ferdiebergado/tokenecho/internal/platform/validation"
)

const (
	EnvProduction  = "production"
	EnvDevelopment = "development"

	// DevSigningKey is used when JWT_SIGNING_KEY is unset outside production.
	// It is public and must never protect real traffic.
	DevSigningKey = "dev-secret-change-me"

	envApp        = "ENV"
	envLogLevel   = "LOG_LEVEL"
	envPort       = "PORT"
	envSigningKey = "JWT_SIGNING_KEY"

	defaultPort     = 3000
	maxPort         = 1<<16 - 1
	defaultLogLevel = "info"
)

var ErrMissingSigningKey = errors.New(envSigningKey + " must be set to a non-empty value in production")

type ServerOptions struct {
	Port            int            `json:"port" validate:"gte=0,max=65535"`
	ReadTimeout     timex.Duration `json:"read_timeout,omitempty"`
	WriteTimeout    timex.Duration `json:"write_timeout,omitempty"`
	IdleTimeout     timex.Duration `json:"idle_timeout,omitempty"`
	ShutdownTimeout timex.Duration `json:"shutdown_timeout,omitempty"`
	MaxBodyBytes    int64          `json:"max_body_bytes,omitempty" validate:"gt=0"`
}

// Secret is the HMAC signing key. It is masked whenever it is logged or printed.
type Secret struct {
	key       []byte
	isDefault bool
}

func (s Secret) Bytes() []byte {
	return s.key
}

// IsDefault reports whether the public development key is in use.
func (s Secret) IsDefault() bool {
	return s.isDefault
}

func (s Secret) String() string {
	return "*****"
}

func (s Secret) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("key", s.String()),
		slog.Bool("dev_default", s.isDefault),
	)
}

type Config struct {
	Env        string         `json:"-"`
	LogLevel   string         `json:"-"`
	Server     *ServerOptions `json:"server" validate:"required"`
	SigningKey Secret         `json:"-"`
}

func (c *Config) IsProduction() bool {
	return c.Env == EnvProduction
}

func (c *Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("env", c.Env),
		slog.String("log_level", c.LogLevel),
		slog.Any("server", c.Server),
		slog.Any("signing_key", c.SigningKey),
	)
}

// AppEnv returns the application environment from ENV, defaulting to development.
func AppEnv() string {
	return env.Env(envApp, EnvDevelopment)
}

func defaults() *Config {
	return &Config{
		Env:      EnvDevelopment,
		LogLevel: defaultLogLevel,
		Server: &ServerOptions{
			Port:            defaultPort,
			ReadTimeout:     timex.Duration{Duration: 5 * time.Second},
			WriteTimeout:    timex.Duration{Duration: 10 * time.Second},
			IdleTimeout:     timex.Duration{Duration: 60 * time.Second},
			ShutdownTimeout: timex.Duration{Duration: 10 * time.Second},
			MaxBodyBytes:    1 << 20,
		},
	}
}

// Load builds the configuration from built-in defaults, the optional JSON
// config file and the environment, in that order, then validates it.
func Load(cfgFile string, validator validation.Validator) (*Config, error) {
	slog.Info("Loading config...")

	cfg := defaults()
	if err := parseCfgFile(cfgFile, cfg); err != nil {
		return nil, err
	}

	overrideWithEnv(cfg)

	if err := loadSigningKey(cfg); err != nil {
		return nil, err
	}

	if errs := validator.ValidateStruct(cfg); len(errs) > 0 {
		return nil, fmt.Errorf("invalid config: %s", formatErrors(errs))
	}

	slog.Info("Config loaded.", "config_file", cfgFile, slog.Any("config", cfg))
	return cfg, nil
}

func parseCfgFile(cfgFile string, cfg *Config) error {
	cfgFile = filepath.Clean(cfgFile)
	data, err := os.ReadFile(cfgFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			slog.Info("Config file not found, using defaults.", "config_file", cfgFile)
			return nil
		}
		return fmt.Errorf("read config file %s: %w", cfgFile, err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("decode json config %s: %w", cfgFile, err)
	}

	if cfg.Server == nil {
		cfg.Server = defaults().Server
	}

	return nil
}

func overrideWithEnv(cfg *Config) {
	cfg.Env = AppEnv()
	cfg.LogLevel = env.Env(envLogLevel, cfg.LogLevel)

	port := env.Int(envPort, cfg.Server.Port)
	if port < 0 || port > maxPort {
		slog.Warn("Ignoring out of range port.", "env", envPort, "port", port, "fallback", cfg.Server.Port)
		port = cfg.Server.Port
	}
	cfg.Server.Port = port
}

func loadSigningKey(cfg *Config) error {
	key, ok := os.LookupEnv(envSigningKey)
	if cfg.IsProduction() {
		if key == "" {
			return ErrMissingSigningKey
		}
		cfg.SigningKey = Secret{key: []byte(key)}
		return nil
	}

	if ok {
		cfg.SigningKey = Secret{key: []byte(key)}
		return nil
	}

	slog.Warn("Using the public development signing key. Set "+envSigningKey+" before deploying.",
		"env", envSigningKey)
	cfg.SigningKey = Secret{key: []byte(DevSigningKey), isDefault: true}
	return nil
}

func formatErrors(errs map[string]string) string {
	msgs := make([]string, 0, len(errs))
	for _, field := range slices.Sorted(maps.Keys(errs)) {
		msgs = append(msgs, errs[field])
	}
	return strings.Join(msgs, "; ")
}
