package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/ferdiebergado/goexpress"
	"github.com/ferdiebergado/gopherkit/env"
	"github.com/ferdiebergado/tokenecho/internal/config"
	envx "github.com/ferdiebergado/tokenecho/internal/pkg/env"
	"github.com/ferdiebergado/tokenecho/internal/pkg/logging"
	"github.com/ferdiebergado/tokenecho/internal/middleware"
	"github.com/ferdiebergado/tokenecho/internal/platform/validation"
)

const (
	envFile       = ".env"
	envConfigFile = "CONFIG_FILE"
	defaultConfig = "config.json"
)

func Run(baseCtx context.Context) error {
	signalCtx, stop := signal.NotifyContext(baseCtx, os.Interrupt, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	if config.AppEnv() != config.EnvProduction {
		if err := loadEnvFile(envFile); err != nil {
			return err
		}
	}

	logging.SetupLogger(config.AppEnv(), envx.Env("LOG_LEVEL", ""), os.Stdout)
	slog.Info("Initializing...")

	cfg, err := config.Load(envx.Env(envConfigFile, defaultConfig), validation.NewGoPlaygroundValidator())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if cfg.SigningKey.IsDefault() {
		slog.Warn("SECURITY: tokens are verified with the public development key; anyone can forge them.")
	}

	middlewares := []func(http.Handler) http.Handler{
		middleware.InjectWriter,
		goexpress.RecoverFromPanic,
		middleware.LogRequest,
	}
	api := New(cfg, newProviders(cfg), middlewares)

	if err := api.Start(signalCtx); err != nil {
		return fmt.Errorf("start server: %w", err)
	}

	return api.Shutdown()
}

// loadEnvFile loads a dotenv file when one exists.
func loadEnvFile(name string) error {
	if _, err := os.Stat(name); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("stat env file: %w", err)
	}

	if err := env.Load(name); err != nil {
		return fmt.Errorf("load env: %w", err)
	}
	return nil
}
