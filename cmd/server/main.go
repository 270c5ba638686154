// Command server runs the token echo HTTP service.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ferdiebergado/tokenecho/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	slog.Info("Starting tokenecho...")
	if err := app.Run(ctx); err != nil {
		slog.Error("Server exited with an error.", "reason", err)
		return 1
	}

	slog.Info("Server shutdown gracefully.")
	return 0
}
