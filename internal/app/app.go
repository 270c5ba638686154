package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/ferdiebergado/tokenecho/internal/config"
	"github.com/ferdiebergado/tokenecho/internal/echo"
	"github.com/ferdiebergado/tokenecho/internal/platform/router"
	"github.com/ferdiebergado/tokenecho/internal/token"
)

type Providers struct {
	Verifier token.Verifier
	Router   router.Router
}

type App struct {
	server          *http.Server
	router          router.Router
	stop            context.CancelFunc
	shutdownTimeout time.Duration
}

func (a *App) registerMiddlewares(middlewares []func(http.Handler) http.Handler) {
	for _, mw := range middlewares {
		a.router.Use(mw)
	}
}

func (a *App) setupRoutes(cfg *config.Config, verifier token.Verifier) {
	echoHandler := echo.NewHandler(verifier)
	mountRoutes(a.router, echoHandler, cfg.Server.MaxBodyBytes)
}

// Handler returns the fully routed HTTP handler.
func (a *App) Handler() http.Handler {
	return a.router
}

// Start serves HTTP until ctx is done or the listener fails.
func (a *App) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", a.server.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", a.server.Addr, err)
	}

	return a.Serve(ctx, ln)
}

// Serve is Start on an existing listener.
func (a *App) Serve(ctx context.Context, ln net.Listener) error {
	serverErr := make(chan error, 1)
	go func() {
		slog.Info("Server listening...", "address", ln.Addr().String())
		if err := a.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- fmt.Errorf("serve: %w", err)
			return
		}
		slog.Info("Server has stopped.")
		serverErr <- nil
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutdown signal received.")
		return nil
	case err := <-serverErr:
		return err
	}
}

// Shutdown lets in-flight requests finish within the configured shutdown
// timeout, then cancels the contexts of any that are still running.
func (a *App) Shutdown() error {
	slog.Info("Shutting down server...")
	defer a.stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.shutdownTimeout)
	defer cancel()
	if err := a.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown server: %w", err)
	}
	return nil
}

func New(cfg *config.Config, providers *Providers, middlewares []func(http.Handler) http.Handler) *App {
	serverCtx, stop := context.WithCancel(context.Background())
	serverCfg := cfg.Server
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", serverCfg.Port),
		Handler: providers.Router,
		BaseContext: func(_ net.Listener) context.Context {
			return serverCtx
		},
		ReadTimeout:  serverCfg.ReadTimeout.Duration,
		WriteTimeout: serverCfg.WriteTimeout.Duration,
		IdleTimeout:  serverCfg.IdleTimeout.Duration,
	}

	app := &App{
		server:          server,
		router:          providers.Router,
		stop:            stop,
		shutdownTimeout: serverCfg.ShutdownTimeout.Duration,
	}

	app.registerMiddlewares(middlewares)
	app.setupRoutes(cfg, providers.Verifier)

	return app
}
