package app

import (
	"github.com/ferdiebergado/tokenecho/internal/echo"
	"github.com/ferdiebergado/tokenecho/internal/health"
	"github.com/ferdiebergado/tokenecho/internal/middleware"
	"github.com/ferdiebergado/tokenecho/internal/platform/router"
)

func mountRoutes(r router.Router, echoHandler *echo.Handler, maxBodySize int64) {
	r.Get("/healthz", health.Handler)
	r.Post("/echo", echoHandler.Echo,
		middleware.ContextGuard,
		middleware.CheckContentType,
		middleware.DecodePayload[echo.Request](maxBodySize))
}
