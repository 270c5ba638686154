package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/ferdiebergado/tokenecho/internal/pkg/message"
	"github.com/ferdiebergado/tokenecho/internal/pkg/web"
)

// ContextGuard answers 408 for requests whose context is already done, such
// as those still queued when shutdown begins.
func ContextGuard(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		err := r.Context().Err()
		if err == nil {
			next.ServeHTTP(w, r)
			return
		}

		msg := message.RequestCanceled
		if errors.Is(err, context.DeadlineExceeded) {
			msg = message.RequestTimedOut
		}

		slog.Warn("Dropping request with a finished context.", "path", r.URL.Path, "reason", err)
		web.RespondRequestTimeout(w, err, msg, nil)
	})
}
