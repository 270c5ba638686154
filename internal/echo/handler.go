package echo

import (
	"log/slog"
	"net/http"

	"github.com/ferdiebergado/tokenecho/internal/pkg/web"
	"github.com/ferdiebergado/tokenecho/internal/token"
)

const (
	DefaultMessage = "ping"
	Note           = "This endpoint echoes payloads and validates the Worker-issued token."
)

type Request struct {
	Message *string `json:"message"`
}

type Response struct {
	Message     string       `json:"message"`
	TokenStatus token.Status `json:"token_status"`
	Note        string       `json:"note"`
}

type Handler struct {
	verifier token.Verifier
}

func NewHandler(verifier token.Verifier) *Handler {
	return &Handler{verifier: verifier}
}

// Echo returns the request message with the outcome of checking the bearer
// token. Token problems are reported in the body; the status is always 200.
func (h *Handler) Echo(w http.ResponseWriter, r *http.Request) {
	req, err := web.PayloadFromContext[Request](r.Context())
	if err != nil {
		web.RespondInternalServerError(w, err)
		return
	}

	status := Authorize(r.Header, h.verifier)
	slog.Debug("Token checked.", "token_status", status.Kind().String())

	msg := DefaultMessage
	if req.Message != nil {
		msg = *req.Message
	}

	web.SendJSON(w, http.StatusOK, &Response{
		Message:     msg,
		TokenStatus: status,
		Note:        Note,
	})
}
