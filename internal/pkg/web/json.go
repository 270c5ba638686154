package web

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

const (
	HeaderContentType = "Content-Type"
	MimeJSON          = "application/json"
	MimeText          = "text/plain; charset=utf-8"
)

// SendJSON sends a JSON response with the given status code and data.
func SendJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set(HeaderContentType, MimeJSON)
	w.WriteHeader(statusCode)

	if data == nil {
		return
	}

	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("Error encoding JSON response", "reason", err)
	}
}

// SendText sends a plain text response with the given status code.
func SendText(w http.ResponseWriter, statusCode int, text string) {
	w.Header().Set(HeaderContentType, MimeText)
	w.WriteHeader(statusCode)

	if _, err := w.Write([]byte(text)); err != nil {
		slog.Error("Error writing text response", "reason", err)
	}
}
