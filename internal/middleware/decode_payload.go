package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/ferdiebergado/tokenecho/internal/pkg/message"
	"github.com/ferdiebergado/tokenecho/internal/pkg/web"
)

var (
	jsonNull       = []byte("null")
	errNullPayload = errors.New("payload must not be null")
)

// DecodePayload decodes a single JSON value of type T from the request body
// and stores it in the request context. Unknown fields are ignored.
//
// Malformed or empty bodies fail with 400, a null body or values of the wrong
// JSON type with 422 and bodies larger than bodySize with 413.
func DecodePayload[T any](bodySize int64) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, bodySize)
			decoder := json.NewDecoder(r.Body)
			var raw json.RawMessage
			if err := decoder.Decode(&raw); err != nil {
				respondDecodeError(w, err)
				return
			}

			if bytes.Equal(bytes.TrimSpace(raw), jsonNull) {
				respondDecodeError(w, errNullPayload)
				return
			}

			var decoded T
			if err := json.Unmarshal(raw, &decoded); err != nil {
				respondDecodeError(w, err)
				return
			}

			if err := decoder.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
				if err == nil {
					err = errors.New("unexpected data after payload")
				}
				respondDecodeError(w, err)
				return
			}

			ctx := web.NewContextWithPayload(r.Context(), decoded)
			r = r.WithContext(ctx)
			next.ServeHTTP(w, r)
		})
	}
}

func respondDecodeError(w http.ResponseWriter, err error) {
	var (
		maxBytesErr *http.MaxBytesError
		typeErr     *json.UnmarshalTypeError
	)

	switch {
	case errors.As(err, &maxBytesErr):
		web.RespondRequestEntityTooLarge(w, err, message.InvalidInput, nil)
	case errors.Is(err, errNullPayload):
		web.RespondUnprocessableEntity(w, err, message.InvalidInput, nil)
	case errors.As(err, &typeErr):
		details := map[string]string{"field": typeErr.Field}
		web.RespondUnprocessableEntity(w, err, message.InvalidInput, details)
	default:
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
	}
}
