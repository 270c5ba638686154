package middleware

import (
	"fmt"
	"mime"
	"net/http"
	"strings"

	"github.com/ferdiebergado/tokenecho/internal/pkg/message"
	"github.com/ferdiebergado/tokenecho/internal/pkg/web"
)

// CheckContentType rejects requests with a body whose Content-Type is not JSON.
func CheckContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !hasBody(r.Method) {
			next.ServeHTTP(w, r)
			return
		}

		contentType := r.Header.Get(web.HeaderContentType)
		if !isJSON(contentType) {
			web.RespondUnsupportedMediaType(w, fmt.Errorf("invalid content-type: %q", contentType), message.UnsupportedContent, nil)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func hasBody(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch:
		return true
	default:
		return false
	}
}

// isJSON accepts application/json and application/*+json, with or without parameters.
func isJSON(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}

	if mediaType == web.MimeJSON {
		return true
	}

	subtype, ok := strings.CutPrefix(mediaType, "application/")
	return ok && strings.HasSuffix(subtype, "+json")
}
