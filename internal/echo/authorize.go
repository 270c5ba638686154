package echo

import (
	"net/http"
	"strings"

	"github.com/ferdiebergado/tokenecho/internal/token"
)

const (
	HeaderAuthorization = "Authorization"
	bearerPrefix        = "bearer "
)

// Authorize classifies the request's Authorization header. The verifier is
// only consulted for Bearer credentials.
func Authorize(header http.Header, verifier token.Verifier) token.Status {
	values := header.Values(HeaderAuthorization)
	if len(values) == 0 || !isVisibleASCII(values[0]) {
		return token.Missing()
	}

	value := values[0]

	// net/http strips trailing whitespace from header values, so "Bearer  "
	// arrives as "Bearer" and is treated as a Bearer header with no token.
	if strings.EqualFold(value, strings.TrimSpace(bearerPrefix)) {
		return verifier.Verify("")
	}

	if len(value) < len(bearerPrefix) || !strings.EqualFold(value[:len(bearerPrefix)], bearerPrefix) {
		return token.Invalid(token.ReasonNotBearerScheme)
	}

	return verifier.Verify(strings.TrimSpace(value[len(bearerPrefix):]))
}

// isVisibleASCII reports whether s is a header value that can be read as
// text: visible ASCII, space and tab only.
func isVisibleASCII(s string) bool {
	for i := range len(s) {
		c := s[i]
		if c == '\t' {
			continue
		}
		if c < ' ' || c > '~' {
			return false
		}
	}
	return true
}
