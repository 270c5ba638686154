package middleware

import "net/http"

// InjectWriter wraps the response writer in a SafeResponseWriter so later
// middleware can read the response status and size.
func InjectWriter(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(NewSafeResponseWriter(r.Context(), w), r)
	})
}
