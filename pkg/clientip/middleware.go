package clientip

import "net/http"

// Middleware stores the client IP in the request context.
func Middleware(trustedHeaders ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := SetIPToContext(r.Context(), GetIP(r, trustedHeaders...))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
