package clientip

import "net/http"

// Config is loaded from the environment with pkg/config.
type Config struct {
	TrustProxy bool `env:"TRUST_PROXY_HEADERS" envDefault:"false"`
}

// Middleware stores the client address in the request context.
func Middleware(trustProxy bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := SetIPToContext(r.Context(), GetIP(r, trustProxy))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
