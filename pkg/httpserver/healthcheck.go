package httpserver

import "net/http"

// HealthCheckHandler answers liveness probes with 200 "ALIVE".
// Nothing in authforms has external dependencies, so liveness is readiness.
func HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ALIVE"))
	}
}
