package middleware

import (
	"net/http"
	"strconv"
	"time"

	"ticket-flow-api/internal/observability"
)

func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		wrapped := &responseWriter{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(wrapped, r)

		observability.RequestsTotal.WithLabelValues(r.Method, strconv.Itoa(wrapped.status)).Inc()
		observability.RequestDuration.WithLabelValues(r.Method).Observe(time.Since(started).Seconds())
	})
}
