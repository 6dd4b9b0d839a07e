package middleware

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

// AccessLog пишет строку на каждый запрос
func AccessLog(logger Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := newStatusRecorder(w)

			next.ServeHTTP(rec, r)

			logger.Info("%s %s - status=%d duration=%s request_id=%s",
				r.Method, r.URL.Path, rec.status, time.Since(start), RequestIDFromContext(r.Context()))
		})
	}
}
