package middleware

import (
	"net/http"
	"time"

	"github.com/api-sage/virtual-teller/src/internal/logger"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// AccessLog writes one line per request once the response is complete.
func AccessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		fields := logger.Fields{
			"requestId":  RequestIDFromContext(r.Context()),
			"method":     r.Method,
			"path":       r.URL.Path,
			"status":     status,
			"bytes":      ww.BytesWritten(),
			"durationMs": time.Since(start).Milliseconds(),
			"remoteAddr": r.RemoteAddr,
			"userAgent":  r.UserAgent(),
		}
		if status >= http.StatusInternalServerError {
			logger.Warn("http access", fields)
			return
		}
		logger.Info("http access", fields)
	})
}
