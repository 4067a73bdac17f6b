package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/glossary-backend/pkg/ctxutil"
)

// Logger returns middleware that logs each HTTP request with method, path,
// status code, duration, request_id and, once Auth ran, the principal.
//
// Logger must wrap Auth directly for the principal to be recorded.
func Logger(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(sw, r)

			attrs := []slog.Attr{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", sw.status),
				slog.Duration("duration", time.Since(start)),
				slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
			}
			if sw.principal != "" {
				attrs = append(attrs, slog.String("principal", sw.principal))
			}

			level := slog.LevelInfo
			if sw.status >= 500 {
				level = slog.LevelError
			}
			logger.LogAttrs(r.Context(), level, "http.request", attrs...)
		})
	}
}

// statusWriter wraps http.ResponseWriter to capture the response status code
// and the principal resolved further down the chain.
type statusWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
	principal   string
}

func (w *statusWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.status = code
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(code)
}

// notePrincipal records the authenticated principal on the enclosing
// Logger's writer, if w is one.
func notePrincipal(w http.ResponseWriter, username string) {
	if sw, ok := w.(*statusWriter); ok {
		sw.principal = username
	}
}
