package httpapi

import (
	"net/http"
	"time"

	"github.com/lite-lake/subdomaind/internal/application/handler"
	"github.com/lite-lake/subdomaind/internal/infrastructure/logger"
)

const RequestIDHeader = "X-Request-Id"

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// requestID tags every request with a fresh trace id, echoes it to the
// caller and logs the outcome.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := logger.NewTraceID()
		w.Header().Set(RequestIDHeader, id)

		ctx := logger.WithTraceID(r.Context(), id)
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()

		next.ServeHTTP(rec, r.WithContext(ctx))

		logger.FromContext(ctx).Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
		)
	})
}

func recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if v := recover(); v != nil {
				if v == http.ErrAbortHandler {
					panic(v)
				}
				logger.FromContext(r.Context()).Error("panic in handler", "panic", v)
				handler.WriteJSON(w, http.StatusInternalServerError, handler.ErrorBody{Error: "Internal server error"})
			}
		}()
		next.ServeHTTP(w, r)
	})
}
