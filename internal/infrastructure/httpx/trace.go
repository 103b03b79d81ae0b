package httpx

import (
	"net/http"

	"github.com/google/uuid"

	"shopcart/internal/infrastructure/logger"
)

const TraceIDHeader = "X-Trace-Id"

// TraceID tags every request with an id, reusing the caller's X-Trace-Id
// when it is a valid UUID.
func TraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(TraceIDHeader)
		if _, err := uuid.Parse(traceID); err != nil {
			traceID = uuid.New().String()
		}

		w.Header().Set(TraceIDHeader, traceID)
		next.ServeHTTP(w, r.WithContext(logger.WithTraceID(r.Context(), traceID)))
	})
}
