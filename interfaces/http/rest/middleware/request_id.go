package middleware

import (
	"net/http"

	"textanalysis/pkg/common"

	"github.com/google/uuid"
)

// RequestIDHeader carries the request id in both directions
const RequestIDHeader = "X-Request-ID"

// RequestID reuses an incoming request id or generates one, stores it with
// the start time in the request context and echoes it in the response.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := common.ExtractRequestID(r)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		w.Header().Set(RequestIDHeader, requestID)
		ctx := common.EnrichContext(r.Context(), requestID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
