package middleware

import (
	"net/http"

	"daybook/internal/platform/logger"
	pnet "daybook/internal/platform/net"
)

// RequestLogContext copies the request id into the logger context so
// logger.C(ctx) children carry request_id
func RequestLogContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if reqID := pnet.RequestID(r.Context()); reqID != "" {
			r = r.WithContext(logger.WithRequest(r.Context(), reqID))
		}
		next.ServeHTTP(w, r)
	})
}
