package middlewares

import (
	"context"
	"net/http"

	"github.com/pborman/uuid"
)

var correlationIDHeaders = []string{"X-Correlation-ID", "X-CorrelationID", "X-ForRequest-ID", "X-Request-ID", "X-Vcap-Request-Id"}

// AddCorrelationIDToContext stores the first correlation header found, or a
// fresh UUID, under CorrelationIDKey.
func AddCorrelationIDToContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		correlationID := ""
		for _, header := range correlationIDHeaders {
			if value := req.Header.Get(header); value != "" {
				correlationID = value
				break
			}
		}

		if correlationID == "" {
			correlationID = uuid.New()
		}

		newCtx := context.WithValue(req.Context(), CorrelationIDKey, correlationID)
		next.ServeHTTP(w, req.WithContext(newCtx))
	})
}
