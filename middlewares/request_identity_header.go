package middlewares

import (
	"context"
	"net/http"
)

const RequestIdentityHeader = "X-Broker-API-Request-Identity"

func AddRequestIdentityToContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		requestIdentity := req.Header.Get(RequestIdentityHeader)
		newCtx := context.WithValue(req.Context(), RequestIdentityKey, requestIdentity)
		next.ServeHTTP(w, req.WithContext(newCtx))
	})
}
