package middlewares

// ContextKey names the request scoped values the middlewares store. They are
// picked up again by the loggers and by outgoing calls to the autoscaler core.
type ContextKey string

const (
	CorrelationIDKey   ContextKey = "correlation-id"
	RequestIdentityKey ContextKey = "request-id"
)
