package middleware

// contextKey is the type of keys stored in the request context.
// Using a custom type prevents collisions.
type contextKey string

const (
	loggerCtxKey    = contextKey("logger")
	requestIDCtxKey = contextKey("requestID")
)

// pathsToSkip contains infrastructure paths that bypass rate limiting.
var pathsToSkip = map[string]bool{
	"/health": true,
}
