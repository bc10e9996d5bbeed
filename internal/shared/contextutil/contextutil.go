package contextutil

import "context"

// unexported key type so this package's values cannot collide with others
type contextKey string

const requestIDKey contextKey = "request_id"

// WithRequestID injects a request id into the context (also used by tests)
func WithRequestID(ctx context.Context, rid string) context.Context {
	return context.WithValue(ctx, requestIDKey, rid)
}

// GetRequestID reads the request id from the context, empty when absent
func GetRequestID(ctx context.Context) string {
	if rid, ok := ctx.Value(requestIDKey).(string); ok {
		return rid
	}
	return ""
}
