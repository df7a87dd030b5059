package log

import "context"

const (
	ModeProduction = "production"
	EncodingJSON   = "json"

	fieldRequestID = "request_id"
)

type requestIDKey struct{}

// WithRequestID stores a request ID on the context so every log line for
// the request carries it.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFromContext returns the request ID set by WithRequestID, or "".
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
