package requestid

import (
	"context"
	"net/http"
)

type contextKey struct{}

// WithContext stores the request id in ctx.
func WithContext(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, contextKey{}, requestID)
}

// FromContext returns the request id stored in ctx, or "" if none.
func FromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	requestID, _ := ctx.Value(contextKey{}).(string)
	return requestID
}

// FromRequest returns the request id attached to r by the middleware.
func FromRequest(r *http.Request) string {
	if r == nil {
		return ""
	}
	return FromContext(r.Context())
}
