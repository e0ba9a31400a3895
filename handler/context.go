package handler

import (
	"context"
	"net/http"
)

// Context is what typed handlers receive: the request's context.Context plus
// the request and response writer it belongs to.
type Context interface {
	context.Context
	Request() *http.Request
	ResponseWriter() http.ResponseWriter
}

// NewContext binds a Context to the request's current context.
func NewContext(w http.ResponseWriter, r *http.Request) Context {
	return &httpContext{Context: r.Context(), w: w, r: r}
}

type httpContext struct {
	context.Context
	w http.ResponseWriter
	r *http.Request
}

func (c *httpContext) Request() *http.Request              { return c.r }
func (c *httpContext) ResponseWriter() http.ResponseWriter { return c.w }

// WithValue returns a Context whose request carries val under key, so
// decorators can pass request-scoped data such as claims to the handler.
func WithValue(c Context, key, val any) Context {
	r := c.Request().WithContext(context.WithValue(c, key, val))
	return &httpContext{Context: r.Context(), w: c.ResponseWriter(), r: r}
}

// Value returns the value stored under key when it has type T.
func Value[T any](ctx context.Context, key any) (T, bool) {
	v, ok := ctx.Value(key).(T)
	return v, ok
}
