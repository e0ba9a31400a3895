package handler

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/apicommons/pkg/binder"
)

// HandlerFunc provides type-safe HTTP request handling with custom context support.
// C must implement the Context interface, R can be any request type.
//
//	getUser := handler.HandlerFunc[handler.Context, GetUserRequest](
//		func(ctx handler.Context, req GetUserRequest) handler.Response {
//			user, err := users.Find(ctx, req.ID)
//			if err != nil {
//				return handler.Fail(err)
//			}
//			return handler.OK(user)
//		},
//	)
type HandlerFunc[C Context, R any] func(ctx C, req R) Response

// Response renders itself to an http.ResponseWriter. A render error is
// passed to the error handler.
type Response interface {
	Render(w http.ResponseWriter, r *http.Request) error
}

// Bind parses HTTP requests into typed values.
type Bind func(r *http.Request, v any) error

// Validatable is implemented by request types that check themselves once
// binding is complete. A non-nil error aborts the request and goes to the
// error handler.
type Validatable interface {
	Validate() error
}

// ErrorHandler handles errors from binding, validation or rendering.
type ErrorHandler[C Context] func(ctx C, err error)

// Decorator wraps a HandlerFunc to add cross-cutting functionality.
// The first decorator in a list is the outermost wrapper.
type Decorator[C Context, R any] func(HandlerFunc[C, R]) HandlerFunc[C, R]

// WrapOption configures the Wrap function.
type WrapOption[C Context, R any] func(*wrapConfig[C, R])

type wrapConfig[C Context, R any] struct {
	binders        []Bind
	errorHandler   ErrorHandler[C]
	contextFactory func(http.ResponseWriter, *http.Request) C
	decorators     []Decorator[C, R]
}

// WithBinders sets request binders applied in order. Binders returning
// binder.ErrBinderNotApplicable are skipped.
//
//	r.Put("/users/{id}", handler.Wrap(updateUser,
//		handler.WithBinders[handler.Context, UpdateUserRequest](
//			binder.Path(),
//			binder.JSON(),
//		),
//	))
func WithBinders[C Context, R any](binders ...Bind) WrapOption[C, R] {
	return func(c *wrapConfig[C, R]) {
		for _, b := range binders {
			if b != nil {
				c.binders = append(c.binders, b)
			}
		}
	}
}

// WithErrorHandler sets a custom error handler.
func WithErrorHandler[C Context, R any](h ErrorHandler[C]) WrapOption[C, R] {
	return func(c *wrapConfig[C, R]) {
		if h != nil {
			c.errorHandler = h
		}
	}
}

// WithContextFactory sets a custom context factory.
func WithContextFactory[C Context, R any](f func(http.ResponseWriter, *http.Request) C) WrapOption[C, R] {
	return func(c *wrapConfig[C, R]) {
		if f != nil {
			c.contextFactory = f
		}
	}
}

// WithDecorators adds decorators to wrap the handler.
// The first decorator is the outermost.
func WithDecorators[C Context, R any](decorators ...Decorator[C, R]) WrapOption[C, R] {
	return func(c *wrapConfig[C, R]) {
		c.decorators = append(c.decorators, decorators...)
	}
}

// Adapt lets an ErrorHandler for the standard Context serve handlers using
// a custom context type.
func Adapt[C Context](h ErrorHandler[Context]) ErrorHandler[C] {
	return func(ctx C, err error) {
		h(ctx, err)
	}
}

// Wrap converts a typed HandlerFunc to http.HandlerFunc.
//
// The request value is built by the binders, checked with Validate when R
// (or *R) implements Validatable, then passed through the decorators to h.
// Without WithErrorHandler failures are rendered by the central error
// handler using slog.Default.
func Wrap[C Context, R any](h HandlerFunc[C, R], opts ...WrapOption[C, R]) http.HandlerFunc {
	cfg := &wrapConfig[C, R]{
		contextFactory: func(w http.ResponseWriter, r *http.Request) C {
			ctx := NewContext(w, r)
			if c, ok := any(ctx).(C); ok {
				return c
			}
			panic("cannot use default context factory with custom context type - provide WithContextFactory")
		},
	}

	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.errorHandler == nil {
		cfg.errorHandler = Adapt[C](NewErrorHandler(nil))
	}

	final := h
	for i := len(cfg.decorators) - 1; i >= 0; i-- {
		final = cfg.decorators[i](final)
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := cfg.contextFactory(w, r)

		var req R
		for _, bind := range cfg.binders {
			if err := bind(r, &req); err != nil {
				if errors.Is(err, binder.ErrBinderNotApplicable) {
					continue
				}
				cfg.errorHandler(ctx, err)
				return
			}
		}

		if err := validate(&req); err != nil {
			cfg.errorHandler(ctx, err)
			return
		}

		response := final(ctx, req)
		if response == nil {
			cfg.errorHandler(ctx, ErrNilResponse)
			return
		}
		if err := response.Render(w, r); err != nil {
			cfg.errorHandler(ctx, err)
		}
	}
}

func validate[R any](req *R) error {
	if v, ok := any(*req).(Validatable); ok {
		return v.Validate()
	}
	if v, ok := any(req).(Validatable); ok {
		return v.Validate()
	}
	return nil
}
