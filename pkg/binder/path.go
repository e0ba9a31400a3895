package binder

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Path returns a binder that fills fields tagged `path:"name"` from chi
// route parameters. Requests not routed through chi yield
// ErrBinderNotApplicable.
//
//	r.Get("/users/{id}", handler.Wrap(getUser,
//		handler.WithBinders[handler.Context, GetUserRequest](binder.Path()),
//	))
func Path() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		rctx := chi.RouteContext(r.Context())
		if rctx == nil {
			return ErrBinderNotApplicable
		}

		params := make(map[string][]string, len(rctx.URLParams.Keys))
		for i, key := range rctx.URLParams.Keys {
			if key == "*" || i >= len(rctx.URLParams.Values) {
				continue
			}
			params[key] = []string{rctx.URLParams.Values[i]}
		}
		return bindToStruct(v, "path", params, ErrFailedToParsePath)
	}
}
