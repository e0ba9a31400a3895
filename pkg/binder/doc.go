// Package binder fills typed request structs from HTTP requests.
//
// Each binder has the signature func(*http.Request, any) error and reads one
// source:
//
//   - JSON(): the application/json body, strict, size limited and with
//     decoded strings cleaned by sanitizer.Clean
//   - Query(): fields tagged `query:"name"`
//   - Path(): fields tagged `path:"name"` from chi route parameters
//
// Binders are combined in handler.Wrap and applied in order:
//
//	type UpdateUserRequest struct {
//		ID    uuid.UUID `path:"id" json:"-"`
//		Email string    `json:"email"`
//		Dry   bool      `query:"dry_run" json:"-"`
//	}
//
//	r.Put("/users/{id}", handler.Wrap(updateUser,
//		handler.WithBinders[handler.Context, UpdateUserRequest](
//			binder.JSON(), binder.Path(), binder.Query(),
//		),
//	))
//
// Field types implementing encoding.TextUnmarshaler (uuid.UUID, time.Time)
// are parsed through it. A binder returns ErrBinderNotApplicable when the
// request carries nothing for it; every other error wraps one of the
// sentinel values in errors.go and is answered with 400 by the central
// error handler.
package binder
