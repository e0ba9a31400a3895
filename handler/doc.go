// Package handler turns typed request handlers into http.HandlerFunc values
// and converts every failure into a uniform JSON envelope.
//
// A handler receives a bound request value and returns a Response:
//
//	type GetUserRequest struct {
//		ID uuid.UUID `path:"id"`
//	}
//
//	func getUser(ctx handler.Context, req GetUserRequest) handler.Response {
//		user, err := users.Find(ctx, req.ID)
//		if err != nil {
//			return handler.Fail(err) // e.g. core.NewResourceNotFound("User", req.ID)
//		}
//		return handler.OK(user)
//	}
//
//	r.Get("/users/{id}", handler.Wrap(getUser,
//		handler.WithBinders[handler.Context, GetUserRequest](binder.Path()),
//		handler.WithErrorHandler[handler.Context, GetUserRequest](errorHandler),
//	))
//
// Wrap runs the binders in order, calls Validate when the request type
// implements Validatable, applies the decorators (first is outermost) and
// renders the Response.
//
// # Central error handler
//
// NewErrorHandler is the single place where failures become responses.
// Classify decides the status:
//
//	core.NewAPIError(...)         400  {"success":false,"data":null,"message":...}
//	core.NewResourceNotFound(...) 404  same shape
//	core.NewValidationError(...)  422  data holds the field map verbatim
//	Validate() returning validator.ValidationErrors
//	                              400  data holds the field map, "Validation failed"
//	anything else                 500  "internal error", details only in the log
//
// Each failure is logged at error level with its code and message.
// Unclassified failures also log the error and a stack trace.
package handler
