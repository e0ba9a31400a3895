// Package apidoc lets clients ask an endpoint how to call it. A request
// carrying "X-Help-Request: true" (or "X-Request-Type: HELP") is answered
// with the registered description instead of reaching the handler:
//
//	docs := apidoc.NewCatalog(
//		apidoc.Get("/api/users/{id}", "Fetch a user by id"),
//		apidoc.Describe("/api/users", "Create a user", map[string]any{
//			"method": "POST",
//			"body":   map[string]any{"email": "ann@example.fr"},
//		}),
//	)
//	r.Use(docs.Middleware(errorHandler))
package apidoc
