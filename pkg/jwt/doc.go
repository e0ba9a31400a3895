// Package jwt issues and verifies HMAC-signed JSON Web Tokens (HS512 by
// default, HS256 on request) and exposes the authenticated principal to
// handlers.
//
//	svc, err := jwt.NewFromString(cfg.JWTSecret, jwt.WithExpiration(24*time.Hour))
//	if err != nil {
//		return err
//	}
//
//	token, err := svc.GenerateToken("ann@example.fr", map[string]any{
//		jwt.AuthoritiesClaim: []string{"ROLE_USER"},
//	})
//
//	ok := svc.ValidateToken(token, "ann@example.fr")
//
// The middleware verifies the request token and stores its claims in the
// request context; failures are rendered as 401 envelopes by the central
// error handler:
//
//	r.Use(jwt.Middleware(svc))
//
//	r.Get("/admin", func(w http.ResponseWriter, r *http.Request) {
//		if !jwt.HasAuthority(r.Context(), "ROLE_ADMIN") {
//			handler.ServeError(eh, w, r, core.ErrForbidden)
//			return
//		}
//		sub, _ := jwt.Subject(r.Context())
//		...
//	})
//
// Errors such as ErrExpiredToken or ErrInvalidSignature are sentinel values
// and can be compared using errors.Is.
package jwt
