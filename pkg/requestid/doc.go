// Package requestid attaches a correlation id to every HTTP request.
//
// The middleware reuses a client-supplied "X-Request-ID" header when it is at
// most 128 characters of letters, digits, '-' and '_'; anything else is
// replaced with a new UUIDv4. The id is stored in the request context and
// echoed back in the response header.
//
//	r := chi.NewRouter()
//	r.Use(requestid.Middleware)
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor))
//
// FromContext and FromRequest read the id back; both return "" when the
// middleware did not run.
package requestid
