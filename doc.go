// Package apicommons assembles the shared infrastructure of a JSON API
// service: response envelopes and the error taxonomy (package core), the
// central error handler and typed handlers (package handler), validation
// predicates (pkg/validator), request interceptors (pkg/interceptor), JWT
// helpers (pkg/jwt) and the health and metrics endpoints (pkg/health).
//
// A service loads its configuration from the environment and builds a Kit:
//
//	cfg, err := apicommons.LoadConfig()
//	if err != nil {
//		return err
//	}
//	kit, err := apicommons.New(cfg, apicommons.WithHealthChecks(health.Redis(rdb)))
//	if err != nil {
//		return err
//	}
//
//	r := kit.Router() // pipeline + /api/health + /api/metrics
//	r.With(kit.Authenticate(false)).Get("/api/users/{id}", handler.Wrap(getUser,
//		handler.WithErrorHandler[handler.Context, getUserRequest](kit.ErrorHandler()),
//	))
//	http.ListenAndServe(":8080", r)
//
// Recognized variables:
//
//	SERVICE_NAME                        service attribute on log records ("api")
//	APP_ENV                             development, staging or production
//	LOG_LEVEL                           debug, info, warn or error
//	COMMONS_LOGGING_ASPECT_ENABLED      request logging stage (true)
//	COMMONS_LOGGING_MAX_PAYLOAD         logged payload limit in characters (10000)
//	COMMONS_PERFORMANCE_ASPECT_ENABLED  slow request detection (true)
//	COMMONS_PERFORMANCE_THRESHOLD_MS    slow request threshold (500)
//	JWT_SECRET                          HMAC signing secret
//	JWT_EXPIRATION_MS                   token lifetime (86400000)
//	CORS_ALLOWED_ORIGINS                comma separated origins ("*")
//	CORS_MAX_AGE                        preflight cache in seconds (3600)
//	COMMONS_METADATA_FILE               YAML project descriptor for /api/health/info
package apicommons
