// Package logger builds *slog.Logger values with functional options and
// injects request-scoped attributes pulled from context.Context.
//
// New picks slog.NewJSONHandler or slog.NewTextHandler from the configured
// Format and wraps it with LogHandlerDecorator, which runs every registered
// ContextExtractor before delegating the record. The request id extractor
// from package requestid is the usual one:
//
//	log := logger.New(
//		logger.WithEnvironment(cfg.Env, "orders-api"),
//		logger.WithLevelName(cfg.LogLevel),
//		logger.WithContextExtractors(requestid.LoggerExtractor),
//	)
//
// Attribute helpers in attr.go keep key names consistent across the module:
//
//	log.WarnContext(ctx, "slow execution detected",
//		logger.Operation("GET /api/users"),
//		logger.Duration(elapsed),
//		logger.Threshold(500*time.Millisecond),
//	)
//
// Error, Errors, RequestID, Subject and Stack return an empty slog.Attr for
// nil or empty input, so they can be passed without a nil check.
package logger
