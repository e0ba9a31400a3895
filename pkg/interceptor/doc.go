// Package interceptor wraps HTTP handlers and plain functions with request
// ids, panic recovery, CORS, debug logging and slow-call detection.
//
// Stages are assembled once at startup into a Pipeline; the first stage is
// the outermost:
//
//	p := interceptor.New(
//		interceptor.RequestID(),
//		interceptor.CORS(interceptor.DefaultCORSOptions()),
//		interceptor.When(cfg.LoggingEnabled, interceptor.Logging(log)),
//		interceptor.When(cfg.PerformanceEnabled, interceptor.Performance(log, 500*time.Millisecond)),
//		interceptor.Recover(errorHandler),
//	)
//	http.ListenAndServe(":8080", p.Then(router))
//
// Service and repository code opts in explicitly with Measure and Call:
//
//	user, err := interceptor.Call(ctx, log, 0, "UserService.Find", func(ctx context.Context) (User, error) {
//		return s.repo.Find(ctx, id)
//	})
//
// Elapsed time is always measured on the caller's stack, so concurrent
// calls never share timing state.
package interceptor
