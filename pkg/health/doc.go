// Package health serves liveness, readiness, info and metrics endpoints as
// chi routers answering with the standard response envelope.
//
//	r.Mount("/api/health", health.Routes(
//		health.WithLogger(log),
//		health.WithChecks(health.Redis(rdb), health.Postgres(pool)),
//		health.WithMetadata(buildinfo.ReadFile("build.yaml")),
//	))
//	r.Mount("/api/metrics", health.MetricsRoutes(health.WithLogger(log)))
//
// Readiness checks run concurrently, each with its own timeout. Failing
// checks are logged with their error; clients only see check names and
// states.
package health
