// Package buildinfo describes the running service: the build embedded by the
// Go toolchain (Read), project metadata kept in a YAML file (Load, ReadFile) and
// the info maps served by health endpoints (Info, FullInfo).
//
// Reading metadata never fails the caller. A missing or malformed file
// yields a map with a generic "error" and a "timestamp" so an info endpoint
// can still answer; Load also returns the cause for the server log:
//
//	meta, err := buildinfo.Load("build.yaml")
//	if err != nil {
//		log.Warn("build metadata unavailable", logger.Error(err))
//	}
//	return handler.OK(buildinfo.FullInfoFrom("billing-api", meta))
package buildinfo
