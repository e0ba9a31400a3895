package health

import (
	"fmt"
	"net/http"
	"runtime"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/apicommons/core"
	"github.com/dmitrymomot/apicommons/handler"
)

var processStart = time.Now()

// Routes returns the health router, usually mounted at /api/health:
//
//	GET /ping   liveness, "pong"
//	GET /info   build and runtime information
//	GET /ready  readiness checks, 503 when any check fails
func Routes(opts ...Option) chi.Router {
	o := newOptions(opts...)
	r := chi.NewRouter()
	r.Get("/ping", wrap(o, ping))
	r.Get("/info", wrap(o, o.info))
	r.Get("/ready", wrap(o, o.ready))
	return r
}

// MetricsRoutes returns the metrics router, usually mounted at /api/metrics:
//
//	GET /runtime      memory, goroutines and GC statistics
//	GET /application  uptime and platform
func MetricsRoutes(opts ...Option) chi.Router {
	o := newOptions(opts...)
	r := chi.NewRouter()
	r.Get("/runtime", wrap(o, o.runtimeMetrics))
	r.Get("/application", wrap(o, o.applicationMetrics))
	return r
}

func wrap(o *options, fn handler.HandlerFunc[handler.Context, struct{}]) http.HandlerFunc {
	return handler.Wrap(fn, handler.WithErrorHandler[handler.Context, struct{}](o.errorHandler))
}

func ping(handler.Context, struct{}) handler.Response {
	return handler.OKWithMessage("pong", "Service is up and running")
}

func (o *options) info(handler.Context, struct{}) handler.Response {
	info := map[string]any{
		"build": o.build,
		"runtime": map[string]any{
			"goVersion":  runtime.Version(),
			"numCPU":     runtime.NumCPU(),
			"goroutines": runtime.NumGoroutine(),
		},
	}
	if o.metadata != nil {
		info["metadata"] = o.metadata
	}
	return handler.OKWithMessage(info, "Application info")
}

func (o *options) ready(ctx handler.Context, _ struct{}) handler.Response {
	res := RunChecks(ctx, o.log, o.timeout, o.checks...)
	if !res.Ready() {
		return handler.JSON(http.StatusServiceUnavailable, core.Failure(res, "Service is not ready"))
	}
	return handler.OKWithMessage(res, "Service is ready")
}

func (o *options) runtimeMetrics(ctx handler.Context, _ struct{}) handler.Response {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)

	metrics := map[string]any{
		"memory": map[string]any{
			"heapAlloc":   ms.HeapAlloc,
			"heapSys":     ms.HeapSys,
			"heapInuse":   ms.HeapInuse,
			"heapObjects": ms.HeapObjects,
			"stackInuse":  ms.StackInuse,
			"sys":         ms.Sys,
		},
		"goroutines": map[string]any{
			"count": runtime.NumGoroutine(),
		},
		"gc": map[string]any{
			"numGC":        ms.NumGC,
			"pauseTotalMs": time.Duration(ms.PauseTotalNs).Milliseconds(),
			"nextGC":       ms.NextGC,
		},
		"os": map[string]any{
			"availableProcessors": runtime.NumCPU(),
			"gomaxprocs":          runtime.GOMAXPROCS(0),
		},
	}

	o.log.DebugContext(ctx, "runtime metrics collected")
	return handler.OKWithMessage(metrics, "Runtime metrics")
}

func (o *options) applicationMetrics(ctx handler.Context, _ struct{}) handler.Response {
	uptime := time.Since(o.startedAt)
	metrics := map[string]any{
		"uptime":          uptime.Milliseconds(),
		"uptimeFormatted": FormatUptime(uptime),
		"platform": map[string]any{
			"goVersion": runtime.Version(),
			"os":        runtime.GOOS,
			"arch":      runtime.GOARCH,
		},
		"build": o.build,
	}

	o.log.DebugContext(ctx, "application metrics collected")
	return handler.OKWithMessage(metrics, "Application metrics")
}

// FormatUptime renders d as "D days, H hours, M minutes, S seconds".
// Sub-second remainders are dropped.
func FormatUptime(d time.Duration) string {
	secs := int64(d / time.Second)
	days := secs / 86400
	secs %= 86400
	hours := secs / 3600
	secs %= 3600
	minutes := secs / 60
	secs %= 60
	return fmt.Sprintf("%d days, %d hours, %d minutes, %d seconds", days, hours, minutes, secs)
}

