package interceptor

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/apicommons/pkg/logger"
)

// DefaultThreshold is the duration above which a call is reported as slow.
const DefaultThreshold = 500 * time.Millisecond

// Performance measures every request. Requests slower than threshold are
// logged at warn level, the others at debug level. A non-positive threshold
// uses DefaultThreshold.
func Performance(log *slog.Logger, threshold time.Duration) Stage {
	threshold = thresholdOrDefault(threshold)
	return Stage{
		Name: StagePerformance,
		Wrap: func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				start := time.Now()
				next.ServeHTTP(w, r)
				name := r.Method + " " + r.URL.Path
				if pattern := routePattern(r); pattern != "" {
					name = r.Method + " " + pattern
				}
				reportElapsed(r.Context(), loggerOrDefault(log), name, time.Since(start), threshold)
			})
		},
	}
}

func reportElapsed(ctx context.Context, log *slog.Logger, name string, elapsed, threshold time.Duration) {
	if elapsed > threshold {
		log.LogAttrs(ctx, slog.LevelWarn, "slow execution detected",
			logger.Operation(name),
			logger.Duration(elapsed),
			logger.Threshold(threshold),
			logger.Stage(StagePerformance),
		)
		return
	}
	log.LogAttrs(ctx, slog.LevelDebug, "execution completed",
		logger.Operation(name),
		logger.Duration(elapsed),
		logger.Stage(StagePerformance),
	)
}

func thresholdOrDefault(d time.Duration) time.Duration {
	if d <= 0 {
		return DefaultThreshold
	}
	return d
}
