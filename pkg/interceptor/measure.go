package interceptor

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dmitrymomot/apicommons/handler"
	"github.com/dmitrymomot/apicommons/pkg/logger"
)

// Measure runs fn as the named operation: entry and exit are logged at
// debug level, a failure at error level, and the elapsed time is reported
// against threshold. The error from fn is returned unchanged.
//
//	err := interceptor.Measure(ctx, log, 0, "UserRepository.Save", func(ctx context.Context) error {
//		return repo.Save(ctx, user)
//	})
func Measure(ctx context.Context, log *slog.Logger, threshold time.Duration, name string, fn func(context.Context) error) error {
	_, err := call(ctx, log, threshold, name, false, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, fn(ctx)
	})
	return err
}

// Call is Measure for operations returning a value. The value is logged on
// exit at debug level, truncated to DefaultMaxPayload characters.
func Call[T any](ctx context.Context, log *slog.Logger, threshold time.Duration, name string, fn func(context.Context) (T, error)) (T, error) {
	return call(ctx, log, threshold, name, true, fn)
}

func call[T any](ctx context.Context, log *slog.Logger, threshold time.Duration, name string, withResult bool, fn func(context.Context) (T, error)) (T, error) {
	l := loggerOrDefault(log)
	threshold = thresholdOrDefault(threshold)
	debug := l.Enabled(ctx, slog.LevelDebug)

	if debug {
		l.LogAttrs(ctx, slog.LevelDebug, "entering", logger.Operation(name))
	}

	start := time.Now()
	defer func() {
		reportElapsed(ctx, l, name, time.Since(start), threshold)
	}()

	res, err := fn(ctx)
	if err != nil {
		l.LogAttrs(ctx, slog.LevelError, "operation failed",
			logger.Operation(name),
			logger.Error(err),
		)
		return res, err
	}

	if debug {
		attrs := []slog.Attr{logger.Operation(name)}
		if withResult {
			attrs = append(attrs, slog.String("result", TruncatePayload(fmt.Sprintf("%+v", res), DefaultMaxPayload)))
		}
		l.LogAttrs(ctx, slog.LevelDebug, "exiting", attrs...)
	}
	return res, nil
}

// Timed measures a typed handler. The operation name is the request method
// and path.
func Timed[C handler.Context, R any](log *slog.Logger, threshold time.Duration) handler.Decorator[C, R] {
	threshold = thresholdOrDefault(threshold)
	return func(next handler.HandlerFunc[C, R]) handler.HandlerFunc[C, R] {
		return func(ctx C, req R) handler.Response {
			start := time.Now()
			resp := next(ctx, req)
			r := ctx.Request()
			reportElapsed(ctx, loggerOrDefault(log), r.Method+" "+r.URL.Path, time.Since(start), threshold)
			return resp
		}
	}
}
