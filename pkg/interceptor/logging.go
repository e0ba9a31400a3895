package interceptor

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"time"
	"unicode/utf8"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/apicommons/pkg/logger"
)

const (
	// DefaultMaxPayload is the number of characters of a logged payload kept
	// before truncation.
	DefaultMaxPayload = 10000
	truncatedSuffix   = "... (truncated)"
)

// TruncatePayload keeps the first limit characters of s and marks the cut.
// A non-positive limit disables truncation.
func TruncatePayload(s string, limit int) string {
	if limit <= 0 || utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return string(runes[:limit]) + truncatedSuffix
}

// LoggingOption configures the logging stage.
type LoggingOption func(*loggingConfig)

type loggingConfig struct {
	maxPayload int
	payload    bool
}

// WithMaxPayload sets the truncation length for query strings and bodies.
func WithMaxPayload(n int) LoggingOption {
	return func(c *loggingConfig) {
		if n > 0 {
			c.maxPayload = n
		}
	}
}

// WithPayload also logs the request body. The body is buffered up to the
// truncation length and replayed to the handler.
func WithPayload() LoggingOption {
	return func(c *loggingConfig) { c.payload = true }
}

// Logging logs request entry and exit at debug level and server failures
// (status >= 500) at error level.
func Logging(log *slog.Logger, opts ...LoggingOption) Stage {
	cfg := loggingConfig{maxPayload: DefaultMaxPayload}
	for _, opt := range opts {
		opt(&cfg)
	}

	return Stage{
		Name: StageLogging,
		Wrap: func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				l := loggerOrDefault(log)
				ctx := r.Context()
				debug := l.Enabled(ctx, slog.LevelDebug)

				if debug {
					attrs := []slog.Attr{
						logger.Method(r.Method),
						logger.Path(r.URL.Path),
						logger.Stage(StageLogging),
					}
					if r.URL.RawQuery != "" {
						attrs = append(attrs, slog.String("query", TruncatePayload(r.URL.RawQuery, cfg.maxPayload)))
					}
					if cfg.payload && r.Body != nil && r.Body != http.NoBody {
						attrs = append(attrs, slog.String("payload", peekBody(r, cfg.maxPayload)))
					}
					l.LogAttrs(ctx, slog.LevelDebug, "request started", attrs...)
				}

				ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
				start := time.Now()
				next.ServeHTTP(ww, r)
				elapsed := time.Since(start)

				status := ww.Status()
				if status == 0 {
					status = http.StatusOK
				}

				attrs := []slog.Attr{
					logger.Method(r.Method),
					logger.Path(r.URL.Path),
					logger.Status(status),
					logger.Duration(elapsed),
					slog.Int("bytes", ww.BytesWritten()),
					logger.Stage(StageLogging),
				}
				if pattern := routePattern(r); pattern != "" {
					attrs = append(attrs, slog.String("route", pattern))
				}

				switch {
				case status >= http.StatusInternalServerError:
					l.LogAttrs(ctx, slog.LevelError, "request failed", attrs...)
				case debug:
					l.LogAttrs(ctx, slog.LevelDebug, "request completed", attrs...)
				}
			})
		},
	}
}

// peekBody reads up to limit characters worth of the body and restores it so
// the handler sees the full stream.
func peekBody(r *http.Request, limit int) string {
	n := int64(limit)*utf8.UTFMax + 1
	buf, err := io.ReadAll(io.LimitReader(r.Body, n))
	r.Body = readCloser{Reader: io.MultiReader(bytes.NewReader(buf), r.Body), Closer: r.Body}
	if err != nil {
		return ""
	}
	return TruncatePayload(string(buf), limit)
}

type readCloser struct {
	io.Reader
	io.Closer
}

func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		return rctx.RoutePattern()
	}
	return ""
}

func loggerOrDefault(log *slog.Logger) *slog.Logger {
	if log == nil {
		return slog.Default()
	}
	return log
}
