package health

import (
	"log/slog"
	"time"

	"github.com/dmitrymomot/apicommons/handler"
	"github.com/dmitrymomot/apicommons/pkg/buildinfo"
)

// DefaultCheckTimeout bounds every readiness check.
const DefaultCheckTimeout = 5 * time.Second

// Option configures the health and metrics routers.
type Option func(*options)

type options struct {
	log          *slog.Logger
	errorHandler handler.ErrorHandler[handler.Context]
	checks       []Check
	timeout      time.Duration
	build        buildinfo.Build
	metadata     buildinfo.Metadata
	startedAt    time.Time
}

func newOptions(opts ...Option) *options {
	o := &options{
		timeout:   DefaultCheckTimeout,
		build:     buildinfo.Read(),
		startedAt: processStart,
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.log == nil {
		o.log = slog.Default()
	}
	if o.errorHandler == nil {
		o.errorHandler = handler.NewErrorHandler(o.log)
	}
	return o
}

// WithLogger sets the logger. Defaults to slog.Default.
func WithLogger(log *slog.Logger) Option {
	return func(o *options) { o.log = log }
}

// WithErrorHandler sets the handler rendering failures.
func WithErrorHandler(h handler.ErrorHandler[handler.Context]) Option {
	return func(o *options) { o.errorHandler = h }
}

// WithChecks adds readiness checks. Checks without a function are ignored.
func WithChecks(checks ...Check) Option {
	return func(o *options) {
		for _, c := range checks {
			if c.Fn != nil {
				o.checks = append(o.checks, c)
			}
		}
	}
}

// WithCheckTimeout bounds each readiness check.
func WithCheckTimeout(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.timeout = d
		}
	}
}

// WithBuild overrides the build info reported by /info.
func WithBuild(b buildinfo.Build) Option {
	return func(o *options) { o.build = b }
}

// WithMetadata adds project metadata to /info.
func WithMetadata(meta buildinfo.Metadata) Option {
	return func(o *options) { o.metadata = meta }
}

// WithStartTime sets the instant uptime is measured from. Defaults to
// process start.
func WithStartTime(t time.Time) Option {
	return func(o *options) {
		if !t.IsZero() {
			o.startedAt = t
		}
	}
}
