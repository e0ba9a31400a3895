package apicommons

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/apicommons/core"
	"github.com/dmitrymomot/apicommons/handler"
	"github.com/dmitrymomot/apicommons/pkg/apidoc"
	"github.com/dmitrymomot/apicommons/pkg/buildinfo"
	"github.com/dmitrymomot/apicommons/pkg/health"
	"github.com/dmitrymomot/apicommons/pkg/interceptor"
	"github.com/dmitrymomot/apicommons/pkg/jwt"
	"github.com/dmitrymomot/apicommons/pkg/logger"
	"github.com/dmitrymomot/apicommons/pkg/requestid"
)

// Route prefixes used by Mount.
const (
	HealthPrefix  = "/api/health"
	MetricsPrefix = "/api/metrics"
)

// StageAPIDoc names the help request stage added by WithAPIDocs.
const StageAPIDoc = "apidoc"

var ErrInvalidConfig = errors.New("apicommons: invalid configuration")

// Option configures New.
type Option func(*kitOptions)

type kitOptions struct {
	log         *slog.Logger
	output      io.Writer
	checks      []health.Check
	healthOpts  []health.Option
	errorOpts   []handler.ErrorHandlerOption
	extraStages []interceptor.Stage
	logPayload  bool
	jwtOptions  []jwt.Option
	docs        []apidoc.Doc
}

// WithLogger uses log instead of building one from the configuration.
func WithLogger(log *slog.Logger) Option {
	return func(o *kitOptions) { o.log = log }
}

// WithLogOutput sets where the built logger writes. Ignored with WithLogger.
func WithLogOutput(w io.Writer) Option {
	return func(o *kitOptions) { o.output = w }
}

// WithHealthChecks adds readiness checks to /api/health/ready.
func WithHealthChecks(checks ...health.Check) Option {
	return func(o *kitOptions) { o.checks = append(o.checks, checks...) }
}

// WithHealthOptions passes extra options to the health and metrics routers.
func WithHealthOptions(opts ...health.Option) Option {
	return func(o *kitOptions) { o.healthOpts = append(o.healthOpts, opts...) }
}

// WithErrorHandlerOptions configures the central error handler.
func WithErrorHandlerOptions(opts ...handler.ErrorHandlerOption) Option {
	return func(o *kitOptions) { o.errorOpts = append(o.errorOpts, opts...) }
}

// WithStages appends stages after the built-in ones, closest to the handler.
func WithStages(stages ...interceptor.Stage) Option {
	return func(o *kitOptions) { o.extraStages = append(o.extraStages, stages...) }
}

// WithRequestPayloadLogging makes the logging stage include request bodies.
func WithRequestPayloadLogging() Option {
	return func(o *kitOptions) { o.logPayload = true }
}

// WithJWTOptions passes extra options to the JWT service.
func WithJWTOptions(opts ...jwt.Option) Option {
	return func(o *kitOptions) { o.jwtOptions = append(o.jwtOptions, opts...) }
}

// WithAPIDocs answers help requests (X-Help-Request: true) with the
// matching endpoint documentation.
func WithAPIDocs(docs ...apidoc.Doc) Option {
	return func(o *kitOptions) { o.docs = append(o.docs, docs...) }
}

// Kit holds the shared building blocks of a service: logger, JWT service,
// central error handler and interceptor pipeline.
type Kit struct {
	cfg          Config
	log          *slog.Logger
	jwt          *jwt.Service
	errorHandler handler.ErrorHandler[handler.Context]
	pipeline     *interceptor.Pipeline
	healthOpts   []health.Option
}

// New assembles a Kit from cfg.
func New(cfg Config, opts ...Option) (*Kit, error) {
	o := &kitOptions{}
	for _, opt := range opts {
		opt(o)
	}

	if cfg.ThresholdMillis <= 0 {
		return nil, fmt.Errorf("%w: performance threshold must be positive", ErrInvalidConfig)
	}
	if cfg.JWTExpirationMillis <= 0 {
		return nil, fmt.Errorf("%w: JWT expiration must be positive", ErrInvalidConfig)
	}

	log := o.log
	if log == nil {
		log = newLogger(cfg, o.output)
	}

	jwtOpts := append([]jwt.Option{jwt.WithExpiration(cfg.JWTExpiration())}, o.jwtOptions...)
	svc, err := jwt.NewFromString(cfg.JWTSecret, jwtOpts...)
	if err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}
	if cfg.UsesDefaultSecret() {
		log.Warn("default JWT secret in use, set JWT_SECRET", logger.Component("apicommons"))
	}

	eh := handler.NewErrorHandler(log, o.errorOpts...)

	logOpts := []interceptor.LoggingOption{interceptor.WithMaxPayload(cfg.LoggingMaxPayload)}
	if o.logPayload {
		logOpts = append(logOpts, interceptor.WithPayload())
	}

	corsOpts := interceptor.DefaultCORSOptions()
	corsOpts.AllowedOrigins = cfg.corsOrigins()
	corsOpts.MaxAge = cfg.CORSMaxAge

	pipeline := interceptor.New(
		interceptor.RequestID(),
		interceptor.CORS(corsOpts),
		interceptor.When(cfg.LoggingEnabled, interceptor.Logging(log, logOpts...)),
		interceptor.When(cfg.PerformanceEnabled, interceptor.Performance(log, cfg.SlowThreshold())),
		interceptor.Recover(eh),
	)
	if len(o.docs) > 0 {
		pipeline.Use(interceptor.Stage{Name: StageAPIDoc, Wrap: apidoc.NewCatalog(o.docs...).Middleware(eh)})
	}
	pipeline.Use(o.extraStages...)

	healthOpts := []health.Option{
		health.WithLogger(log),
		health.WithErrorHandler(eh),
		health.WithChecks(o.checks...),
	}
	if cfg.MetadataFile != "" {
		meta, err := buildinfo.Load(cfg.MetadataFile)
		if err != nil {
			log.Warn("project metadata unavailable", logger.Component("apicommons"), logger.Error(err))
		}
		healthOpts = append(healthOpts, health.WithMetadata(meta))
	}
	healthOpts = append(healthOpts, o.healthOpts...)

	return &Kit{
		cfg:          cfg,
		log:          log,
		jwt:          svc,
		errorHandler: eh,
		pipeline:     pipeline,
		healthOpts:   healthOpts,
	}, nil
}

func newLogger(cfg Config, w io.Writer) *slog.Logger {
	return logger.New(
		logger.WithEnvironment(cfg.Environment, cfg.ServiceName),
		logger.WithLevelName(cfg.LogLevel),
		logger.WithOutput(w),
		logger.WithContextExtractors(requestid.LoggerExtractor, jwt.LoggerExtractor),
	)
}

func (k *Kit) Config() Config                                      { return k.cfg }
func (k *Kit) Logger() *slog.Logger                                { return k.log }
func (k *Kit) JWT() *jwt.Service                                   { return k.jwt }
func (k *Kit) ErrorHandler() handler.ErrorHandler[handler.Context] { return k.errorHandler }
func (k *Kit) Pipeline() *interceptor.Pipeline                     { return k.pipeline }

// Handler runs h behind the interceptor pipeline.
func (k *Kit) Handler(h http.Handler) http.Handler {
	return k.pipeline.Then(h)
}

// Middleware returns the pipeline as router middleware.
func (k *Kit) Middleware() func(http.Handler) http.Handler {
	return k.pipeline.Middleware()
}

// Authenticate returns JWT middleware bound to the kit's service and error
// handler. Requests without a token pass as anonymous when allowAnonymous
// is set.
func (k *Kit) Authenticate(allowAnonymous bool) func(http.Handler) http.Handler {
	return jwt.MiddlewareWithConfig(jwt.MiddlewareConfig{
		Service:        k.jwt,
		ErrorHandler:   k.errorHandler,
		AllowAnonymous: allowAnonymous,
	})
}

// Mount registers the health and metrics routers on r.
func (k *Kit) Mount(r chi.Router) {
	r.Mount(HealthPrefix, health.Routes(k.healthOpts...))
	r.Mount(MetricsPrefix, health.MetricsRoutes(k.healthOpts...))
}

// Router returns a chi router with the pipeline installed, the health and
// metrics routes mounted and unmatched routes answered through the central
// error handler.
func (k *Kit) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(k.Middleware())
	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		handler.ServeError(k.errorHandler, w, req,
			core.NewNotFound(fmt.Sprintf("No handler found for %s %s", req.Method, req.URL.Path)))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		handler.ServeError(k.errorHandler, w, req, core.ErrMethodNotAllowed)
	})
	k.Mount(r)
	return r
}
