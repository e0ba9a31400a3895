package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/dmitrymomot/apicommons/core"
	"github.com/dmitrymomot/apicommons/pkg/binder"
	"github.com/dmitrymomot/apicommons/pkg/logger"
	"github.com/dmitrymomot/apicommons/pkg/requestid"
	"github.com/dmitrymomot/apicommons/pkg/validator"
)

// Messages used by the central error handler.
const (
	DefaultInternalMessage = "internal error"
	BindingFailedMessage   = "Validation failed"
)

// ErrorInfo is the classification of an error: what the client sees and
// how it is logged.
type ErrorInfo struct {
	StatusCode int
	Code       string
	Message    string
	// Fields holds per-field messages for validation failures.
	Fields   map[string]string
	LogLevel slog.Level
	// LogMessage is the server-side log line for the error.
	LogMessage string
	// Internal marks unclassified failures whose details stay server side.
	Internal bool
}

// Classify maps err onto the API error taxonomy.
//
//	*core.APIError             client 400, not found 404, validation 422, internal 500
//	validator.ValidationErrors 400 with the field map and "Validation failed"
//	binder errors              400, 413 or 415
//	core.HTTPError             its own status
//	anything else              500 "internal error"
func Classify(err error) ErrorInfo {
	var apiErr *core.APIError
	if errors.As(err, &apiErr) {
		info := ErrorInfo{
			StatusCode: apiErr.Status(),
			Code:       string(apiErr.Code),
			Message:    apiErr.Message,
			LogLevel:   slog.LevelError,
		}
		switch apiErr.Kind {
		case core.KindNotFound:
			info.LogMessage = "resource not found"
		case core.KindValidation:
			info.LogMessage = "validation error"
			info.Fields = apiErr.Fields
		case core.KindInternal:
			info.LogMessage = "internal error"
			info.Message = DefaultInternalMessage
			info.Internal = true
		default:
			info.LogMessage = "api exception"
		}
		return info
	}

	if ve := validator.ExtractValidationErrors(err); ve != nil {
		return ErrorInfo{
			StatusCode: http.StatusBadRequest,
			Code:       string(core.CodeValidation),
			Message:    BindingFailedMessage,
			Fields:     ve.Map(),
			LogLevel:   slog.LevelError,
			LogMessage: "request validation failed",
		}
	}

	if info, ok := classifyBinding(err); ok {
		return info
	}

	var httpErr core.HTTPError
	if errors.As(err, &httpErr) {
		level := slog.LevelWarn
		if httpErr.Code >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		return ErrorInfo{
			StatusCode: httpErr.Code,
			Code:       strings.ToUpper(httpErr.Key),
			Message:    httpErr.Key,
			LogLevel:   level,
			LogMessage: "http error",
		}
	}

	return ErrorInfo{
		StatusCode: http.StatusInternalServerError,
		Code:       string(core.CodeInternal),
		Message:    DefaultInternalMessage,
		LogLevel:   slog.LevelError,
		LogMessage: "unhandled error",
		Internal:   true,
	}
}

func classifyBinding(err error) (ErrorInfo, bool) {
	info := ErrorInfo{
		StatusCode: http.StatusBadRequest,
		Code:       string(core.CodeBadRequest),
		LogLevel:   slog.LevelError,
		LogMessage: "request binding failed",
	}
	switch {
	case errors.Is(err, binder.ErrUnsupportedMediaType):
		info.StatusCode = http.StatusUnsupportedMediaType
		info.Message = binder.ErrUnsupportedMediaType.Error()
	case errors.Is(err, binder.ErrBodyTooLarge):
		info.StatusCode = http.StatusRequestEntityTooLarge
		info.Message = binder.ErrBodyTooLarge.Error()
	case errors.Is(err, binder.ErrFailedToParseJSON):
		info.Message = binder.ErrFailedToParseJSON.Error()
	case errors.Is(err, binder.ErrFailedToParseQuery):
		info.Message = binder.ErrFailedToParseQuery.Error()
	case errors.Is(err, binder.ErrFailedToParsePath):
		info.Message = binder.ErrFailedToParsePath.Error()
	default:
		return ErrorInfo{}, false
	}
	return info, true
}

// ErrorHandlerOption configures NewErrorHandler.
type ErrorHandlerOption func(*errorHandlerConfig)

type errorHandlerConfig struct {
	detailed        bool
	internalMessage string
}

// WithErrorResponseBody renders failures as core.ErrorResponse (code,
// message, timestamp, path, details) instead of the response envelope.
func WithErrorResponseBody() ErrorHandlerOption {
	return func(c *errorHandlerConfig) { c.detailed = true }
}

// WithInternalMessage replaces the message sent for unclassified failures.
func WithInternalMessage(msg string) ErrorHandlerOption {
	return func(c *errorHandlerConfig) {
		if msg != "" {
			c.internalMessage = msg
		}
	}
}

// NewErrorHandler creates the central error handler. Every failure is
// logged with its code and message; unclassified failures are logged with
// the full error and a stack trace while the client only receives the
// internal message. A nil logger means slog.Default at call time.
func NewErrorHandler(log *slog.Logger, opts ...ErrorHandlerOption) ErrorHandler[Context] {
	cfg := errorHandlerConfig{internalMessage: DefaultInternalMessage}
	for _, opt := range opts {
		opt(&cfg)
	}

	return func(ctx Context, err error) {
		l := log
		if l == nil {
			l = slog.Default()
		}

		info := Classify(err)
		if info.Internal {
			info.Message = cfg.internalMessage
		}
		logError(l, ctx.Request(), err, info)

		var body any
		if cfg.detailed {
			respOpts := []core.ErrorResponseOption{core.WithPath(ctx.Request().URL.Path)}
			if len(info.Fields) > 0 {
				respOpts = append(respOpts, core.WithDetails(info.Fields))
			}
			body = core.NewErrorResponse(info.Code, info.Message, respOpts...)
		} else if info.Fields != nil {
			body = core.Failure(info.Fields, info.Message)
		} else {
			body = core.Error[any](info.Message)
		}

		if renderErr := JSON(info.StatusCode, body).Render(ctx.ResponseWriter(), ctx.Request()); renderErr != nil {
			l.ErrorContext(ctx, "failed to render error response",
				logger.Error(renderErr),
				logger.Component("error_handler"),
			)
		}
	}
}

// ServeError renders err with h for plain net/http code such as middleware.
func ServeError(h ErrorHandler[Context], w http.ResponseWriter, r *http.Request, err error) {
	h(NewContext(w, r), err)
}

func logError(log *slog.Logger, r *http.Request, err error, info ErrorInfo) {
	attrs := []slog.Attr{
		logger.RequestID(requestid.FromRequest(r)),
		logger.Code(info.Code),
		slog.String("message", info.Message),
		logger.Status(info.StatusCode),
		logger.Method(r.Method),
		logger.Path(r.URL.Path),
		logger.Component("error_handler"),
	}
	if len(info.Fields) > 0 {
		attrs = append(attrs, slog.Any("fields", info.Fields))
	}
	if info.Internal {
		attrs = append(attrs, logger.Error(err), logger.Stack(stackOf(err)))
	}
	log.LogAttrs(r.Context(), info.LogLevel, info.LogMessage, attrs...)
}

func stackOf(err error) []byte {
	var pe *PanicError
	if errors.As(err, &pe) && len(pe.Stack) > 0 {
		return pe.Stack
	}
	return debug.Stack()
}
