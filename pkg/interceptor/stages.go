package interceptor

import (
	"net/http"
	"runtime/debug"

	"github.com/go-chi/cors"

	"github.com/dmitrymomot/apicommons/handler"
	"github.com/dmitrymomot/apicommons/pkg/requestid"
)

// Stage names.
const (
	StageRequestID   = "request_id"
	StageRecover     = "recover"
	StageLogging     = "logging"
	StagePerformance = "performance"
	StageCORS        = "cors"
)

// RequestID attaches a request id to every request.
func RequestID(opts ...requestid.Option) Stage {
	return Stage{Name: StageRequestID, Wrap: requestid.New(opts...)}
}

// Recover turns panics into 500 responses rendered by the error handler.
// http.ErrAbortHandler is re-raised so the server aborts the connection.
// A nil error handler uses handler.NewErrorHandler with slog.Default.
func Recover(eh handler.ErrorHandler[handler.Context]) Stage {
	if eh == nil {
		eh = handler.NewErrorHandler(nil)
	}
	return Stage{
		Name: StageRecover,
		Wrap: func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				defer func() {
					rec := recover()
					if rec == nil {
						return
					}
					if rec == http.ErrAbortHandler {
						panic(rec)
					}
					handler.ServeError(eh, w, r, &handler.PanicError{Value: rec, Stack: debug.Stack()})
				}()
				next.ServeHTTP(w, r)
			})
		},
	}
}

// DefaultCORSOptions allows any origin with the usual REST methods and
// caches preflight results for an hour.
func DefaultCORSOptions() cors.Options {
	return cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
			http.MethodPatch,
			http.MethodOptions,
		},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{requestid.Header},
		MaxAge:         3600,
	}
}

// CORS answers preflight requests and sets CORS headers.
func CORS(opts cors.Options) Stage {
	return Stage{Name: StageCORS, Wrap: cors.Handler(opts)}
}
