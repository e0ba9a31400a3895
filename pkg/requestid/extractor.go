package requestid

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/apicommons/pkg/logger"
)

// LoggerExtractor adds the request id to every record logged with a request
// context. It satisfies logger.ContextExtractor.
func LoggerExtractor(ctx context.Context) (slog.Attr, bool) {
	if id := FromContext(ctx); id != "" {
		return logger.RequestID(id), true
	}
	return slog.Attr{}, false
}

var _ logger.ContextExtractor = LoggerExtractor
