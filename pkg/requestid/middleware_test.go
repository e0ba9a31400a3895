package requestid_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dmitrymomot/apicommons/pkg/logger"
	"github.com/dmitrymomot/apicommons/pkg/requestid"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddleware(t *testing.T) {
	t.Parallel()

	tooLong := strings.Repeat("a", 129)

	tests := []struct {
		name     string
		incoming string
		reused   bool
	}{
		{name: "missing header", incoming: "", reused: false},
		{name: "plain id", incoming: "abc123", reused: true},
		{name: "dashes and underscores", incoming: "ABC-123_xyz", reused: true},
		{name: "uuid", incoming: "550e8400-e29b-41d4-a716-446655440000", reused: true},
		{name: "max length", incoming: strings.Repeat("a", 128), reused: true},
		{name: "symbols", incoming: "test@request#id", reused: false},
		{name: "spaces", incoming: "test request id", reused: false},
		{name: "slashes", incoming: "a/b\\c", reused: false},
		{name: "markup", incoming: "<script>alert(1)</script>", reused: false},
		{name: "too long", incoming: tooLong, reused: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var seen string
			h := requestid.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen = requestid.FromContext(r.Context())
			}))

			req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
			if tt.incoming != "" {
				req.Header.Set(requestid.Header, tt.incoming)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			require.NotEmpty(t, seen)
			assert.Equal(t, seen, rec.Header().Get(requestid.Header), "header echoes the context id")
			if tt.reused {
				assert.Equal(t, tt.incoming, seen)
			} else {
				assert.NotEqual(t, tt.incoming, seen)
				assert.Len(t, seen, 36, "generated ids are uuids")
			}
		})
	}
}

func TestContext(t *testing.T) {
	t.Parallel()
	t.Run("stores and retrieves request ID", func(t *testing.T) {
		t.Parallel()
		ctx := requestid.WithContext(context.Background(), "test-id")
		id := requestid.FromContext(ctx)
		assert.Equal(t, "test-id", id)
	})

	t.Run("returns empty string when no request ID in context", func(t *testing.T) {
		t.Parallel()
		id := requestid.FromContext(context.Background())
		assert.Empty(t, id)
	})
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("custom header and generator", func(t *testing.T) {
		t.Parallel()
		mw := requestid.New(
			requestid.WithHeader("X-Correlation-ID"),
			requestid.WithGenerator(func() string { return "fixed-id" }),
		)
		var seen string
		h := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = requestid.FromRequest(r)
		}))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(requestid.Header, "ignored-header")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, "fixed-id", seen)
		assert.Equal(t, "fixed-id", rec.Header().Get("X-Correlation-ID"))
		assert.Empty(t, rec.Header().Get(requestid.Header))
	})

	t.Run("empty options keep defaults", func(t *testing.T) {
		t.Parallel()
		h := requestid.New(requestid.WithHeader(""), requestid.WithGenerator(nil))(
			http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}),
		)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Len(t, rec.Header().Get(requestid.Header), 36)
	})
}

func TestLoggerExtractor(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log := logger.New(
		logger.WithOutput(buf),
		logger.WithContextExtractors(requestid.LoggerExtractor),
	)

	log.InfoContext(requestid.WithContext(context.Background(), "req-1"), "handled")
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "req-1", entry["request_id"])

	_, ok := requestid.LoggerExtractor(context.Background())
	assert.False(t, ok)
	assert.Empty(t, requestid.FromRequest(nil))
}
