package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/apicommons/handler"
)

type tenantKey struct{}

func TestWithValue(t *testing.T) {
	t.Parallel()

	parentCtx, cancel := context.WithCancel(context.Background())
	r := httptest.NewRequest(http.MethodGet, "/", nil).WithContext(parentCtx)
	w := httptest.NewRecorder()
	ctx := handler.NewContext(w, r)

	_, ok := handler.Value[string](ctx, tenantKey{})
	assert.False(t, ok)

	next := handler.WithValue(ctx, tenantKey{}, "acme")
	tenant, ok := handler.Value[string](next, tenantKey{})
	require.True(t, ok)
	assert.Equal(t, "acme", tenant)

	fromReq, ok := handler.Value[string](next.Request().Context(), tenantKey{})
	require.True(t, ok, "request must carry the value too")
	assert.Equal(t, "acme", fromReq)
	assert.Same(t, w, next.ResponseWriter())

	_, ok = handler.Value[int](next, tenantKey{})
	assert.False(t, ok, "wrong type")

	cancel()
	assert.ErrorIs(t, next.Err(), context.Canceled)
}

func TestStatusResponses(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodDelete, "/", nil)

	rec := httptest.NewRecorder()
	require.NoError(t, handler.Empty().Render(rec, r))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())

	rec = httptest.NewRecorder()
	require.NoError(t, handler.Accepted("/api/jobs/7").Render(rec, r))
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, "/api/jobs/7", rec.Header().Get("Location"))

	rec = httptest.NewRecorder()
	require.NoError(t, handler.Accepted("").Render(rec, r))
	assert.Empty(t, rec.Header().Get("Location"))

	rec = httptest.NewRecorder()
	require.NoError(t, handler.Status(http.StatusResetContent).Render(rec, r))
	assert.Equal(t, http.StatusResetContent, rec.Code)
}
