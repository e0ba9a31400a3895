package binder_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/apicommons/pkg/binder"
)

type createUserRequest struct {
	Email   string            `json:"email"`
	Name    string            `json:"name"`
	Age     int               `json:"age"`
	Tags    []string          `json:"tags"`
	Profile *profile          `json:"profile"`
	Labels  map[string]string `json:"labels"`
}

type profile struct {
	City string `json:"city"`
}

func newJSONRequest(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestJSON(t *testing.T) {
	t.Parallel()

	t.Run("decodes and cleans strings", func(t *testing.T) {
		t.Parallel()
		req := newJSONRequest(`{
			"email": "  jane@example.fr ",
			"name": "Jane\u0000",
			"age": 31,
			"tags": [" a ", "b"],
			"profile": {"city": " Lyon "},
			"labels": {"team": " core "}
		}`)

		var got createUserRequest
		require.NoError(t, binder.JSON()(req, &got))
		assert.Equal(t, "jane@example.fr", got.Email)
		assert.Equal(t, "Jane", got.Name)
		assert.Equal(t, 31, got.Age)
		assert.Equal(t, []string{"a", "b"}, got.Tags)
		require.NotNil(t, got.Profile)
		assert.Equal(t, "Lyon", got.Profile.City)
		assert.Equal(t, "core", got.Labels["team"])
	})

	t.Run("without sanitize keeps raw strings", func(t *testing.T) {
		t.Parallel()
		var got createUserRequest
		require.NoError(t, binder.JSON(binder.WithoutSanitize())(newJSONRequest(`{"name":" raw "}`), &got))
		assert.Equal(t, " raw ", got.Name)
	})

	t.Run("charset parameter accepted", func(t *testing.T) {
		t.Parallel()
		req := newJSONRequest(`{"name":"x"}`)
		req.Header.Set("Content-Type", "application/json; charset=utf-8")
		var got createUserRequest
		require.NoError(t, binder.JSON()(req, &got))
		assert.Equal(t, "x", got.Name)
	})

	t.Run("not applicable without body and content type", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/users", nil)
		var got createUserRequest
		assert.ErrorIs(t, binder.JSON()(req, &got), binder.ErrBinderNotApplicable)
	})

	t.Run("body without content type", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(`{"name":"x"}`))
		var got createUserRequest
		assert.ErrorIs(t, binder.JSON()(req, &got), binder.ErrUnsupportedMediaType)
	})

	t.Run("wrong media type", func(t *testing.T) {
		t.Parallel()
		req := newJSONRequest(`name=x`)
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		var got createUserRequest
		assert.ErrorIs(t, binder.JSON()(req, &got), binder.ErrUnsupportedMediaType)
	})

	t.Run("malformed json", func(t *testing.T) {
		t.Parallel()
		for _, body := range []string{`{"name":`, `{"age":"old"}`, `not json`, ``, `{"name":"x"} {"name":"y"}`} {
			var got createUserRequest
			assert.ErrorIs(t, binder.JSON()(newJSONRequest(body), &got), binder.ErrFailedToParseJSON, body)
		}
	})

	t.Run("unknown fields", func(t *testing.T) {
		t.Parallel()
		var strict createUserRequest
		assert.ErrorIs(t, binder.JSON()(newJSONRequest(`{"admin":true}`), &strict), binder.ErrFailedToParseJSON)

		var lenient createUserRequest
		assert.NoError(t, binder.JSON(binder.WithUnknownFields())(newJSONRequest(`{"admin":true}`), &lenient))
	})

	t.Run("body too large", func(t *testing.T) {
		t.Parallel()
		body := `{"name":"` + strings.Repeat("a", 64) + `"}`
		var got createUserRequest
		assert.ErrorIs(t, binder.JSON(binder.WithMaxSize(16))(newJSONRequest(body), &got), binder.ErrBodyTooLarge)
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		req := newJSONRequest(`{"name":"x"}`).WithContext(ctx)
		var got createUserRequest
		assert.ErrorIs(t, binder.JSON()(req, &got), binder.ErrFailedToParseJSON)
	})
}
