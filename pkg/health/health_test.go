package health_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/apicommons/pkg/buildinfo"
	"github.com/dmitrymomot/apicommons/pkg/health"
	"github.com/dmitrymomot/apicommons/pkg/logger"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

func get(t *testing.T, h http.Handler, path string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return rec, env
}

func mount(opts ...health.Option) http.Handler {
	r := chi.NewRouter()
	r.Mount("/api/health", health.Routes(opts...))
	r.Mount("/api/metrics", health.MetricsRoutes(opts...))
	return r
}

func TestPing(t *testing.T) {
	t.Parallel()

	rec, env := get(t, mount(health.WithLogger(logger.Discard())), "/api/health/ping")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
	assert.JSONEq(t, `"pong"`, string(env.Data))
	assert.Equal(t, "Service is up and running", env.Message)
}

func TestInfo(t *testing.T) {
	t.Parallel()

	build := buildinfo.Build{Module: "example.fr/billing", Version: "v1.4.0", GoVersion: "go1.24.5", Revision: "abc123", Time: buildinfo.Unknown}
	h := mount(
		health.WithLogger(logger.Discard()),
		health.WithBuild(build),
		health.WithMetadata(buildinfo.Metadata{"artifactId": "billing-api"}),
	)

	rec, env := get(t, h, "/api/health/info")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Application info", env.Message)

	var data struct {
		Build    buildinfo.Build `json:"build"`
		Runtime  map[string]any  `json:"runtime"`
		Metadata map[string]any  `json:"metadata"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, build, data.Build)
	assert.Contains(t, data.Runtime, "goVersion")
	assert.Contains(t, data.Runtime, "numCPU")
	assert.Equal(t, "billing-api", data.Metadata["artifactId"])
}

func TestReady(t *testing.T) {
	t.Parallel()

	t.Run("no checks", func(t *testing.T) {
		t.Parallel()
		rec, env := get(t, mount(health.WithLogger(logger.Discard())), "/api/health/ready")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, env.Success)
		assert.JSONEq(t, `{"status":"UP","checks":{}}`, string(env.Data))
	})

	t.Run("redis up", func(t *testing.T) {
		t.Parallel()
		mr := miniredis.RunT(t)
		client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
		t.Cleanup(func() { _ = client.Close() })

		rec, env := get(t, mount(
			health.WithLogger(logger.Discard()),
			health.WithChecks(health.Redis(client)),
		), "/api/health/ready")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Service is ready", env.Message)
		assert.JSONEq(t, `{"status":"UP","checks":{"redis":"UP"}}`, string(env.Data))
	})

	t.Run("redis down", func(t *testing.T) {
		t.Parallel()
		mr := miniredis.RunT(t)
		client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
		t.Cleanup(func() { _ = client.Close() })
		mr.Close()

		rec, env := get(t, mount(
			health.WithLogger(logger.Discard()),
			health.WithChecks(
				health.Redis(client),
				health.Func("queue", func(context.Context) error { return nil }),
			),
			health.WithCheckTimeout(time.Second),
		), "/api/health/ready")

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.False(t, env.Success)
		assert.Equal(t, "Service is not ready", env.Message)
		assert.JSONEq(t, `{"status":"DOWN","checks":{"redis":"DOWN","queue":"UP"},"failed":["redis"]}`, string(env.Data))
	})
}

func TestRunChecks(t *testing.T) {
	t.Parallel()

	t.Run("timeout", func(t *testing.T) {
		t.Parallel()
		slow := health.Func("slow", func(ctx context.Context) error {
			<-ctx.Done()
			return ctx.Err()
		})
		res := health.RunChecks(context.Background(), logger.Discard(), 10*time.Millisecond, slow)
		assert.False(t, res.Ready())
		assert.Equal(t, []string{"slow"}, res.Failed)

		ok := health.RunChecks(context.Background(), nil, time.Second)
		assert.True(t, ok.Ready())
		assert.NoError(t, ok.Err())
	})

	t.Run("failed names sorted", func(t *testing.T) {
		t.Parallel()
		fail := func(context.Context) error { return errors.New("down") }
		res := health.RunChecks(context.Background(), nil, time.Second,
			health.Func("zeta", fail),
			health.Func("alpha", fail),
			health.Func("mid", func(context.Context) error { return nil }),
		)
		assert.Equal(t, health.StatusDown, res.Status)
		assert.Equal(t, []string{"alpha", "zeta"}, res.Failed)
		assert.Equal(t, health.StatusUp, res.Checks["mid"])
		assert.ErrorIs(t, res.Err(), health.ErrNotReady)
		assert.EqualError(t, res.Err(), "health: service not ready: alpha, zeta")
	})
}

func TestMetrics(t *testing.T) {
	t.Parallel()

	started := time.Now().Add(-(26*time.Hour + 3*time.Minute + 4*time.Second))
	h := mount(health.WithLogger(logger.Discard()), health.WithStartTime(started))

	t.Run("runtime", func(t *testing.T) {
		t.Parallel()
		rec, env := get(t, h, "/api/metrics/runtime")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Runtime metrics", env.Message)

		var data map[string]map[string]any
		require.NoError(t, json.Unmarshal(env.Data, &data))
		assert.Contains(t, data["memory"], "heapAlloc")
		assert.Contains(t, data["goroutines"], "count")
		assert.Contains(t, data["gc"], "numGC")
		assert.Contains(t, data["os"], "availableProcessors")
	})

	t.Run("application", func(t *testing.T) {
		t.Parallel()
		rec, env := get(t, h, "/api/metrics/application")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Application metrics", env.Message)

		var data struct {
			Uptime          int64          `json:"uptime"`
			UptimeFormatted string         `json:"uptimeFormatted"`
			Platform        map[string]any `json:"platform"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &data))
		assert.GreaterOrEqual(t, data.Uptime, (26 * time.Hour).Milliseconds())
		assert.Contains(t, data.UptimeFormatted, "1 days, 2 hours, 3 minutes")
		assert.Contains(t, data.Platform, "goVersion")
		assert.Contains(t, data.Platform, "os")
	})
}

func TestFormatUptime(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "0 days, 0 hours, 0 minutes, 0 seconds", health.FormatUptime(999*time.Millisecond))
	assert.Equal(t, "0 days, 0 hours, 1 minutes, 5 seconds", health.FormatUptime(65*time.Second))
	assert.Equal(t, "2 days, 3 hours, 4 minutes, 5 seconds",
		health.FormatUptime(2*24*time.Hour+3*time.Hour+4*time.Minute+5*time.Second))
}
