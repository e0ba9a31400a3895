// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv for .env files and
// github.com/caarlos0/env/v11 for struct tag parsing. Load caches one parsed
// copy per configuration type; Parse skips the cache and accepts a key
// prefix; ResetCache clears the cache between tests.
//
//	type Config struct {
//		JWTSecret     string        `env:"JWT_SECRET" envDefault:"change-me"`
//		SlowThreshold time.Duration `env:"PERF_THRESHOLD" envDefault:"500ms"`
//	}
//
//	var cfg Config
//	config.MustLoad(&cfg)
//
// Errors wrap the sentinel values in errors.go; check them with errors.Is.
package config
