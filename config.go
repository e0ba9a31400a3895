package apicommons

import (
	"strings"
	"time"

	"github.com/dmitrymomot/apicommons/pkg/config"
)

// DefaultJWTSecret is the fallback signing secret. Deployments must override
// it through JWT_SECRET.
const DefaultJWTSecret = "defaultSecretKeyWhichShouldBeChangedInProduction"

// Config is the externally supplied configuration of the kit.
type Config struct {
	ServiceName string `env:"SERVICE_NAME" envDefault:"api"`
	Environment string `env:"APP_ENV" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL"`

	LoggingEnabled     bool  `env:"COMMONS_LOGGING_ASPECT_ENABLED" envDefault:"true"`
	LoggingMaxPayload  int   `env:"COMMONS_LOGGING_MAX_PAYLOAD" envDefault:"10000"`
	PerformanceEnabled bool  `env:"COMMONS_PERFORMANCE_ASPECT_ENABLED" envDefault:"true"`
	// ThresholdMillis must be positive; New rejects zero and negatives.
	ThresholdMillis    int64 `env:"COMMONS_PERFORMANCE_THRESHOLD_MS" envDefault:"500"`

	JWTSecret           string `env:"JWT_SECRET" envDefault:"defaultSecretKeyWhichShouldBeChangedInProduction"`
	JWTExpirationMillis int64  `env:"JWT_EXPIRATION_MS" envDefault:"86400000"`

	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
	CORSMaxAge         int      `env:"CORS_MAX_AGE" envDefault:"3600"`

	// MetadataFile is a YAML project descriptor served by /api/health/info.
	MetadataFile string `env:"COMMONS_METADATA_FILE"`
}

// DefaultConfig returns the configuration used when no variable is set.
func DefaultConfig() Config {
	return Config{
		ServiceName:         "api",
		Environment:         "development",
		LoggingEnabled:      true,
		LoggingMaxPayload:   10000,
		PerformanceEnabled:  true,
		ThresholdMillis:     500,
		JWTSecret:           DefaultJWTSecret,
		JWTExpirationMillis: 86400000,
		CORSAllowedOrigins:  []string{"*"},
		CORSMaxAge:          3600,
	}
}

// LoadConfig reads Config from the environment and an optional .env file.
// The result is cached; see config.ResetCache.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// SlowThreshold is the performance threshold as a duration.
func (c Config) SlowThreshold() time.Duration {
	return time.Duration(c.ThresholdMillis) * time.Millisecond
}

// JWTExpiration is the token lifetime as a duration.
func (c Config) JWTExpiration() time.Duration {
	return time.Duration(c.JWTExpirationMillis) * time.Millisecond
}

// UsesDefaultSecret reports whether the signing secret was left unchanged.
func (c Config) UsesDefaultSecret() bool {
	return c.JWTSecret == DefaultJWTSecret
}

func (c Config) corsOrigins() []string {
	origins := make([]string, 0, len(c.CORSAllowedOrigins))
	for _, o := range c.CORSAllowedOrigins {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}
