package jwt

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/dmitrymomot/apicommons/core"
	"github.com/dmitrymomot/apicommons/handler"
)

// TokenExtractorFunc extracts a token from an HTTP request.
type TokenExtractorFunc func(r *http.Request) (string, error)

// SkipFunc reports whether a request bypasses authentication.
type SkipFunc func(r *http.Request) bool

// MiddlewareConfig configures JWT middleware behavior.
type MiddlewareConfig struct {
	Service   *Service
	Extractor TokenExtractorFunc // defaults to BearerTokenExtractor
	Skip      SkipFunc
	// ErrorHandler renders authentication failures. Failures wrap
	// core.ErrUnauthorized so the central handler answers 401.
	ErrorHandler handler.ErrorHandler[handler.Context]
	// AllowAnonymous admits requests without a token with AnonymousClaims.
	// Invalid tokens are still rejected.
	AllowAnonymous bool
}

// Middleware creates JWT middleware with Bearer token extraction and the
// default error handler.
func Middleware(service *Service) func(next http.Handler) http.Handler {
	return MiddlewareWithConfig(MiddlewareConfig{Service: service})
}

// MiddlewareWithConfig verifies the request token and stores the token and
// its claims (map[string]any) in the request context.
func MiddlewareWithConfig(config MiddlewareConfig) func(next http.Handler) http.Handler {
	if config.Service == nil {
		panic("jwt: middleware requires a service")
	}
	if config.Extractor == nil {
		config.Extractor = BearerTokenExtractor
	}
	if config.ErrorHandler == nil {
		config.ErrorHandler = handler.NewErrorHandler(nil)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if config.Skip != nil && config.Skip(r) {
				next.ServeHTTP(w, r)
				return
			}

			tokenString, err := config.Extractor(r)
			if err != nil {
				if config.AllowAnonymous && errors.Is(err, ErrMissingToken) {
					next.ServeHTTP(w, r.WithContext(SetClaims(r.Context(), AnonymousClaims())))
					return
				}
				handler.ServeError(config.ErrorHandler, w, r, unauthorized(err))
				return
			}

			claims, err := config.Service.ExtractClaims(tokenString)
			if err != nil {
				handler.ServeError(config.ErrorHandler, w, r, unauthorized(err))
				return
			}

			ctx := SetToken(r.Context(), tokenString)
			ctx = SetClaims(ctx, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func unauthorized(err error) error {
	return fmt.Errorf("%w: %w", core.ErrUnauthorized, err)
}

// BearerTokenExtractor extracts tokens from "Authorization: Bearer <token>".
func BearerTokenExtractor(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", ErrMissingToken
	}

	scheme, token, ok := strings.Cut(authHeader, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" || strings.Contains(token, " ") {
		return "", ErrInvalidToken
	}
	return token, nil
}

// CookieTokenExtractor reads the token from a cookie.
func CookieTokenExtractor(cookieName string) TokenExtractorFunc {
	return func(r *http.Request) (string, error) {
		cookie, err := r.Cookie(cookieName)
		if err != nil || cookie.Value == "" {
			return "", ErrMissingToken
		}
		return cookie.Value, nil
	}
}

// QueryTokenExtractor reads the token from a query parameter. Tokens in URLs
// end up in access logs; prefer headers.
func QueryTokenExtractor(paramName string) TokenExtractorFunc {
	return func(r *http.Request) (string, error) {
		token := r.URL.Query().Get(paramName)
		if token == "" {
			return "", ErrMissingToken
		}
		return token, nil
	}
}

// HeaderTokenExtractor reads the token from a custom header.
func HeaderTokenExtractor(headerName string) TokenExtractorFunc {
	return func(r *http.Request) (string, error) {
		token := r.Header.Get(headerName)
		if token == "" {
			return "", ErrMissingToken
		}
		return token, nil
	}
}

// FirstOf tries extractors in order and returns the first token found.
func FirstOf(extractors ...TokenExtractorFunc) TokenExtractorFunc {
	return func(r *http.Request) (string, error) {
		for _, ex := range extractors {
			token, err := ex(r)
			if err == nil {
				return token, nil
			}
			if !errors.Is(err, ErrMissingToken) {
				return "", err
			}
		}
		return "", ErrMissingToken
	}
}
