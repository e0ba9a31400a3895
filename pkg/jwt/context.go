package jwt

import (
	"context"
	"encoding/json"
	"fmt"
)

type contextKey struct{ name string }

func (c contextKey) String() string { return c.name }

var (
	tokenContextKey  = &contextKey{name: "jwt"}
	claimsContextKey = &contextKey{name: "jwt_claims"}
)

// SetToken stores the raw token in the context.
func SetToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenContextKey, token)
}

// SetClaims stores claims (struct or map) in the context.
func SetClaims(ctx context.Context, claims any) context.Context {
	return context.WithValue(ctx, claimsContextKey, claims)
}

// GetToken returns the raw token from the context.
func GetToken(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenContextKey).(string)
	return token, ok
}

// GetClaims returns the claims from the context as T.
func GetClaims[T any](ctx context.Context) (T, bool) {
	claims, ok := ctx.Value(claimsContextKey).(T)
	return claims, ok
}

// GetClaimsAs decodes the context claims into claims, converting through
// JSON when the stored type differs.
func GetClaimsAs[T any](ctx context.Context, claims *T) error {
	if claims == nil {
		return ErrInvalidClaims
	}

	v := ctx.Value(claimsContextKey)
	if v == nil {
		return ErrMissingClaims
	}

	if typed, ok := v.(T); ok {
		*claims = typed
		return nil
	}

	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidClaims, err)
	}
	if err := json.Unmarshal(b, claims); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidClaims, err)
	}
	return nil
}
