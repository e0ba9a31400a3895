package jwt

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"github.com/dmitrymomot/apicommons/pkg/logger"
)

const (
	// AuthoritiesClaim is the claim holding the principal's granted authorities,
	// either a JSON array or a comma-separated string.
	AuthoritiesClaim = "authorities"
	// AnonymousAuthority marks a request admitted without a token.
	AnonymousAuthority = "ROLE_ANONYMOUS"
)

// AnonymousClaims are stored for requests admitted without a token.
func AnonymousClaims() map[string]any {
	return map[string]any{AuthoritiesClaim: []any{AnonymousAuthority}}
}

func contextClaims(ctx context.Context) (map[string]any, bool) {
	claims, ok := GetClaims[map[string]any](ctx)
	return claims, ok && claims != nil
}

// Subject returns the sub claim of the current principal.
func Subject(ctx context.Context) (string, bool) {
	claims, ok := contextClaims(ctx)
	if !ok {
		return "", false
	}
	sub, ok := claims["sub"].(string)
	return sub, ok && sub != ""
}

// Authorities returns the authorities granted to the current principal, or
// nil when the request carries no claims.
func Authorities(ctx context.Context) []string {
	claims, ok := contextClaims(ctx)
	if !ok {
		return nil
	}

	switch v := claims[AuthoritiesClaim].(type) {
	case []string:
		return slices.Clone(v)
	case []any:
		out := make([]string, 0, len(v))
		for _, a := range v {
			if s, ok := a.(string); ok && s != "" {
				out = append(out, s)
			}
		}
		return out
	case string:
		var out []string
		for a := range strings.SplitSeq(v, ",") {
			if a = strings.TrimSpace(a); a != "" {
				out = append(out, a)
			}
		}
		return out
	default:
		return nil
	}
}

// HasAuthority reports whether the current principal holds authority.
func HasAuthority(ctx context.Context, authority string) bool {
	return slices.Contains(Authorities(ctx), authority)
}

// HasAnyAuthority reports whether the current principal holds at least one
// of the authorities.
func HasAnyAuthority(ctx context.Context, authorities ...string) bool {
	granted := Authorities(ctx)
	for _, a := range authorities {
		if slices.Contains(granted, a) {
			return true
		}
	}
	return false
}

// IsAuthenticated reports whether the request carries a verified principal
// with a subject.
func IsAuthenticated(ctx context.Context) bool {
	_, ok := Subject(ctx)
	return ok
}

// IsAnonymous reports whether the request was admitted without a token.
func IsAnonymous(ctx context.Context) bool {
	return HasAuthority(ctx, AnonymousAuthority)
}

// LoggerExtractor adds the principal's subject to log records.
func LoggerExtractor(ctx context.Context) (slog.Attr, bool) {
	sub, ok := Subject(ctx)
	if !ok {
		return slog.Attr{}, false
	}
	return logger.Subject(sub), true
}

var _ logger.ContextExtractor = LoggerExtractor
