package jwt

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"hash"
	"maps"
	"strings"
	"time"
)

// HeaderType is the typ header of every issued token.
const HeaderType = "JWT"

// Algorithm is an HMAC signing algorithm.
type Algorithm string

const (
	HS256 Algorithm = "HS256"
	HS512 Algorithm = "HS512"
)

func (a Algorithm) hash() (func() hash.Hash, bool) {
	switch a {
	case HS256:
		return sha256.New, true
	case HS512:
		return sha512.New, true
	default:
		return nil, false
	}
}

// Defaults applied by New.
const (
	DefaultAlgorithm  = HS512
	DefaultExpiration = 24 * time.Hour
)

// Header represents the JWT header as defined in RFC 7515
type Header struct {
	Type      string    `json:"typ"`
	Algorithm Algorithm `json:"alg"`
}

// StandardClaims represents the registered JWT claims defined in RFC 7519 Section 4.1.
// Temporal claims are Unix timestamps; zero means unset.
type StandardClaims struct {
	ID        string `json:"jti,omitempty"`
	Subject   string `json:"sub,omitempty"`
	Issuer    string `json:"iss,omitempty"`
	Audience  string `json:"aud,omitempty"`
	ExpiresAt int64  `json:"exp,omitempty"`
	NotBefore int64  `json:"nbf,omitempty"`
	IssuedAt  int64  `json:"iat,omitempty"`
}

// Valid validates the temporal claims against the current time.
func (c StandardClaims) Valid() error {
	return c.validAt(time.Now())
}

func (c StandardClaims) validAt(now time.Time) error {
	ts := now.Unix()
	if c.ExpiresAt > 0 && ts >= c.ExpiresAt {
		return ErrExpiredToken
	}
	if c.NotBefore > 0 && ts < c.NotBefore {
		return ErrTokenNotYetValid
	}
	return nil
}

// registeredClaims skips the wall-clock Valid check; Parse already
// validated the temporal claims against the service clock.
type registeredClaims StandardClaims

// Option configures a Service.
type Option func(*Service)

// WithAlgorithm selects the signing algorithm. Unsupported values make New fail.
func WithAlgorithm(alg Algorithm) Option {
	return func(s *Service) { s.alg = alg }
}

// WithExpiration sets the lifetime of tokens issued by GenerateToken.
func WithExpiration(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.expiration = d
		}
	}
}

// WithClock replaces time.Now, e.g. in tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// Service issues and verifies HMAC-signed tokens. It is safe for concurrent use.
type Service struct {
	signingKey []byte
	alg        Algorithm
	hash       func() hash.Hash
	expiration time.Duration
	now        func() time.Time
}

// New creates a JWT service signing with HS512 and a 24 hour token lifetime
// unless configured otherwise.
func New(signingKey []byte, opts ...Option) (*Service, error) {
	if len(signingKey) == 0 {
		return nil, ErrMissingSigningKey
	}

	s := &Service{
		signingKey: signingKey,
		alg:        DefaultAlgorithm,
		expiration: DefaultExpiration,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	h, ok := s.alg.hash()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, s.alg)
	}
	s.hash = h
	return s, nil
}

// NewFromString creates a new JWT service from a string signing key.
func NewFromString(signingKey string, opts ...Option) (*Service, error) {
	return New([]byte(signingKey), opts...)
}

// Algorithm reports the signing algorithm.
func (s *Service) Algorithm() Algorithm { return s.alg }

// Expiration reports the lifetime of tokens issued by GenerateToken.
func (s *Service) Expiration() time.Duration { return s.expiration }

// Generate signs any JSON-serializable claims structure.
func (s *Service) Generate(claims any) (string, error) {
	if claims == nil {
		return "", ErrMissingClaims
	}

	headerJSON, err := json.Marshal(Header{Type: HeaderType, Algorithm: s.alg})
	if err != nil {
		return "", fmt.Errorf("failed to marshal header: %w", err)
	}

	claimsJSON, err := json.Marshal(claims)
	if err != nil {
		return "", fmt.Errorf("failed to marshal claims: %w", err)
	}

	payload := base64URLEncode(headerJSON) + "." + base64URLEncode(claimsJSON)
	return payload + "." + s.sign(payload), nil
}

// GenerateToken issues a token for subject. Extra claims are copied first,
// then sub, iat and exp are set, so they cannot be overridden by extra.
func (s *Service) GenerateToken(subject string, extra map[string]any) (string, error) {
	now := s.now()
	claims := make(map[string]any, len(extra)+3)
	maps.Copy(claims, extra)
	claims["sub"] = subject
	claims["iat"] = now.Unix()
	claims["exp"] = now.Add(s.expiration).Unix()
	return s.Generate(claims)
}

// Parse verifies the signature, algorithm and temporal claims of a token and
// unmarshals its claims into the provided structure. Claims types with a
// Valid() error method get an extra check.
func (s *Service) Parse(tokenString string, claims any) error {
	parts := strings.Split(tokenString, ".")
	if len(parts) != 3 {
		return ErrInvalidToken
	}

	payload := parts[0] + "." + parts[1]
	if subtle.ConstantTimeCompare([]byte(parts[2]), []byte(s.sign(payload))) != 1 {
		return ErrInvalidSignature
	}

	headerJSON, err := base64URLDecode(parts[0])
	if err != nil {
		return fmt.Errorf("%w: decode header: %w", ErrInvalidToken, err)
	}

	var header Header
	if err := json.Unmarshal(headerJSON, &header); err != nil {
		return fmt.Errorf("%w: unmarshal header: %w", ErrInvalidToken, err)
	}

	// Reject tokens using unexpected algorithms to prevent algorithm confusion attacks
	if header.Algorithm != s.alg {
		return ErrUnexpectedSigningMethod
	}

	claimsJSON, err := base64URLDecode(parts[1])
	if err != nil {
		return fmt.Errorf("%w: decode claims: %w", ErrInvalidToken, err)
	}

	var registered StandardClaims
	if err := json.Unmarshal(claimsJSON, &registered); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidClaims, err)
	}
	if err := registered.validAt(s.now()); err != nil {
		return err
	}

	if err := json.Unmarshal(claimsJSON, claims); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidClaims, err)
	}

	if v, ok := claims.(interface{ Valid() error }); ok {
		if err := v.Valid(); err != nil {
			return err
		}
	}

	return nil
}

// ExtractClaims verifies token and returns its claims.
func (s *Service) ExtractClaims(token string) (map[string]any, error) {
	claims := make(map[string]any)
	if err := s.Parse(token, &claims); err != nil {
		return nil, err
	}
	return claims, nil
}

// ExtractSubject verifies token and returns its sub claim.
func (s *Service) ExtractSubject(token string) (string, error) {
	var claims registeredClaims
	if err := s.Parse(token, &claims); err != nil {
		return "", err
	}
	return claims.Subject, nil
}

// ExtractExpiration verifies token and returns its exp claim. A token
// without exp yields the zero time.
func (s *Service) ExtractExpiration(token string) (time.Time, error) {
	var claims registeredClaims
	if err := s.Parse(token, &claims); err != nil {
		return time.Time{}, err
	}
	if claims.ExpiresAt == 0 {
		return time.Time{}, nil
	}
	return time.Unix(claims.ExpiresAt, 0), nil
}

// ValidateToken reports whether token is authentic, unexpired and issued
// for subject.
func (s *Service) ValidateToken(token, subject string) bool {
	sub, err := s.ExtractSubject(token)
	return err == nil && sub == subject
}

func (s *Service) sign(payload string) string {
	h := hmac.New(s.hash, s.signingKey)
	h.Write([]byte(payload))
	return base64URLEncode(h.Sum(nil))
}

func base64URLEncode(data []byte) string {
	return base64.RawURLEncoding.EncodeToString(data)
}

func base64URLDecode(s string) ([]byte, error) {
	return base64.RawURLEncoding.DecodeString(s)
}
