package password

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmptyPassword    = errors.New("password: empty password")
	ErrPasswordTooLong  = errors.New("password: longer than 72 bytes")
	ErrPasswordMismatch = errors.New("password: mismatch")
	ErrInvalidCost      = errors.New("password: invalid bcrypt cost")
)

// MaxLength is the longest password bcrypt accepts, in bytes.
const MaxLength = 72

// Option configures a Hasher.
type Option func(*Hasher)

// WithCost sets the bcrypt cost. Values outside bcrypt's range make New fail.
func WithCost(cost int) Option {
	return func(h *Hasher) { h.cost = cost }
}

// Hasher hashes and verifies passwords with bcrypt.
type Hasher struct {
	cost int
}

// New creates a Hasher using bcrypt.DefaultCost unless configured otherwise.
func New(opts ...Option) (*Hasher, error) {
	h := &Hasher{cost: bcrypt.DefaultCost}
	for _, opt := range opts {
		opt(h)
	}
	if h.cost < bcrypt.MinCost || h.cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCost, h.cost)
	}
	return h, nil
}

// Hash returns the bcrypt hash of password.
func (h *Hasher) Hash(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}
	if len(password) > MaxLength {
		return "", ErrPasswordTooLong
	}
	b, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(b), nil
}

// Compare checks password against hash. A wrong password yields
// ErrPasswordMismatch; a malformed hash yields the bcrypt error.
func (h *Hasher) Compare(hash, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrPasswordMismatch
	}
	return err
}

// NeedsRehash reports whether hash was produced with a different cost.
func (h *Hasher) NeedsRehash(hash string) bool {
	cost, err := bcrypt.Cost([]byte(hash))
	return err != nil || cost != h.cost
}

var defaultHasher = &Hasher{cost: bcrypt.DefaultCost}

// Hash hashes password with the default cost.
func Hash(password string) (string, error) {
	return defaultHasher.Hash(password)
}

// Compare checks password against hash.
func Compare(hash, password string) error {
	return defaultHasher.Compare(hash, password)
}
