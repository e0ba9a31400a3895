package sanitizer

import (
	"crypto/rand"
	"errors"
	"math/big"

	"github.com/google/uuid"
)

const alphanumeric = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// ErrNegativeLength is returned by RandomAlphanumeric for a negative length.
var ErrNegativeLength = errors.New("sanitizer: length must be non-negative")

// RandomAlphanumeric returns a random string of [A-Za-z0-9] of the given
// length drawn from crypto/rand.
func RandomAlphanumeric(length int) (string, error) {
	if length < 0 {
		return "", ErrNegativeLength
	}

	limit := big.NewInt(int64(len(alphanumeric)))
	b := make([]byte, length)
	for i := range b {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		b[i] = alphanumeric[n.Int64()]
	}
	return string(b), nil
}

// NewUUID returns a random UUIDv4 in canonical form.
func NewUUID() string {
	return uuid.NewString()
}
