package jwt

import "errors"

var (
	ErrInvalidToken            = errors.New("jwt: invalid token")
	ErrMissingToken            = errors.New("jwt: missing token")
	ErrExpiredToken            = errors.New("jwt: token is expired")
	ErrTokenNotYetValid        = errors.New("jwt: token is not valid yet")
	ErrMissingSigningKey       = errors.New("jwt: missing signing key")
	ErrUnsupportedAlgorithm    = errors.New("jwt: unsupported algorithm")
	ErrInvalidClaims           = errors.New("jwt: invalid claims")
	ErrMissingClaims           = errors.New("jwt: missing claims")
	ErrInvalidSignature        = errors.New("jwt: invalid signature")
	ErrUnexpectedSigningMethod = errors.New("jwt: unexpected signing method")
)
