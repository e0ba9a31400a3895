package core

import (
	"fmt"
	"maps"
	"net/http"
)

// Kind classifies an APIError. The set is closed: every kind maps to exactly
// one HTTP status.
type Kind int

const (
	// KindClient is a malformed or rejected API-level request.
	KindClient Kind = iota
	// KindNotFound is a missing resource.
	KindNotFound
	// KindValidation is a semantic validation failure with per-field messages.
	KindValidation
	// KindInternal is an unclassified failure. Its details never reach the client.
	KindInternal
)

func (k Kind) String() string {
	switch k {
	case KindClient:
		return "client"
	case KindNotFound:
		return "not_found"
	case KindValidation:
		return "validation"
	case KindInternal:
		return "internal"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// StatusFor returns the HTTP status code for an error kind.
func StatusFor(k Kind) int {
	switch k {
	case KindClient:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindValidation:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// Code is a machine-readable error code. The predeclared codes cover the
// built-in kinds; services may define their own Code constants.
type Code string

const (
	CodeAPIException    Code = "API_EXCEPTION"
	CodeBadRequest      Code = "BAD_REQUEST"
	CodeResourceMissing Code = "RESOURCE_NOT_FOUND"
	CodeValidation      Code = "VALIDATION_ERROR"
	CodeInternal        Code = "INTERNAL_ERROR"
)

// APIError is a typed failure raised at the failure site and converted into
// a response by the central error handler.
type APIError struct {
	Kind    Kind
	Code    Code
	Message string
	// Fields holds per-field messages for KindValidation errors.
	Fields map[string]string
	cause  error
}

func (e *APIError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.cause
}

// Status returns the HTTP status code for the error's kind.
func (e *APIError) Status() int {
	return StatusFor(e.Kind)
}

// NewAPIError creates a client error with a caller-defined code.
func NewAPIError(code Code, message string) *APIError {
	return &APIError{Kind: KindClient, Code: code, Message: message}
}

// WrapAPIError creates a client error that keeps the underlying cause.
func WrapAPIError(code Code, message string, cause error) *APIError {
	return &APIError{Kind: KindClient, Code: code, Message: message, cause: cause}
}

// NewNotFound creates a not-found error with the default code.
func NewNotFound(message string) *APIError {
	return NewNotFoundWithCode(CodeResourceMissing, message)
}

// NewNotFoundWithCode creates a not-found error with a custom code.
func NewNotFoundWithCode(code Code, message string) *APIError {
	return &APIError{Kind: KindNotFound, Code: code, Message: message}
}

// NewResourceNotFound reports a missing resource by type and id,
// e.g. "User with id 42 not found".
func NewResourceNotFound(resourceType string, id any) *APIError {
	return NewNotFound(fmt.Sprintf("%s with id %v not found", resourceType, id))
}

// NewValidationError creates a validation error with the default code.
// The fields map is copied.
func NewValidationError(message string, fields map[string]string) *APIError {
	return NewValidationErrorWithCode(CodeValidation, message, fields)
}

// NewValidationErrorWithCode creates a validation error with a custom code.
func NewValidationErrorWithCode(code Code, message string, fields map[string]string) *APIError {
	return &APIError{
		Kind:    KindValidation,
		Code:    code,
		Message: message,
		Fields:  maps.Clone(fields),
	}
}

// NewInternal wraps an unexpected failure.
func NewInternal(cause error) *APIError {
	return &APIError{Kind: KindInternal, Code: CodeInternal, Message: "internal error", cause: cause}
}
