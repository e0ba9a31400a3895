package core

import (
	"encoding/json"
	"reflect"
	"time"
)

// Response is the standard envelope returned by every API operation.
//
// Data is rendered as JSON null for envelopes built by Error and for nil
// pointers, maps, slices and interfaces. Other payloads, zero values
// included, are rendered as given. Message is rendered as null when empty:
//
//	{"success": true, "data": {...}, "message": null}
type Response[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data"`
	Message string `json:"message"`
	noData  bool
}

// Success wraps data in a successful envelope without a message.
func Success[T any](data T) Response[T] {
	return Response[T]{Success: true, Data: data}
}

// SuccessWithMessage wraps data in a successful envelope with a message.
func SuccessWithMessage[T any](data T, message string) Response[T] {
	return Response[T]{Success: true, Data: data, Message: message}
}

// Error creates a failed envelope carrying only a message.
func Error[T any](message string) Response[T] {
	return Response[T]{Message: message, noData: true}
}

// Failure creates a failed envelope that still carries a payload,
// e.g. a field to message map for validation failures.
func Failure[T any](data T, message string) Response[T] {
	return Response[T]{Data: data, Message: message}
}

func (r Response[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.wire())
}

type responseWire struct {
	Success bool    `json:"success"`
	Data    any     `json:"data"`
	Message *string `json:"message"`
}

func (r Response[T]) wire() responseWire {
	w := responseWire{Success: r.Success, Data: r.Data}
	if r.noData || isNil(r.Data) {
		w.Data = nil
	}
	if r.Message != "" {
		msg := r.Message
		w.Message = &msg
	}
	return w
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}

// PagedResponse extends Response with pagination metadata.
// The totals are rendered as supplied; keeping TotalPages consistent with
// TotalElements and Size is up to the caller.
type PagedResponse[T any] struct {
	Response[[]T]
	Page          int   `json:"page"`
	Size          int   `json:"size"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
}

// Paged creates a successful paginated envelope.
func Paged[T any](items []T, page, size int, totalElements int64, totalPages int) PagedResponse[T] {
	return PagedResponse[T]{
		Response:      Success(items),
		Page:          page,
		Size:          size,
		TotalElements: totalElements,
		TotalPages:    totalPages,
	}
}

// PagedWithMessage creates a successful paginated envelope with a message.
func PagedWithMessage[T any](items []T, message string, page, size int, totalElements int64, totalPages int) PagedResponse[T] {
	p := Paged(items, page, size, totalElements, totalPages)
	p.Message = message
	return p
}

// TotalPagesFor returns the number of pages needed to hold total elements.
// A non-positive size yields zero pages.
func TotalPagesFor(total int64, size int) int {
	if size <= 0 || total <= 0 {
		return 0
	}
	return int((total + int64(size) - 1) / int64(size))
}

func (p PagedResponse[T]) MarshalJSON() ([]byte, error) {
	w := p.wire()
	return json.Marshal(struct {
		responseWire
		Page          int   `json:"page"`
		Size          int   `json:"size"`
		TotalElements int64 `json:"totalElements"`
		TotalPages    int   `json:"totalPages"`
	}{w, p.Page, p.Size, p.TotalElements, p.TotalPages})
}

// ErrorResponse is a detailed error body for clients that need more than
// the envelope: a machine code, the request path and arbitrary details.
type ErrorResponse struct {
	Code      string    `json:"code"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Path      string    `json:"path,omitempty"`
	Details   any       `json:"details,omitempty"`
}

// ErrorResponseOption configures an ErrorResponse.
type ErrorResponseOption func(*ErrorResponse)

// WithPath sets the request path the error relates to.
func WithPath(path string) ErrorResponseOption {
	return func(e *ErrorResponse) { e.Path = path }
}

// WithDetails attaches additional error details.
func WithDetails(details any) ErrorResponseOption {
	return func(e *ErrorResponse) { e.Details = details }
}

// now is replaced in tests.
var now = time.Now

// NewErrorResponse creates an ErrorResponse stamped with the current time.
func NewErrorResponse(code, message string, opts ...ErrorResponseOption) ErrorResponse {
	e := ErrorResponse{
		Code:      code,
		Message:   message,
		Timestamp: now().UTC(),
	}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}
