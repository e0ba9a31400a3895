package binder

import "errors"

var (
	// ErrBinderNotApplicable signals that a binder has nothing to read from
	// the request. handler.Wrap skips such binders.
	ErrBinderNotApplicable = errors.New("binder not applicable")

	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrFailedToParseJSON    = errors.New("failed to parse JSON request body")
	ErrFailedToParseQuery   = errors.New("failed to parse query parameters")
	ErrFailedToParsePath    = errors.New("failed to parse path parameters")
	ErrBodyTooLarge         = errors.New("request body too large")
)
