package health

import "errors"

var (
	ErrCheckFailed = errors.New("health: check failed")
	ErrNotReady    = errors.New("health: service not ready")
)
