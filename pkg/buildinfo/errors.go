package buildinfo

import "errors"

var (
	ErrMetadataNotFound = errors.New("buildinfo: metadata file not found")
	ErrInvalidMetadata  = errors.New("buildinfo: invalid metadata")
)
