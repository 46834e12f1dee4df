package core

import "errors"

// Common errors.
var (
	ErrUnknownFormat   = errors.New("unknown storage format")
	ErrMalformedRecord = errors.New("malformed note record")
)
