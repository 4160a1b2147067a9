package storage

import "errors"

// Common errors returned by storage implementations.
var (
	// ErrUnknownDriver is returned when the configured storage driver is not supported.
	ErrUnknownDriver = errors.New("unknown storage driver")
	// ErrClosed is returned by operations attempted after Close.
	ErrClosed = errors.New("storage closed")
)
