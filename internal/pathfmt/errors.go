package pathfmt

import "errors"

// Sentinel errors for path decomposition.
var (
	// ErrEmptyPath is returned when an empty path is provided.
	ErrEmptyPath = errors.New("path cannot be empty")

	// ErrNotAbsolute is returned when a relative path is provided. Callers
	// must resolve paths before rendering them.
	ErrNotAbsolute = errors.New("path is not absolute")
)
