package selmark

import "errors"

// Errors returned by selection processing.
var (
	// ErrNoSelection indicates the host has no active selection range.
	ErrNoSelection = errors.New("no active selection")

	// ErrEmptyQuery indicates a marker was applied with an empty query.
	ErrEmptyQuery = errors.New("empty query")
)
