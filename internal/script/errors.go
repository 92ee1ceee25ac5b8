package script

import "errors"

// Errors returned by script operations.
var (
	// ErrNoDecorateFunc indicates the script defines no decorate function.
	ErrNoDecorateFunc = errors.New("script does not define a decorate function")

	// ErrStateClosed indicates the script's Lua state has been closed.
	ErrStateClosed = errors.New("script state is closed")
)
