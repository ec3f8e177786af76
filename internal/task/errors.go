package task

import "errors"

// Shared error vocabulary for the parser, the list, and the storage codec.
// Callers classify with errors.Is; messages are wrapped per call site.
var (
	ErrMissingDescription = errors.New("missing description")
	ErrMissingDateTime    = errors.New("missing date")
	ErrInvalidFormat      = errors.New("invalid format")
	ErrDateParse          = errors.New("invalid calendar date")
	ErrInvalidIndex       = errors.New("invalid task number")
)
