package service

import "errors"

// Error taxonomy for the request flow. Controllers map these onto HTTP
// statuses; nothing here is fatal to the process.
var (
	// ErrValidation covers malformed input (bad phone, missing field).
	ErrValidation = errors.New("validation failed")
	// ErrAuthorization covers session binding mismatches and attempts to
	// reach a quiz page without completing entry.
	ErrAuthorization = errors.New("session binding mismatch")
	// ErrNotFound covers unknown quiz or submission identifiers.
	ErrNotFound = errors.New("not found")
)
