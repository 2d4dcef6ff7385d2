package session

import "errors"

// ErrSessionNotFound is returned when a token has no live session behind it
// (never created, cleared after submit, or expired).
var ErrSessionNotFound = errors.New("exam session not found")
