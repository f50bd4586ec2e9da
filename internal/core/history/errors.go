package history

import "errors"

// Errors returned by Save and Restore. Restore wraps them with the offending
// key so callers can log something useful and still match with errors.Is.
var (
	ErrHashMismatch    = errors.New("document changed since history was saved")
	ErrMissingField    = errors.New("missing or malformed history field")
	ErrInvalidPosition = errors.New("history position out of range")
	ErrMalformedEntry  = errors.New("malformed history entry")
)
