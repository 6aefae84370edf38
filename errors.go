package bankroll

import "errors"

var (
	// ErrInvalid is wrapped by every validation error: the state was left unchanged.
	ErrInvalid = errors.New("invalid input")
	// ErrNotFound is returned by a Store for a key that was never written.
	ErrNotFound = errors.New("not found")

	ErrUnknownAccount  = errors.New("unknown account")
	ErrUnknownSnapshot = errors.New("unknown snapshot")
	ErrUnknownAlert    = errors.New("unknown alert")
)
