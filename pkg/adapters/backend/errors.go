package backend

import "errors"

// The three failure classes of an upstream call. Wrapped errors keep the
// underlying cause; callers branch with errors.Is.
var (
	// ErrUnreachable means the request never completed: connection refused,
	// DNS failure, timeout, or the body could not be read.
	ErrUnreachable = errors.New("backend unreachable")

	// ErrStatus means the backend answered with a non-200 status.
	ErrStatus = errors.New("backend returned error status")

	// ErrMalformed means the backend answered 200 but the body did not
	// decode into the expected shape.
	ErrMalformed = errors.New("backend returned malformed response")
)
