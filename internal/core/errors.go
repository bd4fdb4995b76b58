package core

import "errors"

var (
	// ErrNotFound is returned by repositories and key-value stores when the
	// requested record or key does not exist.
	ErrNotFound = errors.New("not found")
)
