package glossarydb

import "errors"

var (
	// ErrNotFound indicates the requested term does not exist.
	ErrNotFound = errors.New("term not found")

	// ErrDuplicate indicates a term with the same value is already stored.
	ErrDuplicate = errors.New("term already exists")
)
