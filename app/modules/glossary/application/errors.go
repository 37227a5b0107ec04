package glossaryservice

import "errors"

var (
	// ErrEmptyTerm indicates a term value that is blank after trimming.
	ErrEmptyTerm = errors.New("term value is empty")

	// ErrTermNotFound indicates no term matches the lookup.
	ErrTermNotFound = errors.New("term not found")
)
