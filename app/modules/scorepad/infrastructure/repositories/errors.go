package scorepaddb

import "errors"

var (
	// ErrNotFound indicates the requested scorepad does not exist.
	ErrNotFound = errors.New("scorepad not found")

	// ErrSeqConflict indicates another match already took the sequence number.
	ErrSeqConflict = errors.New("match sequence already taken")
)
