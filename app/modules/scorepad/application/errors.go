package scorepadservice

import "errors"

var (
	ErrScorepadNotFound = errors.New("scorepad not found")
	ErrEmptyName        = errors.New("scorepad name is empty")
	ErrInvalidPlayers   = errors.New("invalid players")
	ErrInvalidPlayedAt  = errors.New("invalid playedAt")

	// ErrConcurrentMatch indicates another match was recorded for the same
	// scorepad at the same time; the client may retry.
	ErrConcurrentMatch = errors.New("another match was recorded concurrently")
)
