package playerservice

import "errors"

var (
	// ErrEmptyName indicates a player name that is blank after trimming.
	ErrEmptyName = errors.New("player name is empty")

	// ErrPlayerNotFound indicates no player has the requested id.
	ErrPlayerNotFound = errors.New("player not found")
)
