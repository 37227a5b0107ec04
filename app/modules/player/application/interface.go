package playerservice

import (
	"context"

	"github.com/google/uuid"
)

// PlayerInfo is the public view of a player.
type PlayerInfo struct {
	ID      string `json:"_id"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// Service defines the player operations.
type Service interface {
	CreatePlayer(ctx context.Context, name, picture string) (*PlayerInfo, error)
	ListPlayers(ctx context.Context) ([]PlayerInfo, error)
	GetPlayer(ctx context.Context, id uuid.UUID) (*PlayerInfo, error)
}
