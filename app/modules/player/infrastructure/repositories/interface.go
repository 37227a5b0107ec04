package playerdb

import (
	"context"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Repository defines the contract for player persistence.
type Repository interface {
	Create(ctx context.Context, db bun.IDB, player *Player) error
	List(ctx context.Context, db bun.IDB) ([]Player, error)
	GetByID(ctx context.Context, db bun.IDB, id uuid.UUID) (*Player, error)

	// GetByIDs returns the players that exist among ids, in no particular order.
	GetByIDs(ctx context.Context, db bun.IDB, ids []uuid.UUID) ([]Player, error)
}
