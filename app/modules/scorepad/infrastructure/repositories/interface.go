package scorepaddb

import (
	"context"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Repository defines the contract for scorepad and match persistence.
type Repository interface {
	Create(ctx context.Context, db bun.IDB, scorepad *Scorepad) error
	GetByID(ctx context.Context, db bun.IDB, id uuid.UUID) (*Scorepad, error)

	// List returns every scorepad, most recently played first, with MatchCount filled.
	List(ctx context.Context, db bun.IDB) ([]Scorepad, error)

	// ListMatches returns the matches of a scorepad in sequence order.
	ListMatches(ctx context.Context, db bun.IDB, scorepadID uuid.UUID) ([]Match, error)

	// AcquireScorepadLock serializes match recording per scorepad for the
	// rest of the transaction.
	AcquireScorepadLock(ctx context.Context, db bun.IDB, scorepadID uuid.UUID) error

	NextMatchSeq(ctx context.Context, db bun.IDB, scorepadID uuid.UUID) (int, error)
	InsertMatch(ctx context.Context, db bun.IDB, match *Match) error
}
