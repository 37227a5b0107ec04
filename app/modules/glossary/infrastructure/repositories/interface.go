package glossarydb

import (
	"context"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Repository defines the contract for term persistence.
type Repository interface {
	// List returns every term ordered by value.
	List(ctx context.Context, db bun.IDB) ([]Term, error)

	// GetByValue returns the term with exactly this value.
	GetByValue(ctx context.Context, db bun.IDB, value string) (*Term, error)

	// Insert stores a new term. Returns ErrDuplicate when the value exists.
	Insert(ctx context.Context, db bun.IDB, term *Term) error

	// DeleteByID removes a term and reports whether a row was removed.
	DeleteByID(ctx context.Context, db bun.IDB, id uuid.UUID) (bool, error)
}
