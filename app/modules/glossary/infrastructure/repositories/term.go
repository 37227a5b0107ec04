package glossarydb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Black-And-White-Club/doppelkopf/app/shared/dberr"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Impl implements the Repository interface using Bun ORM.
type Impl struct {
	db bun.IDB
}

// NewRepository creates a new term repository.
func NewRepository(db bun.IDB) Repository {
	return &Impl{db: db}
}

func (r *Impl) resolveDB(db bun.IDB) bun.IDB {
	if db == nil {
		return r.db
	}
	return db
}

// List returns every term ordered by value.
func (r *Impl) List(ctx context.Context, db bun.IDB) ([]Term, error) {
	db = r.resolveDB(db)
	var terms []Term
	if err := db.NewSelect().Model(&terms).Order("value ASC").Scan(ctx); err != nil {
		return nil, fmt.Errorf("failed to list terms: %w", err)
	}
	return terms, nil
}

// GetByValue returns the term with exactly this value.
func (r *Impl) GetByValue(ctx context.Context, db bun.IDB, value string) (*Term, error) {
	db = r.resolveDB(db)
	term := new(Term)
	err := db.NewSelect().
		Model(term).
		Where("value = ?", value).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get term by value: %w", err)
	}
	return term, nil
}

// Insert stores a new term. The conflict clause keeps a duplicate from
// aborting the surrounding transaction, so the caller can still look the
// existing row up.
func (r *Impl) Insert(ctx context.Context, db bun.IDB, term *Term) error {
	db = r.resolveDB(db)
	if term.ID == uuid.Nil {
		term.ID = uuid.New()
	}
	if term.CreatedAt.IsZero() {
		term.CreatedAt = time.Now().UTC()
	}
	res, err := db.NewInsert().
		Model(term).
		On("CONFLICT (value) DO NOTHING").
		Exec(ctx)
	if err != nil {
		if dberr.IsUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("failed to insert term: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return ErrDuplicate
	}
	return nil
}

// DeleteByID removes a term and reports whether a row was removed.
func (r *Impl) DeleteByID(ctx context.Context, db bun.IDB, id uuid.UUID) (bool, error) {
	db = r.resolveDB(db)
	res, err := db.NewDelete().
		Model((*Term)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to delete term: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rows > 0, nil
}
