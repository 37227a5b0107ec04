package scorepaddb

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

// NewRepository creates a new scorepad repository.
func NewRepository(db bun.IDB) Repository {
	return &Impl{db: db}
}

func (r *Impl) resolveDB(db bun.IDB) bun.IDB {
	if db == nil {
		return r.db
	}
	return db
}

func (r *Impl) Create(ctx context.Context, db bun.IDB, scorepad *Scorepad) error {
	db = r.resolveDB(db)
	if scorepad.ID == uuid.Nil {
		scorepad.ID = uuid.New()
	}
	if scorepad.CreatedAt.IsZero() {
		scorepad.CreatedAt = time.Now().UTC()
	}
	if _, err := db.NewInsert().Model(scorepad).Exec(ctx); err != nil {
		return fmt.Errorf("scorepad.Create: %w", err)
	}
	return nil
}

func (r *Impl) GetByID(ctx context.Context, db bun.IDB, id uuid.UUID) (*Scorepad, error) {
	db = r.resolveDB(db)
	scorepad := new(Scorepad)
	err := db.NewSelect().
		Model(scorepad).
		ColumnExpr("s.*").
		ColumnExpr("(SELECT count(*) FROM matches WHERE matches.scorepad_id = s.id) AS match_count").
		Where("s.id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scorepad.GetByID: %w", err)
	}
	return scorepad, nil
}

func (r *Impl) List(ctx context.Context, db bun.IDB) ([]Scorepad, error) {
	db = r.resolveDB(db)
	var scorepads []Scorepad
	err := db.NewSelect().
		Model(&scorepads).
		ColumnExpr("s.*").
		ColumnExpr("(SELECT count(*) FROM matches WHERE matches.scorepad_id = s.id) AS match_count").
		Order("s.played_at DESC", "s.created_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("scorepad.List: %w", err)
	}
	return scorepads, nil
}

func (r *Impl) ListMatches(ctx context.Context, db bun.IDB, scorepadID uuid.UUID) ([]Match, error) {
	db = r.resolveDB(db)
	var matches []Match
	err := db.NewSelect().
		Model(&matches).
		Where("scorepad_id = ?", scorepadID).
		Order("seq ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("scorepad.ListMatches: %w", err)
	}
	return matches, nil
}

func (r *Impl) AcquireScorepadLock(ctx context.Context, db bun.IDB, scorepadID uuid.UUID) error {
	db = r.resolveDB(db)
	_, err := db.NewRaw("SELECT pg_advisory_xact_lock(hashtext(?))", scorepadID.String()).Exec(ctx)
	if err != nil {
		return fmt.Errorf("scorepad.AcquireScorepadLock: %w", err)
	}
	return nil
}

func (r *Impl) NextMatchSeq(ctx context.Context, db bun.IDB, scorepadID uuid.UUID) (int, error) {
	db = r.resolveDB(db)
	var next int
	err := db.NewSelect().
		Model((*Match)(nil)).
		ColumnExpr("COALESCE(MAX(seq), 0) + 1").
		Where("scorepad_id = ?", scorepadID).
		Scan(ctx, &next)
	if err != nil {
		return 0, fmt.Errorf("scorepad.NextMatchSeq: %w", err)
	}
	return next, nil
}

func (r *Impl) InsertMatch(ctx context.Context, db bun.IDB, match *Match) error {
	db = r.resolveDB(db)
	if match.ID == uuid.Nil {
		match.ID = uuid.New()
	}
	if match.CreatedAt.IsZero() {
		match.CreatedAt = time.Now().UTC()
	}
	if match.Bids == nil {
		match.Bids = []string{}
	}
	if _, err := db.NewInsert().Model(match).Exec(ctx); err != nil {
		if dberr.IsUniqueViolation(err) {
			return fmt.Errorf("%w: scorepad %s seq %d", ErrSeqConflict, match.ScorepadID, match.Seq)
		}
		return fmt.Errorf("scorepad.InsertMatch: %w", err)
	}
	return nil
}
