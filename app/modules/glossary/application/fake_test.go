package glossaryservice

import (
	"context"

	glossarydb "github.com/Black-And-White-Club/doppelkopf/app/modules/glossary/infrastructure/repositories"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// ------------------------
// Fake Term Repo
// ------------------------

type FakeTermRepo struct {
	trace []string

	ListFunc       func(ctx context.Context, db bun.IDB) ([]glossarydb.Term, error)
	GetByValueFunc func(ctx context.Context, db bun.IDB, value string) (*glossarydb.Term, error)
	InsertFunc     func(ctx context.Context, db bun.IDB, term *glossarydb.Term) error
	DeleteByIDFunc func(ctx context.Context, db bun.IDB, id uuid.UUID) (bool, error)
}

func NewFakeTermRepo() *FakeTermRepo {
	return &FakeTermRepo{trace: []string{}}
}

func (f *FakeTermRepo) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeTermRepo) List(ctx context.Context, db bun.IDB) ([]glossarydb.Term, error) {
	f.record("List")
	if f.ListFunc != nil {
		return f.ListFunc(ctx, db)
	}
	return nil, nil
}

func (f *FakeTermRepo) GetByValue(ctx context.Context, db bun.IDB, value string) (*glossarydb.Term, error) {
	f.record("GetByValue")
	if f.GetByValueFunc != nil {
		return f.GetByValueFunc(ctx, db, value)
	}
	return nil, glossarydb.ErrNotFound
}

func (f *FakeTermRepo) Insert(ctx context.Context, db bun.IDB, term *glossarydb.Term) error {
	f.record("Insert")
	if f.InsertFunc != nil {
		return f.InsertFunc(ctx, db, term)
	}
	return nil
}

func (f *FakeTermRepo) DeleteByID(ctx context.Context, db bun.IDB, id uuid.UUID) (bool, error) {
	f.record("DeleteByID")
	if f.DeleteByIDFunc != nil {
		return f.DeleteByIDFunc(ctx, db, id)
	}
	return false, nil
}

func (f *FakeTermRepo) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

// withUniqueStore backs the fake with a map keyed by value, rejecting duplicates
// the way the unique index does.
func (f *FakeTermRepo) withUniqueStore() *FakeTermRepo {
	byValue := map[string]glossarydb.Term{}
	f.InsertFunc = func(ctx context.Context, db bun.IDB, term *glossarydb.Term) error {
		if _, ok := byValue[term.Value]; ok {
			return glossarydb.ErrDuplicate
		}
		byValue[term.Value] = *term
		return nil
	}
	f.GetByValueFunc = func(ctx context.Context, db bun.IDB, value string) (*glossarydb.Term, error) {
		t, ok := byValue[value]
		if !ok {
			return nil, glossarydb.ErrNotFound
		}
		return &t, nil
	}
	return f
}

var _ glossarydb.Repository = (*FakeTermRepo)(nil)
