package scorepadservice

import (
	"context"
	"sort"
	"sync"

	playerdb "github.com/Black-And-White-Club/doppelkopf/app/modules/player/infrastructure/repositories"
	scorepaddb "github.com/Black-And-White-Club/doppelkopf/app/modules/scorepad/infrastructure/repositories"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// ------------------------
// Fake Scorepad Repo
// ------------------------

type FakeScorepadRepo struct {
	trace []string

	CreateFunc              func(ctx context.Context, db bun.IDB, sp *scorepaddb.Scorepad) error
	GetByIDFunc             func(ctx context.Context, db bun.IDB, id uuid.UUID) (*scorepaddb.Scorepad, error)
	ListFunc                func(ctx context.Context, db bun.IDB) ([]scorepaddb.Scorepad, error)
	ListMatchesFunc         func(ctx context.Context, db bun.IDB, id uuid.UUID) ([]scorepaddb.Match, error)
	AcquireScorepadLockFunc func(ctx context.Context, db bun.IDB, id uuid.UUID) error
	NextMatchSeqFunc        func(ctx context.Context, db bun.IDB, id uuid.UUID) (int, error)
	InsertMatchFunc         func(ctx context.Context, db bun.IDB, m *scorepaddb.Match) error
}

func NewFakeScorepadRepo() *FakeScorepadRepo {
	return &FakeScorepadRepo{trace: []string{}}
}

func (f *FakeScorepadRepo) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeScorepadRepo) Create(ctx context.Context, db bun.IDB, sp *scorepaddb.Scorepad) error {
	f.record("Create")
	if f.CreateFunc != nil {
		return f.CreateFunc(ctx, db, sp)
	}
	return nil
}

func (f *FakeScorepadRepo) GetByID(ctx context.Context, db bun.IDB, id uuid.UUID) (*scorepaddb.Scorepad, error) {
	f.record("GetByID")
	if f.GetByIDFunc != nil {
		return f.GetByIDFunc(ctx, db, id)
	}
	return nil, scorepaddb.ErrNotFound
}

func (f *FakeScorepadRepo) List(ctx context.Context, db bun.IDB) ([]scorepaddb.Scorepad, error) {
	f.record("List")
	if f.ListFunc != nil {
		return f.ListFunc(ctx, db)
	}
	return nil, nil
}

func (f *FakeScorepadRepo) ListMatches(ctx context.Context, db bun.IDB, id uuid.UUID) ([]scorepaddb.Match, error) {
	f.record("ListMatches")
	if f.ListMatchesFunc != nil {
		return f.ListMatchesFunc(ctx, db, id)
	}
	return nil, nil
}

func (f *FakeScorepadRepo) AcquireScorepadLock(ctx context.Context, db bun.IDB, id uuid.UUID) error {
	f.record("AcquireScorepadLock")
	if f.AcquireScorepadLockFunc != nil {
		return f.AcquireScorepadLockFunc(ctx, db, id)
	}
	return nil
}

func (f *FakeScorepadRepo) NextMatchSeq(ctx context.Context, db bun.IDB, id uuid.UUID) (int, error) {
	f.record("NextMatchSeq")
	if f.NextMatchSeqFunc != nil {
		return f.NextMatchSeqFunc(ctx, db, id)
	}
	return 1, nil
}

func (f *FakeScorepadRepo) InsertMatch(ctx context.Context, db bun.IDB, m *scorepaddb.Match) error {
	f.record("InsertMatch")
	if f.InsertMatchFunc != nil {
		return f.InsertMatchFunc(ctx, db, m)
	}
	return nil
}

func (f *FakeScorepadRepo) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

// withStore backs the fake with in-memory scorepads and matches.
func (f *FakeScorepadRepo) withStore() *FakeScorepadRepo {
	scorepads := map[uuid.UUID]scorepaddb.Scorepad{}
	matches := map[uuid.UUID][]scorepaddb.Match{}

	f.CreateFunc = func(ctx context.Context, db bun.IDB, sp *scorepaddb.Scorepad) error {
		scorepads[sp.ID] = *sp
		return nil
	}
	f.GetByIDFunc = func(ctx context.Context, db bun.IDB, id uuid.UUID) (*scorepaddb.Scorepad, error) {
		sp, ok := scorepads[id]
		if !ok {
			return nil, scorepaddb.ErrNotFound
		}
		sp.MatchCount = len(matches[id])
		return &sp, nil
	}
	f.ListFunc = func(ctx context.Context, db bun.IDB) ([]scorepaddb.Scorepad, error) {
		out := make([]scorepaddb.Scorepad, 0, len(scorepads))
		for id, sp := range scorepads {
			sp.MatchCount = len(matches[id])
			out = append(out, sp)
		}
		sort.Slice(out, func(i, j int) bool { return out[i].PlayedAt.After(out[j].PlayedAt) })
		return out, nil
	}
	f.ListMatchesFunc = func(ctx context.Context, db bun.IDB, id uuid.UUID) ([]scorepaddb.Match, error) {
		return append([]scorepaddb.Match(nil), matches[id]...), nil
	}
	f.NextMatchSeqFunc = func(ctx context.Context, db bun.IDB, id uuid.UUID) (int, error) {
		return len(matches[id]) + 1, nil
	}
	f.InsertMatchFunc = func(ctx context.Context, db bun.IDB, m *scorepaddb.Match) error {
		matches[m.ScorepadID] = append(matches[m.ScorepadID], *m)
		return nil
	}
	return f
}

var _ scorepaddb.Repository = (*FakeScorepadRepo)(nil)

// ------------------------
// Fake Player Repo
// ------------------------

type FakePlayerRepo struct {
	players map[uuid.UUID]playerdb.Player

	GetByIDsFunc func(ctx context.Context, db bun.IDB, ids []uuid.UUID) ([]playerdb.Player, error)
}

func NewFakePlayerRepo(players ...playerdb.Player) *FakePlayerRepo {
	f := &FakePlayerRepo{players: map[uuid.UUID]playerdb.Player{}}
	for _, p := range players {
		f.players[p.ID] = p
	}
	return f
}

func (f *FakePlayerRepo) Create(ctx context.Context, db bun.IDB, p *playerdb.Player) error {
	f.players[p.ID] = *p
	return nil
}

func (f *FakePlayerRepo) List(ctx context.Context, db bun.IDB) ([]playerdb.Player, error) {
	out := make([]playerdb.Player, 0, len(f.players))
	for _, p := range f.players {
		out = append(out, p)
	}
	return out, nil
}

func (f *FakePlayerRepo) GetByID(ctx context.Context, db bun.IDB, id uuid.UUID) (*playerdb.Player, error) {
	p, ok := f.players[id]
	if !ok {
		return nil, playerdb.ErrNotFound
	}
	return &p, nil
}

func (f *FakePlayerRepo) GetByIDs(ctx context.Context, db bun.IDB, ids []uuid.UUID) ([]playerdb.Player, error) {
	if f.GetByIDsFunc != nil {
		return f.GetByIDsFunc(ctx, db, ids)
	}
	var out []playerdb.Player
	for _, id := range ids {
		if p, ok := f.players[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

var _ playerdb.Repository = (*FakePlayerRepo)(nil)

// ------------------------
// Fake Publisher
// ------------------------

type publishedEvent struct {
	Topic   string
	Payload any
}

type FakePublisher struct {
	mu     sync.Mutex
	events []publishedEvent
	err    error
}

func (f *FakePublisher) Publish(ctx context.Context, topic string, payload any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, publishedEvent{Topic: topic, Payload: payload})
	return f.err
}

func (f *FakePublisher) Events() []publishedEvent {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]publishedEvent(nil), f.events...)
}
