package playerservice

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	playerdb "github.com/Black-And-White-Club/doppelkopf/app/modules/player/infrastructure/repositories"
	"github.com/Black-And-White-Club/doppelkopf/app/shared/metrics"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace/noop"
)

func newService(repo playerdb.Repository) *PlayerService {
	return NewPlayerService(repo, slog.Default(), metrics.NewNoop(), noop.NewTracerProvider().Tracer("test"), nil)
}

func TestCreatePlayer(t *testing.T) {
	tests := []struct {
		name       string
		setupRepo  func(*FakePlayerRepo)
		inName     string
		picture    string
		wantName   string
		wantErr    error
		wantAnyErr bool
		wantTrace  []string
	}{
		{
			name:      "trims and stores",
			setupRepo: func(f *FakePlayerRepo) {},
			inName:    "  Anna ",
			picture:   " anna.png",
			wantName:  "Anna",
			wantTrace: []string{"Create"},
		},
		{
			name:      "blank name",
			setupRepo: func(f *FakePlayerRepo) {},
			inName:    " ",
			wantErr:   ErrEmptyName,
			wantTrace: []string{},
		},
		{
			name: "repository error propagates",
			setupRepo: func(f *FakePlayerRepo) {
				f.CreateFunc = func(ctx context.Context, db bun.IDB, p *playerdb.Player) error {
					return errors.New("db down")
				}
			},
			inName:     "Bernd",
			wantAnyErr: true,
			wantTrace:  []string{"Create"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewFakePlayerRepo()
			tt.setupRepo(repo)

			got, err := newService(repo).CreatePlayer(context.Background(), tt.inName, tt.picture)

			assert.Equal(t, tt.wantTrace, repo.Trace())
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.wantAnyErr:
				assert.Error(t, err)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.wantName, got.Name)
				assert.Equal(t, "anna.png", got.Picture)
				_, parseErr := uuid.Parse(got.ID)
				assert.NoError(t, parseErr)
			}
		})
	}
}

func TestListPlayers(t *testing.T) {
	repo := NewFakePlayerRepo()
	a, b := uuid.New(), uuid.New()
	repo.ListFunc = func(ctx context.Context, db bun.IDB) ([]playerdb.Player, error) {
		return []playerdb.Player{{ID: a, Name: "Anna"}, {ID: b, Name: "Bernd", Picture: "b.png"}}, nil
	}

	got, err := newService(repo).ListPlayers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []PlayerInfo{
		{ID: a.String(), Name: "Anna"},
		{ID: b.String(), Name: "Bernd", Picture: "b.png"},
	}, got)
}

func TestGetPlayer(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		id := uuid.New()
		repo := NewFakePlayerRepo()
		repo.GetByIDFunc = func(ctx context.Context, db bun.IDB, got uuid.UUID) (*playerdb.Player, error) {
			return &playerdb.Player{ID: got, Name: "Clara"}, nil
		}

		got, err := newService(repo).GetPlayer(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, id.String(), got.ID)
		assert.Equal(t, "Clara", got.Name)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := newService(NewFakePlayerRepo()).GetPlayer(context.Background(), uuid.New())
		assert.ErrorIs(t, err, ErrPlayerNotFound)
	})
}
