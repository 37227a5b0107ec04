package glossaryservice

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	glossarydb "github.com/Black-And-White-Club/doppelkopf/app/modules/glossary/infrastructure/repositories"
	"github.com/Black-And-White-Club/doppelkopf/app/shared/metrics"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace/noop"
)

func newService(repo glossarydb.Repository) *GlossaryService {
	return NewGlossaryService(repo, slog.Default(), metrics.NewNoop(), noop.NewTracerProvider().Tracer("test"), nil)
}

func TestAddTerm(t *testing.T) {
	existingID := uuid.New()

	tests := []struct {
		name      string
		setupRepo func(*FakeTermRepo)
		value     string
		wantValue string
		wantID    string
		wantErr   error
		wantTrace []string
	}{
		{
			name:      "stores lowercased value",
			setupRepo: func(f *FakeTermRepo) {},
			value:     "  Hochzeit ",
			wantValue: "hochzeit",
			wantTrace: []string{"Insert"},
		},
		{
			name: "duplicate returns existing term",
			setupRepo: func(f *FakeTermRepo) {
				f.InsertFunc = func(ctx context.Context, db bun.IDB, term *glossarydb.Term) error {
					return glossarydb.ErrDuplicate
				}
				f.GetByValueFunc = func(ctx context.Context, db bun.IDB, value string) (*glossarydb.Term, error) {
					return &glossarydb.Term{ID: existingID, Value: value}, nil
				}
			},
			value:     "Fuchs",
			wantValue: "fuchs",
			wantID:    existingID.String(),
			wantTrace: []string{"Insert", "GetByValue"},
		},
		{
			name:      "blank value is rejected",
			setupRepo: func(f *FakeTermRepo) {},
			value:     "   ",
			wantErr:   ErrEmptyTerm,
			wantTrace: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewFakeTermRepo()
			tt.setupRepo(repo)

			got, err := newService(repo).AddTerm(context.Background(), tt.value)

			assert.Equal(t, tt.wantTrace, repo.Trace())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantValue, got.Value)
			if tt.wantID != "" {
				assert.Equal(t, tt.wantID, got.ID)
			}
		})
	}
}

func TestAddTermPropagatesOtherErrors(t *testing.T) {
	repo := NewFakeTermRepo()
	repo.InsertFunc = func(ctx context.Context, db bun.IDB, term *glossarydb.Term) error {
		return errors.New("connection reset")
	}

	_, err := newService(repo).AddTerm(context.Background(), "armut")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")
	assert.Equal(t, []string{"Insert"}, repo.Trace())
}

func TestAddTermTwiceYieldsSameDocument(t *testing.T) {
	svc := newService(NewFakeTermRepo().withUniqueStore())
	ctx := context.Background()

	first, err := svc.AddTerm(ctx, "Karlchen")
	require.NoError(t, err)
	second, err := svc.AddTerm(ctx, "KARLCHEN")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, "karlchen", second.Value)
}

func TestFindTermByValue(t *testing.T) {
	id := uuid.New()
	repo := NewFakeTermRepo()
	var lookedUp string
	repo.GetByValueFunc = func(ctx context.Context, db bun.IDB, value string) (*glossarydb.Term, error) {
		lookedUp = value
		if value == "dulle" {
			return &glossarydb.Term{ID: id, Value: value}, nil
		}
		return nil, glossarydb.ErrNotFound
	}
	svc := newService(repo)

	got, err := svc.FindTermByValue(context.Background(), "Dulle")
	require.NoError(t, err)
	assert.Equal(t, "dulle", lookedUp)
	assert.Equal(t, TermInfo{ID: id.String(), Value: "dulle"}, *got)

	_, err = svc.FindTermByValue(context.Background(), "schwein")
	assert.ErrorIs(t, err, ErrTermNotFound)
}

func TestListTerms(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	repo := NewFakeTermRepo()
	repo.ListFunc = func(ctx context.Context, db bun.IDB) ([]glossarydb.Term, error) {
		return []glossarydb.Term{{ID: a, Value: "armut"}, {ID: b, Value: "hochzeit"}}, nil
	}

	got, err := newService(repo).ListTerms(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []TermInfo{{ID: a.String(), Value: "armut"}, {ID: b.String(), Value: "hochzeit"}}, got)
}

func TestListTermsEmptyIsNotNil(t *testing.T) {
	got, err := newService(NewFakeTermRepo()).ListTerms(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestDeleteTermByID(t *testing.T) {
	target := uuid.New()
	repo := NewFakeTermRepo()
	repo.DeleteByIDFunc = func(ctx context.Context, db bun.IDB, id uuid.UUID) (bool, error) {
		return id == target, nil
	}
	svc := newService(repo)

	deleted, err := svc.DeleteTermByID(context.Background(), target)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = svc.DeleteTermByID(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.False(t, deleted)
}
