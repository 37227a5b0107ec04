package glossaryservice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	glossarydb "github.com/Black-And-White-Club/doppelkopf/app/modules/glossary/infrastructure/repositories"
	"github.com/Black-And-White-Club/doppelkopf/app/shared/attr"
	"github.com/Black-And-White-Club/doppelkopf/app/shared/metrics"
	"github.com/Black-And-White-Club/doppelkopf/app/shared/operation"
	"github.com/Black-And-White-Club/doppelkopf/app/shared/results"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace"
)

// GlossaryService implements the Service interface.
type GlossaryService struct {
	repo   glossarydb.Repository
	logger *slog.Logger
	runner *operation.Runner
}

// NewGlossaryService creates a new GlossaryService.
func NewGlossaryService(
	repo glossarydb.Repository,
	logger *slog.Logger,
	m metrics.OperationMetrics,
	tracer trace.Tracer,
	db *bun.DB,
) *GlossaryService {
	runner := operation.NewRunner("GlossaryService", logger, m, tracer, db)
	return &GlossaryService{
		repo:   repo,
		logger: runner.Logger,
		runner: runner,
	}
}

var _ Service = (*GlossaryService)(nil)

// normalize is the canonical stored form of a term value.
func normalize(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

func toInfo(t *glossarydb.Term) TermInfo {
	return TermInfo{ID: t.ID.String(), Value: t.Value}
}

// ListTerms returns every term.
func (s *GlossaryService) ListTerms(ctx context.Context) ([]TermInfo, error) {
	return operation.Unwrap(operation.Run(s.runner, ctx, "ListTerms", "",
		func(ctx context.Context, db bun.IDB) (results.OperationResult[[]TermInfo, error], error) {
			terms, err := s.repo.List(ctx, db)
			if err != nil {
				return results.OperationResult[[]TermInfo, error]{}, err
			}
			out := make([]TermInfo, 0, len(terms))
			for i := range terms {
				out = append(out, toInfo(&terms[i]))
			}
			return results.SuccessResult[[]TermInfo, error](out), nil
		}))
}

// FindTermByValue looks a term up case-insensitively.
func (s *GlossaryService) FindTermByValue(ctx context.Context, value string) (*TermInfo, error) {
	value = normalize(value)
	return operation.Unwrap(operation.Run(s.runner, ctx, "FindTermByValue", value,
		func(ctx context.Context, db bun.IDB) (results.OperationResult[*TermInfo, error], error) {
			return s.findByValueLogic(ctx, db, value)
		}))
}

func (s *GlossaryService) findByValueLogic(ctx context.Context, db bun.IDB, value string) (results.OperationResult[*TermInfo, error], error) {
	if value == "" {
		return results.FailureResult[*TermInfo, error](ErrEmptyTerm), nil
	}
	term, err := s.repo.GetByValue(ctx, db, value)
	if err != nil {
		if errors.Is(err, glossarydb.ErrNotFound) {
			return results.FailureResult[*TermInfo, error](fmt.Errorf("%w: %q", ErrTermNotFound, value)), nil
		}
		return results.OperationResult[*TermInfo, error]{}, fmt.Errorf("failed to find term: %w", err)
	}
	info := toInfo(term)
	return results.SuccessResult[*TermInfo, error](&info), nil
}

// AddTerm stores a term, or returns the stored one if the value already exists.
func (s *GlossaryService) AddTerm(ctx context.Context, value string) (*TermInfo, error) {
	value = normalize(value)
	return operation.Unwrap(operation.Run(s.runner, ctx, "AddTerm", value,
		func(ctx context.Context, db bun.IDB) (results.OperationResult[*TermInfo, error], error) {
			return s.addTermLogic(ctx, db, value)
		}))
}

func (s *GlossaryService) addTermLogic(ctx context.Context, db bun.IDB, value string) (results.OperationResult[*TermInfo, error], error) {
	if value == "" {
		return results.FailureResult[*TermInfo, error](ErrEmptyTerm), nil
	}

	term := &glossarydb.Term{ID: uuid.New(), Value: value}
	err := s.repo.Insert(ctx, db, term)
	switch {
	case err == nil:
		info := toInfo(term)
		return results.SuccessResult[*TermInfo, error](&info), nil
	case errors.Is(err, glossarydb.ErrDuplicate):
		s.logger.DebugContext(ctx, "Term already stored, returning existing",
			attr.ExtractCorrelationID(ctx),
			attr.String("value", value),
		)
		return s.findByValueLogic(ctx, db, value)
	default:
		return results.OperationResult[*TermInfo, error]{}, fmt.Errorf("failed to insert term: %w", err)
	}
}

// DeleteTermByID removes a term and reports whether anything was removed.
func (s *GlossaryService) DeleteTermByID(ctx context.Context, id uuid.UUID) (bool, error) {
	return operation.Unwrap(operation.Run(s.runner, ctx, "DeleteTermByID", id.String(),
		func(ctx context.Context, db bun.IDB) (results.OperationResult[bool, error], error) {
			deleted, err := s.repo.DeleteByID(ctx, db, id)
			if err != nil {
				return results.OperationResult[bool, error]{}, err
			}
			return results.SuccessResult[bool, error](deleted), nil
		}))
}
