package playerservice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	playerdb "github.com/Black-And-White-Club/doppelkopf/app/modules/player/infrastructure/repositories"
	"github.com/Black-And-White-Club/doppelkopf/app/shared/metrics"
	"github.com/Black-And-White-Club/doppelkopf/app/shared/operation"
	"github.com/Black-And-White-Club/doppelkopf/app/shared/results"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace"
)

// PlayerService implements the Service interface.
type PlayerService struct {
	repo   playerdb.Repository
	runner *operation.Runner
}

// NewPlayerService creates a new PlayerService.
func NewPlayerService(
	repo playerdb.Repository,
	logger *slog.Logger,
	m metrics.OperationMetrics,
	tracer trace.Tracer,
	db *bun.DB,
) *PlayerService {
	return &PlayerService{
		repo:   repo,
		runner: operation.NewRunner("PlayerService", logger, m, tracer, db),
	}
}

var _ Service = (*PlayerService)(nil)

// ToInfo converts a stored player into its public view.
func ToInfo(p *playerdb.Player) PlayerInfo {
	return PlayerInfo{ID: p.ID.String(), Name: p.Name, Picture: p.Picture}
}

func (s *PlayerService) CreatePlayer(ctx context.Context, name, picture string) (*PlayerInfo, error) {
	name = strings.TrimSpace(name)
	return operation.Unwrap(operation.Run(s.runner, ctx, "CreatePlayer", name,
		func(ctx context.Context, db bun.IDB) (results.OperationResult[*PlayerInfo, error], error) {
			if name == "" {
				return results.FailureResult[*PlayerInfo, error](ErrEmptyName), nil
			}
			player := &playerdb.Player{
				ID:      uuid.New(),
				Name:    name,
				Picture: strings.TrimSpace(picture),
			}
			if err := s.repo.Create(ctx, db, player); err != nil {
				return results.OperationResult[*PlayerInfo, error]{}, err
			}
			info := ToInfo(player)
			return results.SuccessResult[*PlayerInfo, error](&info), nil
		}))
}

func (s *PlayerService) ListPlayers(ctx context.Context) ([]PlayerInfo, error) {
	return operation.Unwrap(operation.Run(s.runner, ctx, "ListPlayers", "",
		func(ctx context.Context, db bun.IDB) (results.OperationResult[[]PlayerInfo, error], error) {
			players, err := s.repo.List(ctx, db)
			if err != nil {
				return results.OperationResult[[]PlayerInfo, error]{}, err
			}
			out := make([]PlayerInfo, 0, len(players))
			for i := range players {
				out = append(out, ToInfo(&players[i]))
			}
			return results.SuccessResult[[]PlayerInfo, error](out), nil
		}))
}

func (s *PlayerService) GetPlayer(ctx context.Context, id uuid.UUID) (*PlayerInfo, error) {
	return operation.Unwrap(operation.Run(s.runner, ctx, "GetPlayer", id.String(),
		func(ctx context.Context, db bun.IDB) (results.OperationResult[*PlayerInfo, error], error) {
			player, err := s.repo.GetByID(ctx, db, id)
			if err != nil {
				if errors.Is(err, playerdb.ErrNotFound) {
					return results.FailureResult[*PlayerInfo, error](fmt.Errorf("%w: %s", ErrPlayerNotFound, id)), nil
				}
				return results.OperationResult[*PlayerInfo, error]{}, err
			}
			info := ToInfo(player)
			return results.SuccessResult[*PlayerInfo, error](&info), nil
		}))
}
