package scorepadservice

import (
	"context"
	"errors"
	"fmt"
	"strings"

	scorepadtypes "github.com/Black-And-White-Club/doppelkopf/app/modules/scorepad/domain/types"
	scorepaddb "github.com/Black-And-White-Club/doppelkopf/app/modules/scorepad/infrastructure/repositories"
	"github.com/Black-And-White-Club/doppelkopf/app/shared/operation"
	"github.com/Black-And-White-Club/doppelkopf/app/shared/results"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// CreateScorepad seats 4 to 5 distinct existing players at a new scorepad.
func (s *ScorepadService) CreateScorepad(ctx context.Context, input CreateScorepadInput) (*ScorepadInfo, error) {
	name := strings.TrimSpace(input.Name)
	return operation.Unwrap(operation.Run(s.runner, ctx, "CreateScorepad", name,
		func(ctx context.Context, db bun.IDB) (results.OperationResult[*ScorepadInfo, error], error) {
			return s.createScorepadLogic(ctx, db, name, input)
		}))
}

func (s *ScorepadService) createScorepadLogic(ctx context.Context, db bun.IDB, name string, input CreateScorepadInput) (results.OperationResult[*ScorepadInfo, error], error) {
	fail := func(err error) (results.OperationResult[*ScorepadInfo, error], error) {
		return results.FailureResult[*ScorepadInfo, error](err), nil
	}

	if name == "" {
		return fail(ErrEmptyName)
	}

	count := len(input.Players)
	if count < scorepadtypes.MinPlayers || count > scorepadtypes.MaxPlayers {
		return fail(fmt.Errorf("%w: want %d to %d players, got %d",
			ErrInvalidPlayers, scorepadtypes.MinPlayers, scorepadtypes.MaxPlayers, count))
	}
	ids, err := parseIDs(input.Players)
	if err != nil {
		return fail(err)
	}
	seen := make(map[uuid.UUID]bool, len(ids))
	seats := make([]string, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			return fail(fmt.Errorf("%w: %s is seated twice", ErrInvalidPlayers, id))
		}
		seen[id] = true
		seats = append(seats, id.String())
	}

	playedAt, err := s.parser.Parse(input.PlayedAt, s.now())
	if err != nil {
		return fail(err)
	}

	found, err := s.players.GetByIDs(ctx, db, ids)
	if err != nil {
		return results.OperationResult[*ScorepadInfo, error]{}, err
	}
	if len(found) != len(ids) {
		return fail(fmt.Errorf("%w: %d of %d players do not exist", ErrInvalidPlayers, len(ids)-len(found), len(ids)))
	}

	sp := &scorepaddb.Scorepad{
		ID:        uuid.New(),
		Name:      name,
		PlayedAt:  playedAt,
		PlayerIDs: seats,
	}
	if err := s.repo.Create(ctx, db, sp); err != nil {
		return results.OperationResult[*ScorepadInfo, error]{}, err
	}

	st := &scorepadState{scorepad: sp, players: seatPlayers(seats, found)}
	return results.SuccessResult[*ScorepadInfo, error](st.info()), nil
}

// GetScorepad returns the scorepad with players in seat order and all matches.
func (s *ScorepadService) GetScorepad(ctx context.Context, id uuid.UUID) (*ScorepadInfo, error) {
	return operation.Unwrap(operation.Run(s.runner, ctx, "GetScorepad", id.String(),
		func(ctx context.Context, db bun.IDB) (results.OperationResult[*ScorepadInfo, error], error) {
			st, err := s.loadState(ctx, db, id)
			if err != nil {
				return notFoundAsFailure[*ScorepadInfo](err)
			}
			return results.SuccessResult[*ScorepadInfo, error](st.info()), nil
		}))
}

// ListScorepads returns all scorepads, most recently played first.
func (s *ScorepadService) ListScorepads(ctx context.Context) ([]ScorepadSummary, error) {
	return operation.Unwrap(operation.Run(s.runner, ctx, "ListScorepads", "",
		func(ctx context.Context, db bun.IDB) (results.OperationResult[[]ScorepadSummary, error], error) {
			scorepads, err := s.repo.List(ctx, db)
			if err != nil {
				return results.OperationResult[[]ScorepadSummary, error]{}, err
			}

			var all []uuid.UUID
			seen := map[string]bool{}
			for _, sp := range scorepads {
				for _, id := range sp.PlayerIDs {
					if seen[id] {
						continue
					}
					seen[id] = true
					if parsed, err := uuid.Parse(id); err == nil {
						all = append(all, parsed)
					}
				}
			}
			found, err := s.players.GetByIDs(ctx, db, all)
			if err != nil {
				return results.OperationResult[[]ScorepadSummary, error]{}, err
			}

			out := make([]ScorepadSummary, 0, len(scorepads))
			for _, sp := range scorepads {
				out = append(out, ScorepadSummary{
					ID:         sp.ID.String(),
					Name:       sp.Name,
					PlayedAt:   sp.PlayedAt,
					Players:    playerInfos(seatPlayers(sp.PlayerIDs, found)),
					MatchCount: sp.MatchCount,
				})
			}
			return results.SuccessResult[[]ScorepadSummary, error](out), nil
		}))
}

// notFoundAsFailure turns ErrScorepadNotFound into a domain failure and
// passes every other error through.
func notFoundAsFailure[S any](err error) (results.OperationResult[S, error], error) {
	if errors.Is(err, ErrScorepadNotFound) {
		return results.FailureResult[S, error](err), nil
	}
	return results.OperationResult[S, error]{}, err
}
