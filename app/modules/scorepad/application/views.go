package scorepadservice

import (
	"context"

	scorepadtypes "github.com/Black-And-White-Club/doppelkopf/app/modules/scorepad/domain/types"
	"github.com/Black-And-White-Club/doppelkopf/app/shared/operation"
	"github.com/Black-And-White-Club/doppelkopf/app/shared/results"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

func (st *scorepadState) board() scorepadtypes.Board {
	players := make([]scorepadtypes.BoardPlayer, 0, len(st.players))
	for _, p := range st.players {
		players = append(players, scorepadtypes.BoardPlayer{
			ID:      p.ID.String(),
			Name:    p.Name,
			Picture: p.Picture,
		})
	}
	matches := make([]scorepadtypes.PlayedMatch, 0, len(st.matches))
	for _, m := range st.matches {
		matches = append(matches, scorepadtypes.PlayedMatch{Winners: m.Winners, Score: m.Score})
	}
	return scorepadtypes.BuildBoard(players, matches)
}

// GetBoard computes the running score table.
func (s *ScorepadService) GetBoard(ctx context.Context, id uuid.UUID) (*scorepadtypes.Board, error) {
	return operation.Unwrap(operation.Run(s.runner, ctx, "GetBoard", id.String(),
		func(ctx context.Context, db bun.IDB) (results.OperationResult[*scorepadtypes.Board, error], error) {
			st, err := s.loadState(ctx, db, id)
			if err != nil {
				return notFoundAsFailure[*scorepadtypes.Board](err)
			}
			board := st.board()
			return results.SuccessResult[*scorepadtypes.Board, error](&board), nil
		}))
}

// GetForm returns the options of the match entry form for a scorepad.
func (s *ScorepadService) GetForm(ctx context.Context, id uuid.UUID) (*FormOptions, error) {
	return operation.Unwrap(operation.Run(s.runner, ctx, "GetForm", id.String(),
		func(ctx context.Context, db bun.IDB) (results.OperationResult[*FormOptions, error], error) {
			st, err := s.loadState(ctx, db, id)
			if err != nil {
				return notFoundAsFailure[*FormOptions](err)
			}
			form := &FormOptions{
				SliderOptions:        scorepadtypes.SliderOptions(),
				SliderStart:          scorepadtypes.SliderStart,
				SliderStep:           scorepadtypes.SliderStep,
				SpecialPointOptions:  scorepadtypes.SpecialPointOptions(),
				DefaultSpecialPoints: scorepadtypes.DefaultSpecialPoints,
				Teams:                scorepadtypes.Teams,
				BidOptions:           scorepadtypes.Teams,
				Players:              playerInfos(st.players),
				DealerIndex:          scorepadtypes.DealerIndex(len(st.matches), len(st.players)),
			}
			return results.SuccessResult[*FormOptions, error](form), nil
		}))
}
