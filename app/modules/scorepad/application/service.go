package scorepadservice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Black-And-White-Club/doppelkopf/app/eventbus"
	playerservice "github.com/Black-And-White-Club/doppelkopf/app/modules/player/application"
	playerdb "github.com/Black-And-White-Club/doppelkopf/app/modules/player/infrastructure/repositories"
	scorepaddb "github.com/Black-And-White-Club/doppelkopf/app/modules/scorepad/infrastructure/repositories"
	"github.com/Black-And-White-Club/doppelkopf/app/shared/metrics"
	"github.com/Black-And-White-Club/doppelkopf/app/shared/operation"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace"
)

// ScorepadService implements the Service interface.
type ScorepadService struct {
	repo      scorepaddb.Repository
	players   playerdb.Repository
	publisher eventbus.Publisher
	parser    *PlayedAtParser
	palette   ChartPalette
	logger    *slog.Logger
	runner    *operation.Runner
	now       func() time.Time
}

// NewScorepadService creates a new ScorepadService.
func NewScorepadService(
	repo scorepaddb.Repository,
	players playerdb.Repository,
	publisher eventbus.Publisher,
	logger *slog.Logger,
	m metrics.OperationMetrics,
	tracer trace.Tracer,
	db *bun.DB,
) *ScorepadService {
	runner := operation.NewRunner("ScorepadService", logger, m, tracer, db)
	return &ScorepadService{
		repo:      repo,
		players:   players,
		publisher: publisher,
		parser:    NewPlayedAtParser(),
		palette:   DefaultPalette,
		logger:    runner.Logger,
		runner:    runner,
		now:       time.Now,
	}
}

var _ Service = (*ScorepadService)(nil)

// scorepadState is a scorepad loaded with everything the views need.
type scorepadState struct {
	scorepad *scorepaddb.Scorepad
	players  []playerdb.Player
	matches  []scorepaddb.Match
}

func toMatchInfo(m *scorepaddb.Match) MatchInfo {
	bids := m.Bids
	if bids == nil {
		bids = []string{}
	}
	return MatchInfo{
		ID:            m.ID.String(),
		Seq:           m.Seq,
		Winners:       m.Winners,
		Team:          m.Team,
		Bids:          bids,
		Points:        m.Points,
		Bidding:       m.Bidding,
		SpecialPoints: m.SpecialPoints,
		Score:         m.Score,
	}
}

func playerInfos(players []playerdb.Player) []playerservice.PlayerInfo {
	out := make([]playerservice.PlayerInfo, 0, len(players))
	for i := range players {
		out = append(out, playerservice.ToInfo(&players[i]))
	}
	return out
}

func (st *scorepadState) info() *ScorepadInfo {
	matches := make([]MatchInfo, 0, len(st.matches))
	for i := range st.matches {
		matches = append(matches, toMatchInfo(&st.matches[i]))
	}
	return &ScorepadInfo{
		ID:       st.scorepad.ID.String(),
		Name:     st.scorepad.Name,
		PlayedAt: st.scorepad.PlayedAt,
		Players:  playerInfos(st.players),
		Matches:  matches,
	}
}

// seatPlayers orders players by the scorepad's seat order.
func seatPlayers(ids []string, found []playerdb.Player) []playerdb.Player {
	byID := make(map[string]playerdb.Player, len(found))
	for _, p := range found {
		byID[p.ID.String()] = p
	}
	seated := make([]playerdb.Player, 0, len(ids))
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			seated = append(seated, p)
		}
	}
	return seated
}

func parseIDs(ids []string) ([]uuid.UUID, error) {
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		parsed, err := uuid.Parse(id)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a player id", ErrInvalidPlayers, id)
		}
		out = append(out, parsed)
	}
	return out, nil
}

// loadState reads a scorepad, its seated players and its matches. A missing
// scorepad is reported as ErrScorepadNotFound.
func (s *ScorepadService) loadState(ctx context.Context, db bun.IDB, id uuid.UUID) (*scorepadState, error) {
	sp, err := s.repo.GetByID(ctx, db, id)
	if err != nil {
		if errors.Is(err, scorepaddb.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrScorepadNotFound, id)
		}
		return nil, err
	}

	ids, err := parseIDs(sp.PlayerIDs)
	if err != nil {
		return nil, fmt.Errorf("scorepad %s has corrupt seats: %w", id, err)
	}
	found, err := s.players.GetByIDs(ctx, db, ids)
	if err != nil {
		return nil, err
	}

	matches, err := s.repo.ListMatches(ctx, db, id)
	if err != nil {
		return nil, err
	}

	return &scorepadState{
		scorepad: sp,
		players:  seatPlayers(sp.PlayerIDs, found),
		matches:  matches,
	}, nil
}
