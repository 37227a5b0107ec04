package scorepadservice

import (
	"context"
	"errors"
	"fmt"

	scorepadevents "github.com/Black-And-White-Club/doppelkopf/app/modules/scorepad/domain/events"
	scorepadtypes "github.com/Black-And-White-Club/doppelkopf/app/modules/scorepad/domain/types"
	scorepaddb "github.com/Black-And-White-Club/doppelkopf/app/modules/scorepad/infrastructure/repositories"
	"github.com/Black-And-White-Club/doppelkopf/app/shared/attr"
	"github.com/Black-And-White-Club/doppelkopf/app/shared/operation"
	"github.com/Black-And-White-Club/doppelkopf/app/shared/results"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// RecordMatch appends a scored match to the scorepad.
func (s *ScorepadService) RecordMatch(ctx context.Context, id uuid.UUID, input scorepadtypes.MatchInput) (*MatchInfo, error) {
	match, err := operation.Unwrap(operation.Run(s.runner, ctx, "RecordMatch", id.String(),
		func(ctx context.Context, db bun.IDB) (results.OperationResult[*MatchInfo, error], error) {
			return s.recordMatchLogic(ctx, db, id, input)
		}))
	if err != nil {
		return nil, err
	}

	s.publishMatchRecorded(ctx, id, match)
	return match, nil
}

func (s *ScorepadService) recordMatchLogic(ctx context.Context, db bun.IDB, id uuid.UUID, input scorepadtypes.MatchInput) (results.OperationResult[*MatchInfo, error], error) {
	if err := s.repo.AcquireScorepadLock(ctx, db, id); err != nil {
		return results.OperationResult[*MatchInfo, error]{}, err
	}

	sp, err := s.repo.GetByID(ctx, db, id)
	if err != nil {
		if errors.Is(err, scorepaddb.ErrNotFound) {
			return results.FailureResult[*MatchInfo, error](fmt.Errorf("%w: %s", ErrScorepadNotFound, id)), nil
		}
		return results.OperationResult[*MatchInfo, error]{}, err
	}

	if err := input.Validate(sp.PlayerIDs); err != nil {
		return results.FailureResult[*MatchInfo, error](err), nil
	}

	seq, err := s.repo.NextMatchSeq(ctx, db, id)
	if err != nil {
		return results.OperationResult[*MatchInfo, error]{}, err
	}

	bids := make([]string, 0, len(input.Bids))
	for _, b := range input.Bids {
		bids = append(bids, string(b))
	}

	match := &scorepaddb.Match{
		ID:            uuid.New(),
		ScorepadID:    id,
		Seq:           seq,
		Winners:       append([]string(nil), input.Winners...),
		Team:          string(input.Team),
		Bids:          bids,
		Points:        input.Points,
		Bidding:       input.Bidding,
		SpecialPoints: input.SpecialPoints,
		Score:         scorepadtypes.Score(input),
	}
	if err := s.repo.InsertMatch(ctx, db, match); err != nil {
		if errors.Is(err, scorepaddb.ErrSeqConflict) {
			return results.FailureResult[*MatchInfo, error](fmt.Errorf("%w: %w", ErrConcurrentMatch, err)), nil
		}
		return results.OperationResult[*MatchInfo, error]{}, err
	}

	info := toMatchInfo(match)
	return results.SuccessResult[*MatchInfo, error](&info), nil
}

// publishMatchRecorded announces a committed match. The match is already
// stored, so a publish failure is only logged.
func (s *ScorepadService) publishMatchRecorded(ctx context.Context, scorepadID uuid.UUID, match *MatchInfo) {
	if s.publisher == nil {
		return
	}
	payload := scorepadevents.MatchRecordedPayload{
		ScorepadID: scorepadID.String(),
		MatchID:    match.ID,
		Seq:        match.Seq,
		Score:      match.Score,
		Winners:    match.Winners,
	}
	if err := s.publisher.Publish(ctx, scorepadevents.MatchRecordedTopic, payload); err != nil {
		s.logger.WarnContext(ctx, "Failed to publish match recorded event",
			attr.ExtractCorrelationID(ctx),
			attr.String("scorepad_id", scorepadID.String()),
			attr.String("match_id", match.ID),
			attr.Error(err),
		)
	}
}
