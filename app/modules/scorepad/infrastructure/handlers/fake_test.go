package scorepadhandlers

import (
	"context"

	scorepadservice "github.com/Black-And-White-Club/doppelkopf/app/modules/scorepad/application"
	scorepadtypes "github.com/Black-And-White-Club/doppelkopf/app/modules/scorepad/domain/types"
	"github.com/google/uuid"
)

// ------------------------
// Fake Scorepad Service
// ------------------------

type FakeScorepadService struct {
	CreateScorepadFunc func(ctx context.Context, input scorepadservice.CreateScorepadInput) (*scorepadservice.ScorepadInfo, error)
	GetScorepadFunc    func(ctx context.Context, id uuid.UUID) (*scorepadservice.ScorepadInfo, error)
	ListScorepadsFunc  func(ctx context.Context) ([]scorepadservice.ScorepadSummary, error)
	RecordMatchFunc    func(ctx context.Context, id uuid.UUID, input scorepadtypes.MatchInput) (*scorepadservice.MatchInfo, error)
	GetBoardFunc       func(ctx context.Context, id uuid.UUID) (*scorepadtypes.Board, error)
	GetFormFunc        func(ctx context.Context, id uuid.UUID) (*scorepadservice.FormOptions, error)
	ExportXLSXFunc     func(ctx context.Context, id uuid.UUID) ([]byte, error)
	RenderChartFunc    func(ctx context.Context, id uuid.UUID) ([]byte, error)
}

func (f *FakeScorepadService) CreateScorepad(ctx context.Context, input scorepadservice.CreateScorepadInput) (*scorepadservice.ScorepadInfo, error) {
	if f.CreateScorepadFunc != nil {
		return f.CreateScorepadFunc(ctx, input)
	}
	return &scorepadservice.ScorepadInfo{}, nil
}

func (f *FakeScorepadService) GetScorepad(ctx context.Context, id uuid.UUID) (*scorepadservice.ScorepadInfo, error) {
	if f.GetScorepadFunc != nil {
		return f.GetScorepadFunc(ctx, id)
	}
	return nil, scorepadservice.ErrScorepadNotFound
}

func (f *FakeScorepadService) ListScorepads(ctx context.Context) ([]scorepadservice.ScorepadSummary, error) {
	if f.ListScorepadsFunc != nil {
		return f.ListScorepadsFunc(ctx)
	}
	return []scorepadservice.ScorepadSummary{}, nil
}

func (f *FakeScorepadService) RecordMatch(ctx context.Context, id uuid.UUID, input scorepadtypes.MatchInput) (*scorepadservice.MatchInfo, error) {
	if f.RecordMatchFunc != nil {
		return f.RecordMatchFunc(ctx, id, input)
	}
	return &scorepadservice.MatchInfo{}, nil
}

func (f *FakeScorepadService) GetBoard(ctx context.Context, id uuid.UUID) (*scorepadtypes.Board, error) {
	if f.GetBoardFunc != nil {
		return f.GetBoardFunc(ctx, id)
	}
	return nil, scorepadservice.ErrScorepadNotFound
}

func (f *FakeScorepadService) GetForm(ctx context.Context, id uuid.UUID) (*scorepadservice.FormOptions, error) {
	if f.GetFormFunc != nil {
		return f.GetFormFunc(ctx, id)
	}
	return nil, scorepadservice.ErrScorepadNotFound
}

func (f *FakeScorepadService) ExportXLSX(ctx context.Context, id uuid.UUID) ([]byte, error) {
	if f.ExportXLSXFunc != nil {
		return f.ExportXLSXFunc(ctx, id)
	}
	return nil, scorepadservice.ErrScorepadNotFound
}

func (f *FakeScorepadService) RenderChart(ctx context.Context, id uuid.UUID) ([]byte, error) {
	if f.RenderChartFunc != nil {
		return f.RenderChartFunc(ctx, id)
	}
	return nil, scorepadservice.ErrScorepadNotFound
}

var _ scorepadservice.Service = (*FakeScorepadService)(nil)
