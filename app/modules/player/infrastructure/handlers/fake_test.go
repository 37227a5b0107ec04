package playerhandlers

import (
	"context"

	playerservice "github.com/Black-And-White-Club/doppelkopf/app/modules/player/application"
	"github.com/google/uuid"
)

type FakePlayerService struct {
	CreatePlayerFunc func(ctx context.Context, name, picture string) (*playerservice.PlayerInfo, error)
	ListPlayersFunc  func(ctx context.Context) ([]playerservice.PlayerInfo, error)
	GetPlayerFunc    func(ctx context.Context, id uuid.UUID) (*playerservice.PlayerInfo, error)
}

func (f *FakePlayerService) CreatePlayer(ctx context.Context, name, picture string) (*playerservice.PlayerInfo, error) {
	if f.CreatePlayerFunc != nil {
		return f.CreatePlayerFunc(ctx, name, picture)
	}
	return &playerservice.PlayerInfo{Name: name, Picture: picture}, nil
}

func (f *FakePlayerService) ListPlayers(ctx context.Context) ([]playerservice.PlayerInfo, error) {
	if f.ListPlayersFunc != nil {
		return f.ListPlayersFunc(ctx)
	}
	return []playerservice.PlayerInfo{}, nil
}

func (f *FakePlayerService) GetPlayer(ctx context.Context, id uuid.UUID) (*playerservice.PlayerInfo, error) {
	if f.GetPlayerFunc != nil {
		return f.GetPlayerFunc(ctx, id)
	}
	return nil, playerservice.ErrPlayerNotFound
}

var _ playerservice.Service = (*FakePlayerService)(nil)
