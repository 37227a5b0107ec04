package scorepadservice

import (
	"context"
	"time"

	playerservice "github.com/Black-And-White-Club/doppelkopf/app/modules/player/application"
	scorepadtypes "github.com/Black-And-White-Club/doppelkopf/app/modules/scorepad/domain/types"
	"github.com/google/uuid"
)

// MatchInfo is the public view of a recorded match.
type MatchInfo struct {
	ID            string   `json:"_id"`
	Seq           int      `json:"seq"`
	Winners       []string `json:"winners"`
	Team          string   `json:"team"`
	Bids          []string `json:"bids"`
	Points        int      `json:"points"`
	Bidding       int      `json:"bidding"`
	SpecialPoints int      `json:"specialPoints"`
	Score         int      `json:"score"`
}

// ScorepadInfo is a scorepad with its players in seat order and its matches.
type ScorepadInfo struct {
	ID       string                     `json:"_id"`
	Name     string                     `json:"name"`
	PlayedAt time.Time                  `json:"playedAt"`
	Players  []playerservice.PlayerInfo `json:"players"`
	Matches  []MatchInfo                `json:"matches"`
}

// ScorepadSummary is a scorepad as listed on the overview.
type ScorepadSummary struct {
	ID         string                     `json:"_id"`
	Name       string                     `json:"name"`
	PlayedAt   time.Time                  `json:"playedAt"`
	Players    []playerservice.PlayerInfo `json:"players"`
	MatchCount int                        `json:"matchCount"`
}

// CreateScorepadInput is the body of POST /api/scorepads. PlayedAt takes
// RFC 3339 or natural language ("yesterday 8pm"); empty means now.
type CreateScorepadInput struct {
	Name     string   `json:"name"`
	Players  []string `json:"players"`
	PlayedAt string   `json:"playedAt"`
}

// FormOptions is everything the match entry form offers.
type FormOptions struct {
	SliderOptions        []int                      `json:"sliderOptions"`
	SliderStart          int                        `json:"sliderStart"`
	SliderStep           int                        `json:"sliderStep"`
	SpecialPointOptions  []int                      `json:"specialPointOptions"`
	DefaultSpecialPoints int                        `json:"defaultSpecialPoints"`
	Teams                []scorepadtypes.Team       `json:"teams"`
	BidOptions           []scorepadtypes.Team       `json:"bidOptions"`
	Players              []playerservice.PlayerInfo `json:"players"`
	DealerIndex          int                        `json:"dealerIndex"`
}

// Service defines the scorepad operations.
type Service interface {
	CreateScorepad(ctx context.Context, input CreateScorepadInput) (*ScorepadInfo, error)
	GetScorepad(ctx context.Context, id uuid.UUID) (*ScorepadInfo, error)
	ListScorepads(ctx context.Context) ([]ScorepadSummary, error)

	// RecordMatch validates and scores a match, appends it to the scorepad
	// and announces it once committed.
	RecordMatch(ctx context.Context, id uuid.UUID, input scorepadtypes.MatchInput) (*MatchInfo, error)

	GetBoard(ctx context.Context, id uuid.UUID) (*scorepadtypes.Board, error)
	GetForm(ctx context.Context, id uuid.UUID) (*FormOptions, error)

	// ExportXLSX renders the board and the match list as a workbook.
	ExportXLSX(ctx context.Context, id uuid.UUID) ([]byte, error)

	// RenderChart draws the running score of every player as a PNG.
	RenderChart(ctx context.Context, id uuid.UUID) ([]byte, error)
}
