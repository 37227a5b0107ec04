package scorepaddb

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Scorepad is one game session. PlayerIDs is in seat order.
type Scorepad struct {
	bun.BaseModel `bun:"table:scorepads,alias:s"`

	ID        uuid.UUID `bun:"id,pk,type:uuid"`
	Name      string    `bun:"name,notnull"`
	PlayedAt  time.Time `bun:"played_at,notnull"`
	PlayerIDs []string  `bun:"player_ids,array,notnull"`
	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`

	MatchCount int `bun:"match_count,scanonly"`
}

// Match is one recorded deal. Matches are never updated.
type Match struct {
	bun.BaseModel `bun:"table:matches,alias:m"`

	ID            uuid.UUID `bun:"id,pk,type:uuid"`
	ScorepadID    uuid.UUID `bun:"scorepad_id,type:uuid,notnull"`
	Seq           int       `bun:"seq,notnull"`
	Winners       []string  `bun:"winners,array,notnull"`
	Team          string    `bun:"team,notnull"`
	Bids          []string  `bun:"bids,array,notnull"`
	Points        int       `bun:"points,notnull"`
	Bidding       int       `bun:"bidding,notnull"`
	SpecialPoints int       `bun:"special_points,notnull"`
	Score         int       `bun:"score,notnull"`
	CreatedAt     time.Time `bun:"created_at,notnull,default:current_timestamp"`
}
