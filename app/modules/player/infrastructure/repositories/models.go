package playerdb

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Player is someone who can be seated at a scorepad.
type Player struct {
	bun.BaseModel `bun:"table:players,alias:p"`

	ID        uuid.UUID `bun:"id,pk,type:uuid"`
	Name      string    `bun:"name,notnull"`
	Picture   string    `bun:"picture,notnull,default:''"`
	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
}
