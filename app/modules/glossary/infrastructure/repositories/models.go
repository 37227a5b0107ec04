package glossarydb

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Term is a glossary entry. Value is stored lowercased and is unique.
type Term struct {
	bun.BaseModel `bun:"table:terms,alias:t"`

	ID        uuid.UUID `bun:"id,pk,type:uuid"`
	Value     string    `bun:"value,notnull,unique"`
	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
}
