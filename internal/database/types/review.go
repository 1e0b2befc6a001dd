package types

import (
	"time"

	"github.com/promptforge/promptforge/internal/database/types/enum"
)

// Review records a reviewer's verdict on a pending prompt.
type Review struct {
	ID         uint64          `bun:",pk,autoincrement" json:"id"`
	PromptID   uint64          `bun:",notnull"          json:"promptId"`
	ReviewerID uint64          `bun:",notnull"          json:"reviewerId"`
	Vote       enum.ReviewVote `bun:",notnull"          json:"vote"`
	Comment    string          `bun:","                 json:"comment,omitempty"`
	CreatedAt  time.Time       `bun:",notnull"          json:"createdAt"`
}
