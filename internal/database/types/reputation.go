package types

import (
	"time"

	"github.com/promptforge/promptforge/internal/database/types/enum"
)

// ReputationEvent is one immutable entry in the reputation ledger.
// Events are only ever appended; the audit trail is never mutated.
type ReputationEvent struct {
	ID        uint64                   `bun:",pk,autoincrement" json:"id"`
	UserID    uint64                   `bun:",notnull"          json:"userId"`
	Type      enum.ReputationEventType `bun:",notnull"          json:"type"`
	Change    int64                    `bun:",notnull"          json:"change"`
	ContentID *uint64                  `bun:","                 json:"contentId,omitempty"`
	CreatedAt time.Time                `bun:",notnull"          json:"createdAt"`
}
