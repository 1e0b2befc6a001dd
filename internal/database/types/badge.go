package types

import (
	"time"

	"github.com/promptforge/promptforge/internal/database/types/enum"
)

// Badge is a static catalog entry. The unlock condition is code keyed by
// Kind, not data, so the catalog only carries display fields.
type Badge struct {
	ID          uint64         `bun:",pk,autoincrement" json:"id"`
	Kind        enum.BadgeKind `bun:",notnull,unique"   json:"kind"`
	Name        string         `bun:",notnull,unique"   json:"name"`
	Description string         `bun:",notnull"          json:"description"`
}

// UserBadge marks a badge as held by a user. The composite primary key
// ensures each badge is awarded at most once per user.
type UserBadge struct {
	UserID    uint64    `bun:",pk,notnull" json:"userId"`
	BadgeID   uint64    `bun:",pk,notnull" json:"badgeId"`
	AwardedAt time.Time `bun:",notnull"    json:"awardedAt"`
}
