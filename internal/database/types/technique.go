package types

import (
	"errors"
	"time"
)

var ErrTechniqueNotFound = errors.New("technique not found")

// Technique is a taxonomy entry describing a prompting technique.
// Creating entries is gated behind the highest reputation threshold.
type Technique struct {
	ID          uint64    `bun:",pk,autoincrement" json:"id"`
	Name        string    `bun:",notnull,unique"   json:"name"`
	Description string    `bun:","                 json:"description,omitempty"`
	CreatedBy   uint64    `bun:",notnull"          json:"createdBy"`
	CreatedAt   time.Time `bun:",notnull"          json:"createdAt"`
}

// PromptTechnique links a prompt to a technique it demonstrates.
type PromptTechnique struct {
	PromptID    uint64 `bun:",pk,notnull" json:"promptId"`
	TechniqueID uint64 `bun:",pk,notnull" json:"techniqueId"`
}
