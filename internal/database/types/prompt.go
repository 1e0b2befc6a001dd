package types

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/promptforge/promptforge/internal/database/types/enum"
)

var (
	ErrPromptNotFound   = errors.New("prompt not found")
	ErrInvalidPromptID  = errors.New("invalid prompt ID format")
	ErrPromptNotPending = errors.New("prompt is not pending review")
)

// Prompt represents a shared prompt moving through the review lifecycle.
// ParentID is set when the prompt was forked from another prompt and is
// used to pay the fork bonus to the original author on approval.
type Prompt struct {
	ID        uint64            `bun:",pk,autoincrement" json:"id"`
	UUID      uuid.UUID         `bun:",notnull,unique"   json:"uuid"`
	AuthorID  uint64            `bun:",notnull"          json:"authorId"`
	ParentID  *uint64           `bun:","                 json:"parentId,omitempty"`
	Title     string            `bun:",notnull"          json:"title"`
	Body      string            `bun:",notnull"          json:"body"`
	Status    enum.PromptStatus `bun:",notnull"          json:"status"`
	CreatedAt time.Time         `bun:",notnull"          json:"createdAt"`
	UpdatedAt time.Time         `bun:",notnull"          json:"updatedAt"`
}

// PromptFilter narrows prompt listings.
type PromptFilter struct {
	AuthorID uint64
	Status   *enum.PromptStatus
	Limit    int
}
