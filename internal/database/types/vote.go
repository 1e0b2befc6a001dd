package types

import (
	"errors"
	"time"

	"github.com/promptforge/promptforge/internal/database/types/enum"
)

var ErrVoteNotFound = errors.New("vote not found")

// PromptVote records a user's single vote on a prompt. The composite
// primary key enforces at most one vote per (prompt, user); changing a
// vote replaces the prior row via upsert.
type PromptVote struct {
	PromptID  uint64        `bun:",pk,notnull" json:"promptId"`
	UserID    uint64        `bun:",pk,notnull" json:"userId"`
	Type      enum.VoteType `bun:",notnull"    json:"type"`
	CreatedAt time.Time     `bun:",notnull"    json:"createdAt"`
	UpdatedAt time.Time     `bun:",notnull"    json:"updatedAt"`
}

// CommentVote records an upvote on a comment. Comments only support
// upvotes, so no vote type column is needed.
type CommentVote struct {
	CommentID uint64    `bun:",pk,notnull" json:"commentId"`
	UserID    uint64    `bun:",pk,notnull" json:"userId"`
	CreatedAt time.Time `bun:",notnull"    json:"createdAt"`
}
