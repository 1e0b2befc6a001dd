package types

import (
	"errors"
	"time"
)

var ErrCommentNotFound = errors.New("comment not found")

// Comment represents a community note on a prompt.
type Comment struct {
	ID        uint64    `bun:",pk,autoincrement" json:"id"`
	PromptID  uint64    `bun:",notnull"          json:"promptId"`
	AuthorID  uint64    `bun:",notnull"          json:"authorId"`
	Message   string    `bun:",notnull"          json:"message"`
	CreatedAt time.Time `bun:",notnull"          json:"createdAt"`
	UpdatedAt time.Time `bun:",notnull"          json:"updatedAt"`
}
