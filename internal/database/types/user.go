package types

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrInvalidUserID = errors.New("invalid user ID format")
)

// User represents a platform member with a cached reputation total.
// The cached total always equals the sum of the user's ledger events;
// it is updated atomically in the same transaction as each event append.
type User struct {
	ID         uint64    `bun:",pk,autoincrement"  json:"id"`
	UUID       uuid.UUID `bun:",notnull,unique"    json:"uuid"`
	Username   string    `bun:",notnull,unique"    json:"username"`
	Reputation int64     `bun:",notnull,default:0" json:"reputation"`
	CreatedAt  time.Time `bun:",notnull"           json:"createdAt"`
	UpdatedAt  time.Time `bun:",notnull"           json:"updatedAt"`
}
