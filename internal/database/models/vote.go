package models

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/promptforge/promptforge/internal/database/dbretry"
	"github.com/promptforge/promptforge/internal/database/types"
	"github.com/promptforge/promptforge/internal/database/types/enum"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// VoteModel handles database operations for prompt votes.
type VoteModel struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewVote creates a new vote model.
func NewVote(db *bun.DB, logger *zap.Logger) *VoteModel {
	return &VoteModel{
		db:     db,
		logger: logger.Named("db_vote"),
	}
}

// UpsertVote records a vote and reports the vote type it replaced, nil
// when the user had no prior vote on the prompt. The prior-vote read and
// the write share one transaction: a fresh vote is claimed through the
// primary key insert, and an existing row is locked before it is read,
// so concurrent casts by the same user serialize and each observes the
// state the other committed.
func (r *VoteModel) UpsertVote(ctx context.Context, vote *types.PromptVote) (*enum.VoteType, error) {
	now := time.Now()
	vote.CreatedAt = now
	vote.UpdatedAt = now

	var previous *enum.VoteType

	err := dbretry.Transaction(ctx, r.db, func(ctx context.Context, tx bun.Tx) error {
		previous = nil

		res, err := tx.NewInsert().
			Model(vote).
			On("CONFLICT (prompt_id, user_id) DO NOTHING").
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to insert vote: %w", err)
		}

		inserted, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to check vote insert: %w", err)
		}

		if inserted > 0 {
			return nil
		}

		// The insert lost to an existing row. Lock it so a concurrent
		// cast cannot slip between the read and the overwrite.
		var existing types.PromptVote

		err = tx.NewSelect().
			Model(&existing).
			Where("prompt_id = ?", vote.PromptID).
			Where("user_id = ?", vote.UserID).
			For("UPDATE").
			Scan(ctx)
		if err != nil {
			return fmt.Errorf("failed to lock vote: %w", err)
		}

		previous = &existing.Type

		if existing.Type == vote.Type {
			return nil
		}

		_, err = tx.NewUpdate().
			Model((*types.PromptVote)(nil)).
			Set("type = ?", vote.Type).
			Set("updated_at = ?", now).
			Where("prompt_id = ?", vote.PromptID).
			Where("user_id = ?", vote.UserID).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to update vote: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return previous, nil
}

// DeleteVote removes a user's vote from a prompt and returns the deleted
// vote type. The single DELETE ... RETURNING means at most one of two
// racing removals sees the row; the loser gets ErrVoteNotFound.
func (r *VoteModel) DeleteVote(ctx context.Context, promptID, userID uint64) (*enum.VoteType, error) {
	var deleted types.PromptVote

	res, err := dbretry.Operation(ctx, func(ctx context.Context) (sql.Result, error) {
		return r.db.NewDelete().
			Model(&deleted).
			Where("prompt_id = ?", promptID).
			Where("user_id = ?", userID).
			Returning("type").
			Exec(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to delete vote: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to check vote deletion: %w", err)
	}

	if affected == 0 {
		return nil, types.ErrVoteNotFound
	}

	return &deleted.Type, nil
}
