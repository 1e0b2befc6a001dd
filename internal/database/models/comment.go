package models

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/promptforge/promptforge/internal/database/dbretry"
	"github.com/promptforge/promptforge/internal/database/types"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// CommentModel handles database operations for comments.
type CommentModel struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewComment creates a new comment model.
func NewComment(db *bun.DB, logger *zap.Logger) *CommentModel {
	return &CommentModel{
		db:     db,
		logger: logger.Named("db_comment"),
	}
}

// CreateComment inserts a comment on a prompt.
func (r *CommentModel) CreateComment(ctx context.Context, comment *types.Comment) error {
	now := time.Now()
	comment.CreatedAt = now
	comment.UpdatedAt = now

	err := dbretry.NoResult(ctx, func(ctx context.Context) error {
		_, err := r.db.NewInsert().
			Model(comment).
			Returning("id").
			Exec(ctx)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}

	return nil
}

// GetComment retrieves a comment by ID.
func (r *CommentModel) GetComment(ctx context.Context, commentID uint64) (*types.Comment, error) {
	var comment types.Comment

	err := dbretry.NoResult(ctx, func(ctx context.Context) error {
		return r.db.NewSelect().
			Model(&comment).
			Where("id = ?", commentID).
			Scan(ctx)
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, types.ErrCommentNotFound
		}
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}

	return &comment, nil
}

// GetPromptComments retrieves comments on a prompt, newest first.
func (r *CommentModel) GetPromptComments(ctx context.Context, promptID uint64) ([]*types.Comment, error) {
	var comments []*types.Comment

	err := dbretry.NoResult(ctx, func(ctx context.Context) error {
		return r.db.NewSelect().
			Model(&comments).
			Where("prompt_id = ?", promptID).
			Order("created_at DESC").
			Scan(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get comments: %w", err)
	}

	return comments, nil
}

// UpvoteComment records an upvote on a comment. Returns true only when the
// vote row was newly inserted, so callers can pay the reputation bonus
// exactly once per (comment, voter).
func (r *CommentModel) UpvoteComment(ctx context.Context, commentID, userID uint64) (bool, error) {
	vote := &types.CommentVote{
		CommentID: commentID,
		UserID:    userID,
		CreatedAt: time.Now(),
	}

	res, err := dbretry.Operation(ctx, func(ctx context.Context) (sql.Result, error) {
		return r.db.NewInsert().
			Model(vote).
			On("CONFLICT DO NOTHING").
			Exec(ctx)
	})
	if err != nil {
		return false, fmt.Errorf("failed to upvote comment: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check comment upvote: %w", err)
	}

	return affected > 0, nil
}
