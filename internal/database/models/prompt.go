package models

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/promptforge/promptforge/internal/database/dbretry"
	"github.com/promptforge/promptforge/internal/database/types"
	"github.com/promptforge/promptforge/internal/database/types/enum"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// PromptModel handles database operations for prompts.
type PromptModel struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewPrompt creates a new prompt model.
func NewPrompt(db *bun.DB, logger *zap.Logger) *PromptModel {
	return &PromptModel{
		db:     db,
		logger: logger.Named("db_prompt"),
	}
}

// CreatePrompt inserts a new draft prompt.
func (r *PromptModel) CreatePrompt(ctx context.Context, prompt *types.Prompt) error {
	now := time.Now()
	prompt.UUID = uuid.New()
	prompt.Status = enum.PromptStatusDraft
	prompt.CreatedAt = now
	prompt.UpdatedAt = now

	err := dbretry.NoResult(ctx, func(ctx context.Context) error {
		_, err := r.db.NewInsert().
			Model(prompt).
			Returning("id").
			Exec(ctx)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to create prompt: %w", err)
	}

	return nil
}

// GetPrompt retrieves a prompt by its numeric ID.
func (r *PromptModel) GetPrompt(ctx context.Context, promptID uint64) (*types.Prompt, error) {
	var prompt types.Prompt

	err := dbretry.NoResult(ctx, func(ctx context.Context) error {
		return r.db.NewSelect().
			Model(&prompt).
			Where("id = ?", promptID).
			Scan(ctx)
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, types.ErrPromptNotFound
		}
		return nil, fmt.Errorf("failed to get prompt: %w", err)
	}

	return &prompt, nil
}

// GetPromptByRef retrieves a prompt by either its numeric ID or UUID.
func (r *PromptModel) GetPromptByRef(ctx context.Context, ref string) (*types.Prompt, error) {
	var prompt types.Prompt

	query := r.db.NewSelect().Model(&prompt)

	if id, err := strconv.ParseUint(ref, 10, 64); err == nil {
		query.Where("id = ?", id)
	} else {
		uid, err := uuid.Parse(ref)
		if err != nil {
			return nil, types.ErrInvalidPromptID
		}
		query.Where("uuid = ?", uid)
	}

	err := dbretry.NoResult(ctx, func(ctx context.Context) error {
		return query.Scan(ctx)
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, types.ErrPromptNotFound
		}
		return nil, fmt.Errorf("failed to get prompt: %w", err)
	}

	return &prompt, nil
}

// ListPrompts retrieves prompts matching the filter, newest first.
func (r *PromptModel) ListPrompts(ctx context.Context, filter types.PromptFilter) ([]*types.Prompt, error) {
	var prompts []*types.Prompt

	query := r.db.NewSelect().
		Model(&prompts).
		Order("created_at DESC")

	if filter.AuthorID != 0 {
		query.Where("author_id = ?", filter.AuthorID)
	}

	if filter.Status != nil {
		query.Where("status = ?", *filter.Status)
	}

	if filter.Limit > 0 {
		query.Limit(filter.Limit)
	}

	err := dbretry.NoResult(ctx, func(ctx context.Context) error {
		return query.Scan(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list prompts: %w", err)
	}

	return prompts, nil
}

// SubmitForReview moves a draft prompt to pending review. Only the author
// can submit their own draft.
func (r *PromptModel) SubmitForReview(ctx context.Context, promptID, authorID uint64) error {
	res, err := dbretry.Operation(ctx, func(ctx context.Context) (sql.Result, error) {
		return r.db.NewUpdate().
			Model((*types.Prompt)(nil)).
			Set("status = ?", enum.PromptStatusPendingReview).
			Set("updated_at = ?", time.Now()).
			Where("id = ?", promptID).
			Where("author_id = ?", authorID).
			Where("status = ?", enum.PromptStatusDraft).
			Exec(ctx)
	})
	if err != nil {
		return fmt.Errorf("failed to submit prompt for review: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check prompt submission: %w", err)
	}

	if affected == 0 {
		return types.ErrPromptNotFound
	}

	return nil
}

// ApprovePrompt transitions a pending prompt to approved and returns the
// author's approved prompt count after the transition. The status change,
// row lock and count share one transaction so the first-approval bonus is
// decided against post-transition state even under concurrent reviews.
func (r *PromptModel) ApprovePrompt(ctx context.Context, promptID uint64) (int, error) {
	var approvedCount int

	err := dbretry.Transaction(ctx, r.db, func(ctx context.Context, tx bun.Tx) error {
		var prompt types.Prompt

		err := tx.NewSelect().
			Model(&prompt).
			Where("id = ?", promptID).
			For("UPDATE").
			Scan(ctx)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return types.ErrPromptNotFound
			}
			return fmt.Errorf("failed to lock prompt: %w", err)
		}

		if prompt.Status != enum.PromptStatusPendingReview {
			return types.ErrPromptNotPending
		}

		_, err = tx.NewUpdate().
			Model((*types.Prompt)(nil)).
			Set("status = ?", enum.PromptStatusApproved).
			Set("updated_at = ?", time.Now()).
			Where("id = ?", promptID).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to approve prompt: %w", err)
		}

		approvedCount, err = tx.NewSelect().
			Model((*types.Prompt)(nil)).
			Where("author_id = ?", prompt.AuthorID).
			Where("status = ?", enum.PromptStatusApproved).
			Count(ctx)
		if err != nil {
			return fmt.Errorf("failed to count approved prompts: %w", err)
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return approvedCount, nil
}

// RejectPrompt transitions a pending prompt to rejected.
func (r *PromptModel) RejectPrompt(ctx context.Context, promptID uint64) error {
	return dbretry.Transaction(ctx, r.db, func(ctx context.Context, tx bun.Tx) error {
		var prompt types.Prompt

		err := tx.NewSelect().
			Model(&prompt).
			Where("id = ?", promptID).
			For("UPDATE").
			Scan(ctx)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return types.ErrPromptNotFound
			}
			return fmt.Errorf("failed to lock prompt: %w", err)
		}

		if prompt.Status != enum.PromptStatusPendingReview {
			return types.ErrPromptNotPending
		}

		_, err = tx.NewUpdate().
			Model((*types.Prompt)(nil)).
			Set("status = ?", enum.PromptStatusRejected).
			Set("updated_at = ?", time.Now()).
			Where("id = ?", promptID).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to reject prompt: %w", err)
		}

		return nil
	})
}

// ForkPrompt copies a prompt into a new draft attributed to the forking
// user, tracking lineage via parent_id. Technique links are copied so the
// fork starts from the same taxonomy.
func (r *PromptModel) ForkPrompt(ctx context.Context, parentID, authorID uint64) (*types.Prompt, error) {
	var fork types.Prompt

	err := dbretry.Transaction(ctx, r.db, func(ctx context.Context, tx bun.Tx) error {
		var parent types.Prompt

		err := tx.NewSelect().
			Model(&parent).
			Where("id = ?", parentID).
			Scan(ctx)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return types.ErrPromptNotFound
			}
			return fmt.Errorf("failed to get parent prompt: %w", err)
		}

		now := time.Now()
		fork = types.Prompt{
			UUID:      uuid.New(),
			AuthorID:  authorID,
			ParentID:  &parent.ID,
			Title:     parent.Title,
			Body:      parent.Body,
			Status:    enum.PromptStatusDraft,
			CreatedAt: now,
			UpdatedAt: now,
		}

		_, err = tx.NewInsert().
			Model(&fork).
			Returning("id").
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to insert fork: %w", err)
		}

		_, err = tx.NewRaw(
			"INSERT INTO prompt_techniques (prompt_id, technique_id) "+
				"SELECT ?, technique_id FROM prompt_techniques WHERE prompt_id = ?",
			fork.ID, parent.ID,
		).Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to copy technique links: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	r.logger.Debug("Forked prompt",
		zap.Uint64("parentID", parentID),
		zap.Uint64("forkID", fork.ID),
		zap.Uint64("authorID", authorID))

	return &fork, nil
}

// CountApprovedByAuthor counts a user's approved prompts.
func (r *PromptModel) CountApprovedByAuthor(ctx context.Context, authorID uint64) (int, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) (int, error) {
		count, err := r.db.NewSelect().
			Model((*types.Prompt)(nil)).
			Where("author_id = ?", authorID).
			Where("status = ?", enum.PromptStatusApproved).
			Count(ctx)
		if err != nil {
			return 0, fmt.Errorf("failed to count approved prompts: %w", err)
		}

		return count, nil
	})
}
