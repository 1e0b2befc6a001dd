package models

import (
	"context"
	"fmt"
	"time"

	"github.com/promptforge/promptforge/internal/database/dbretry"
	"github.com/promptforge/promptforge/internal/database/types"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// ReviewModel handles database operations for reviews.
type ReviewModel struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewReview creates a new review model.
func NewReview(db *bun.DB, logger *zap.Logger) *ReviewModel {
	return &ReviewModel{
		db:     db,
		logger: logger.Named("db_review"),
	}
}

// CreateReview inserts a review record.
func (r *ReviewModel) CreateReview(ctx context.Context, review *types.Review) error {
	review.CreatedAt = time.Now()

	err := dbretry.NoResult(ctx, func(ctx context.Context) error {
		_, err := r.db.NewInsert().
			Model(review).
			Returning("id").
			Exec(ctx)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}

	return nil
}

// GetPromptReviews retrieves all reviews for a prompt, newest first.
func (r *ReviewModel) GetPromptReviews(ctx context.Context, promptID uint64) ([]*types.Review, error) {
	var reviews []*types.Review

	err := dbretry.NoResult(ctx, func(ctx context.Context) error {
		return r.db.NewSelect().
			Model(&reviews).
			Where("prompt_id = ?", promptID).
			Order("created_at DESC").
			Scan(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get reviews: %w", err)
	}

	return reviews, nil
}
