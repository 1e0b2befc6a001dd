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

// BadgeModel handles database operations for badges and awards.
type BadgeModel struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewBadge creates a new badge model.
func NewBadge(db *bun.DB, logger *zap.Logger) *BadgeModel {
	return &BadgeModel{
		db:     db,
		logger: logger.Named("db_badge"),
	}
}

// SyncCatalog inserts any missing catalog entries by name. Existing rows
// are left untouched, so startup seeding is idempotent.
func (r *BadgeModel) SyncCatalog(ctx context.Context, badges []*types.Badge) error {
	if len(badges) == 0 {
		return nil
	}

	err := dbretry.NoResult(ctx, func(ctx context.Context) error {
		_, err := r.db.NewInsert().
			Model(&badges).
			On("CONFLICT (name) DO NOTHING").
			Exec(ctx)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to sync badge catalog: %w", err)
	}

	return nil
}

// GetBadges retrieves the full badge catalog.
func (r *BadgeModel) GetBadges(ctx context.Context) ([]*types.Badge, error) {
	var badges []*types.Badge

	err := dbretry.NoResult(ctx, func(ctx context.Context) error {
		return r.db.NewSelect().
			Model(&badges).
			Order("id ASC").
			Scan(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get badges: %w", err)
	}

	return badges, nil
}

// GetUserBadges retrieves the badges held by a user.
func (r *BadgeModel) GetUserBadges(ctx context.Context, userID uint64) ([]*types.UserBadge, error) {
	var held []*types.UserBadge

	err := dbretry.NoResult(ctx, func(ctx context.Context) error {
		return r.db.NewSelect().
			Model(&held).
			Where("user_id = ?", userID).
			Order("awarded_at ASC").
			Scan(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get user badges: %w", err)
	}

	return held, nil
}

// AwardBadge grants a badge to a user. Duplicate awards are silently
// ignored via the primary key conflict, so concurrent evaluations can
// both attempt the insert safely.
func (r *BadgeModel) AwardBadge(ctx context.Context, userID, badgeID uint64) error {
	award := &types.UserBadge{
		UserID:    userID,
		BadgeID:   badgeID,
		AwardedAt: time.Now(),
	}

	err := dbretry.NoResult(ctx, func(ctx context.Context) error {
		_, err := r.db.NewInsert().
			Model(award).
			On("CONFLICT DO NOTHING").
			Exec(ctx)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to award badge: %w", err)
	}

	return nil
}
