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

// ReputationModel handles database operations for the reputation ledger.
type ReputationModel struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewReputation creates a new reputation model.
func NewReputation(db *bun.DB, logger *zap.Logger) *ReputationModel {
	return &ReputationModel{
		db:     db,
		logger: logger.Named("db_reputation"),
	}
}

// Append inserts ledger events for a user and bumps the cached total in the
// same transaction. The total is updated with an atomic increment so that
// concurrent events on the same user never lose updates.
func (r *ReputationModel) Append(ctx context.Context, userID uint64, events []*types.ReputationEvent) error {
	if len(events) == 0 {
		return nil
	}

	var delta int64

	now := time.Now()
	for _, event := range events {
		event.UserID = userID
		event.CreatedAt = now
		delta += event.Change
	}

	err := dbretry.Transaction(ctx, r.db, func(ctx context.Context, tx bun.Tx) error {
		res, err := tx.NewUpdate().
			Model((*types.User)(nil)).
			Set("reputation = reputation + ?", delta).
			Set("updated_at = ?", now).
			Where("id = ?", userID).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to update reputation total: %w", err)
		}

		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to check reputation update: %w", err)
		}

		if affected == 0 {
			return types.ErrUserNotFound
		}

		_, err = tx.NewInsert().
			Model(&events).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to insert reputation events: %w", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	r.logger.Debug("Appended reputation events",
		zap.Uint64("userID", userID),
		zap.Int("events", len(events)),
		zap.Int64("delta", delta))

	return nil
}

// GetUserEvents retrieves the full ledger for a user, newest first.
func (r *ReputationModel) GetUserEvents(ctx context.Context, userID uint64) ([]*types.ReputationEvent, error) {
	var events []*types.ReputationEvent

	err := dbretry.NoResult(ctx, func(ctx context.Context) error {
		return r.db.NewSelect().
			Model(&events).
			Where("user_id = ?", userID).
			Order("created_at DESC", "id DESC").
			Scan(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get reputation events: %w", err)
	}

	return events, nil
}

// SumUserEvents recomputes a user's reputation from the ledger. Used for
// audits; the cached total on the user row is authoritative for gating.
func (r *ReputationModel) SumUserEvents(ctx context.Context, userID uint64) (int64, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) (int64, error) {
		var total int64

		err := r.db.NewSelect().
			Model((*types.ReputationEvent)(nil)).
			ColumnExpr("COALESCE(SUM(change), 0)").
			Where("user_id = ?", userID).
			Scan(ctx, &total)
		if err != nil {
			return 0, fmt.Errorf("failed to sum reputation events: %w", err)
		}

		return total, nil
	})
}
