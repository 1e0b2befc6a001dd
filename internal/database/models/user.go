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
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// UserModel handles database operations for users.
type UserModel struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewUser creates a new user model.
func NewUser(db *bun.DB, logger *zap.Logger) *UserModel {
	return &UserModel{
		db:     db,
		logger: logger.Named("db_user"),
	}
}

// CreateUser inserts a new user with a zero reputation total.
func (r *UserModel) CreateUser(ctx context.Context, username string) (*types.User, error) {
	now := time.Now()
	user := &types.User{
		UUID:      uuid.New(),
		Username:  username,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := dbretry.NoResult(ctx, func(ctx context.Context) error {
		_, err := r.db.NewInsert().
			Model(user).
			Returning("id").
			Exec(ctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// GetUser retrieves a user by their numeric ID.
func (r *UserModel) GetUser(ctx context.Context, userID uint64) (*types.User, error) {
	var user types.User

	err := dbretry.NoResult(ctx, func(ctx context.Context) error {
		return r.db.NewSelect().
			Model(&user).
			Where("id = ?", userID).
			Scan(ctx)
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, types.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

// GetUserByRef retrieves a user by either their numeric ID or UUID.
func (r *UserModel) GetUserByRef(ctx context.Context, ref string) (*types.User, error) {
	var user types.User

	query := r.db.NewSelect().Model(&user)

	// Check if input is numeric (ID) or string (UUID)
	if id, err := strconv.ParseUint(ref, 10, 64); err == nil {
		query.Where("id = ?", id)
	} else {
		uid, err := uuid.Parse(ref)
		if err != nil {
			return nil, types.ErrInvalidUserID
		}
		query.Where("uuid = ?", uid)
	}

	err := dbretry.NoResult(ctx, func(ctx context.Context) error {
		return query.Scan(ctx)
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, types.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

// TopByReputation retrieves the highest-reputation users for leaderboard refresh.
func (r *UserModel) TopByReputation(ctx context.Context, limit int) ([]*types.User, error) {
	var users []*types.User

	err := dbretry.NoResult(ctx, func(ctx context.Context) error {
		return r.db.NewSelect().
			Model(&users).
			Order("reputation DESC").
			Limit(limit).
			Scan(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get top users: %w", err)
	}

	return users, nil
}
