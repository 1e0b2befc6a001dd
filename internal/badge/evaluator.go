// Package badge evaluates unlock conditions and awards badges. Conditions
// are pure functions over an immutable snapshot of user state, keyed by
// the badge's Kind rather than its display name.
package badge

import (
	"context"
	"fmt"
	"strings"

	"github.com/promptforge/promptforge/internal/database/types"
	"github.com/promptforge/promptforge/internal/database/types/enum"
	"github.com/promptforge/promptforge/internal/permission"
	"go.uber.org/zap"
)

// chainOfThoughtMarker is matched case-insensitively against technique
// names linked to a user's approved prompts.
const chainOfThoughtMarker = "chain-of-thought"

// Snapshot is the user state a condition is evaluated against.
type Snapshot struct {
	Reputation          int64
	ApprovedPromptCount int
	ApprovedTechniques  []string
}

// Store is the narrow persistence surface the evaluator depends on.
// Award must be idempotent: a duplicate award is silently ignored.
type Store interface {
	GetBadges(ctx context.Context) ([]*types.Badge, error)
	GetUserBadges(ctx context.Context, userID uint64) ([]*types.UserBadge, error)
	AwardBadge(ctx context.Context, userID, badgeID uint64) error
	Snapshot(ctx context.Context, userID uint64) (*Snapshot, error)
}

// Catalog returns the static badge catalog seeded at startup.
func Catalog() []*types.Badge {
	return []*types.Badge{
		{
			Kind:        enum.BadgeKindFirstChainOfThought,
			Name:        "First Chain-of-Thought",
			Description: "First approved prompt using a chain-of-thought technique",
		},
		{
			Kind:        enum.BadgeKindReviewer,
			Name:        "Reviewer",
			Description: "Reached 500 reputation and unlocked prompt review",
		},
		{
			Kind:        enum.BadgeKindModerator,
			Name:        "Moderator",
			Description: "Reached 2000 reputation and unlocked taxonomy moderation",
		},
	}
}

// ConditionMet evaluates a badge kind against a snapshot.
func ConditionMet(kind enum.BadgeKind, snapshot *Snapshot) bool {
	switch kind {
	case enum.BadgeKindFirstChainOfThought:
		if snapshot.ApprovedPromptCount != 1 {
			return false
		}

		for _, name := range snapshot.ApprovedTechniques {
			if strings.Contains(strings.ToLower(name), chainOfThoughtMarker) {
				return true
			}
		}

		return false
	case enum.BadgeKindReviewer:
		return snapshot.Reputation >= permission.ReviewThreshold
	case enum.BadgeKindModerator:
		return snapshot.Reputation >= permission.CreateTechniqueThreshold
	default:
		return false
	}
}

// Evaluator checks unlock conditions and grants badges.
type Evaluator struct {
	store  Store
	logger *zap.Logger
}

// NewEvaluator creates a new badge evaluator.
func NewEvaluator(store Store, logger *zap.Logger) *Evaluator {
	return &Evaluator{
		store:  store,
		logger: logger.Named("badge_evaluator"),
	}
}

// CheckUser evaluates all badges the user does not yet hold and awards
// any whose condition is satisfied. Safe to re-run at any time: held
// badges are skipped and duplicate awards are deduplicated by the store.
func (e *Evaluator) CheckUser(ctx context.Context, userID uint64) error {
	badges, err := e.store.GetBadges(ctx)
	if err != nil {
		return fmt.Errorf("failed to get badge catalog: %w", err)
	}

	held, err := e.store.GetUserBadges(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to get user badges: %w", err)
	}

	heldIDs := make(map[uint64]struct{}, len(held))
	for _, award := range held {
		heldIDs[award.BadgeID] = struct{}{}
	}

	remaining := badges[:0:0]
	for _, badge := range badges {
		if _, ok := heldIDs[badge.ID]; !ok {
			remaining = append(remaining, badge)
		}
	}

	if len(remaining) == 0 {
		return nil
	}

	snapshot, err := e.store.Snapshot(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to get user snapshot: %w", err)
	}

	for _, badge := range remaining {
		if !ConditionMet(badge.Kind, snapshot) {
			continue
		}

		if err := e.store.AwardBadge(ctx, userID, badge.ID); err != nil {
			return fmt.Errorf("failed to award badge: %w", err)
		}

		e.logger.Info("Awarded badge",
			zap.Uint64("userID", userID),
			zap.String("badge", badge.Name),
			zap.String("kind", badge.Kind.String()))
	}

	return nil
}
