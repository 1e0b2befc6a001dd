package badge_test

import (
	"context"
	"testing"
	"time"

	"github.com/promptforge/promptforge/internal/badge"
	"github.com/promptforge/promptforge/internal/database/types"
	"github.com/promptforge/promptforge/internal/database/types/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeStore serves the static catalog and one user's state.
type fakeStore struct {
	badges   []*types.Badge
	held     map[uint64][]*types.UserBadge
	snapshot *badge.Snapshot
	awards   int
}

func newFakeStore(snapshot *badge.Snapshot) *fakeStore {
	badges := badge.Catalog()
	for i, b := range badges {
		b.ID = uint64(i + 1)
	}

	return &fakeStore{
		badges:   badges,
		held:     make(map[uint64][]*types.UserBadge),
		snapshot: snapshot,
	}
}

func (f *fakeStore) GetBadges(_ context.Context) ([]*types.Badge, error) {
	return f.badges, nil
}

func (f *fakeStore) GetUserBadges(_ context.Context, userID uint64) ([]*types.UserBadge, error) {
	return f.held[userID], nil
}

func (f *fakeStore) AwardBadge(_ context.Context, userID, badgeID uint64) error {
	// Duplicate awards are ignored, mirroring the unique constraint
	for _, award := range f.held[userID] {
		if award.BadgeID == badgeID {
			return nil
		}
	}

	f.held[userID] = append(f.held[userID], &types.UserBadge{
		UserID:    userID,
		BadgeID:   badgeID,
		AwardedAt: time.Now(),
	})
	f.awards++

	return nil
}

func (f *fakeStore) Snapshot(_ context.Context, _ uint64) (*badge.Snapshot, error) {
	return f.snapshot, nil
}

func (f *fakeStore) heldKinds(userID uint64) []enum.BadgeKind {
	kinds := make([]enum.BadgeKind, 0, len(f.held[userID]))

	for _, award := range f.held[userID] {
		for _, b := range f.badges {
			if b.ID == award.BadgeID {
				kinds = append(kinds, b.Kind)
			}
		}
	}

	return kinds
}

func TestConditionMetFirstChainOfThought(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		snapshot *badge.Snapshot
		want     bool
	}{
		{
			name: "one approved prompt with matching technique",
			snapshot: &badge.Snapshot{
				ApprovedPromptCount: 1,
				ApprovedTechniques:  []string{"Chain-of-Thought"},
			},
			want: true,
		},
		{
			name: "match is case-insensitive and allows substrings",
			snapshot: &badge.Snapshot{
				ApprovedPromptCount: 1,
				ApprovedTechniques:  []string{"Zero-Shot CHAIN-OF-THOUGHT Reasoning"},
			},
			want: true,
		},
		{
			name: "no matching technique",
			snapshot: &badge.Snapshot{
				ApprovedPromptCount: 1,
				ApprovedTechniques:  []string{"few-shot"},
			},
			want: false,
		},
		{
			name: "second approved prompt no longer qualifies",
			snapshot: &badge.Snapshot{
				ApprovedPromptCount: 2,
				ApprovedTechniques:  []string{"chain-of-thought"},
			},
			want: false,
		},
		{
			name:     "no approved prompts",
			snapshot: &badge.Snapshot{},
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, badge.ConditionMet(enum.BadgeKindFirstChainOfThought, tt.snapshot))
		})
	}
}

func TestConditionMetReputationThresholds(t *testing.T) {
	t.Parallel()

	assert.False(t, badge.ConditionMet(enum.BadgeKindReviewer, &badge.Snapshot{Reputation: 499}))
	assert.True(t, badge.ConditionMet(enum.BadgeKindReviewer, &badge.Snapshot{Reputation: 500}))
	assert.False(t, badge.ConditionMet(enum.BadgeKindModerator, &badge.Snapshot{Reputation: 1999}))
	assert.True(t, badge.ConditionMet(enum.BadgeKindModerator, &badge.Snapshot{Reputation: 2000}))
}

func TestCheckUserAwards(t *testing.T) {
	t.Parallel()

	store := newFakeStore(&badge.Snapshot{
		Reputation:          520,
		ApprovedPromptCount: 1,
		ApprovedTechniques:  []string{"chain-of-thought"},
	})
	evaluator := badge.NewEvaluator(store, zap.NewNop())

	err := evaluator.CheckUser(t.Context(), 1)
	require.NoError(t, err)

	assert.ElementsMatch(t,
		[]enum.BadgeKind{enum.BadgeKindFirstChainOfThought, enum.BadgeKindReviewer},
		store.heldKinds(1))
}

func TestCheckUserIdempotent(t *testing.T) {
	t.Parallel()

	store := newFakeStore(&badge.Snapshot{Reputation: 600})
	evaluator := badge.NewEvaluator(store, zap.NewNop())

	ctx := t.Context()

	require.NoError(t, evaluator.CheckUser(ctx, 1))
	require.NoError(t, evaluator.CheckUser(ctx, 1))
	require.NoError(t, evaluator.CheckUser(ctx, 1))

	assert.Equal(t, 1, store.awards)
	assert.ElementsMatch(t, []enum.BadgeKind{enum.BadgeKindReviewer}, store.heldKinds(1))
}

func TestCheckUserNothingUnlocked(t *testing.T) {
	t.Parallel()

	store := newFakeStore(&badge.Snapshot{Reputation: 10})
	evaluator := badge.NewEvaluator(store, zap.NewNop())

	require.NoError(t, evaluator.CheckUser(t.Context(), 1))
	assert.Zero(t, store.awards)
}

func TestCatalogCoversAllKinds(t *testing.T) {
	t.Parallel()

	kinds := make([]enum.BadgeKind, 0, len(badge.Catalog()))
	for _, b := range badge.Catalog() {
		kinds = append(kinds, b.Kind)
	}

	assert.ElementsMatch(t, enum.BadgeKindValues(), kinds)
}
