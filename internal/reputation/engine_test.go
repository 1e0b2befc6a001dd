package reputation_test

import (
	"context"
	"sync"
	"testing"

	"github.com/promptforge/promptforge/internal/database/types"
	"github.com/promptforge/promptforge/internal/database/types/enum"
	"github.com/promptforge/promptforge/internal/reputation"
	"github.com/sourcegraph/conc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// memoryStore is an in-memory store for engine tests. Append applies the
// same atomic total-plus-ledger update the real store performs.
type memoryStore struct {
	mu      sync.Mutex
	users   map[uint64]*types.User
	prompts map[uint64]*types.Prompt
	events  map[uint64][]*types.ReputationEvent
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		users:   make(map[uint64]*types.User),
		prompts: make(map[uint64]*types.Prompt),
		events:  make(map[uint64][]*types.ReputationEvent),
	}
}

func (s *memoryStore) addUser(id uint64) {
	s.users[id] = &types.User{ID: id}
}

func (s *memoryStore) addPrompt(id, authorID uint64, status enum.PromptStatus, parentID *uint64) {
	s.prompts[id] = &types.Prompt{ID: id, AuthorID: authorID, Status: status, ParentID: parentID}
}

func (s *memoryStore) GetPrompt(_ context.Context, promptID uint64) (*types.Prompt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prompt, ok := s.prompts[promptID]
	if !ok {
		return nil, types.ErrPromptNotFound
	}

	copied := *prompt

	return &copied, nil
}

func (s *memoryStore) Append(_ context.Context, userID uint64, events []*types.ReputationEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[userID]
	if !ok {
		return types.ErrUserNotFound
	}

	for _, event := range events {
		event.UserID = userID
		user.Reputation += event.Change
	}

	s.events[userID] = append(s.events[userID], events...)

	return nil
}

func (s *memoryStore) ApprovePrompt(_ context.Context, promptID uint64) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prompt, ok := s.prompts[promptID]
	if !ok {
		return 0, types.ErrPromptNotFound
	}

	if prompt.Status != enum.PromptStatusPendingReview {
		return 0, types.ErrPromptNotPending
	}

	prompt.Status = enum.PromptStatusApproved

	count := 0

	for _, p := range s.prompts {
		if p.AuthorID == prompt.AuthorID && p.Status == enum.PromptStatusApproved {
			count++
		}
	}

	return count, nil
}

func (s *memoryStore) RejectPrompt(_ context.Context, promptID uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prompt, ok := s.prompts[promptID]
	if !ok {
		return types.ErrPromptNotFound
	}

	if prompt.Status != enum.PromptStatusPendingReview {
		return types.ErrPromptNotPending
	}

	prompt.Status = enum.PromptStatusRejected

	return nil
}

// reputationOf reads the cached total.
func (s *memoryStore) reputationOf(userID uint64) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.users[userID].Reputation
}

// ledgerSum recomputes the total from the ledger.
func (s *memoryStore) ledgerSum(userID uint64) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var sum int64
	for _, event := range s.events[userID] {
		sum += event.Change
	}

	return sum
}

func (s *memoryStore) eventCount(userID uint64) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.events[userID])
}

func setupEngine(t *testing.T) (*reputation.Engine, *memoryStore) {
	t.Helper()

	store := newMemoryStore()
	engine := reputation.NewEngine(store, zap.NewNop())

	return engine, store
}

func TestHandleVoteUpvote(t *testing.T) {
	t.Parallel()
	engine, store := setupEngine(t)

	store.addUser(1)
	store.addUser(2)
	store.addPrompt(10, 1, enum.PromptStatusApproved, nil)

	affected, err := engine.HandleVote(t.Context(), 2, 10, enum.VoteTypeUpvote, nil)
	require.NoError(t, err)

	assert.Equal(t, int64(10), store.reputationOf(1))
	assert.Equal(t, int64(0), store.reputationOf(2))
	assert.Equal(t, []uint64{1}, affected)
}

func TestHandleVoteDownvoteCostsVoter(t *testing.T) {
	t.Parallel()
	engine, store := setupEngine(t)

	store.addUser(1)
	store.addUser(2)
	store.addPrompt(10, 1, enum.PromptStatusApproved, nil)

	affected, err := engine.HandleVote(t.Context(), 2, 10, enum.VoteTypeDownvote, nil)
	require.NoError(t, err)

	assert.Equal(t, int64(-2), store.reputationOf(1))
	assert.Equal(t, int64(-1), store.reputationOf(2))
	assert.ElementsMatch(t, []uint64{1, 2}, affected)
}

func TestHandleVoteSameTypeIsNoop(t *testing.T) {
	t.Parallel()
	engine, store := setupEngine(t)

	store.addUser(1)
	store.addUser(2)
	store.addPrompt(10, 1, enum.PromptStatusApproved, nil)

	previous := enum.VoteTypeUpvote
	affected, err := engine.HandleVote(t.Context(), 2, 10, enum.VoteTypeUpvote, &previous)
	require.NoError(t, err)

	assert.Empty(t, affected)
	assert.Equal(t, int64(0), store.reputationOf(1))
	assert.Zero(t, store.eventCount(1))
}

func TestHandleVoteChangeNetsDifference(t *testing.T) {
	t.Parallel()
	engine, store := setupEngine(t)

	store.addUser(1)
	store.addUser(2)
	store.addPrompt(10, 1, enum.PromptStatusApproved, nil)

	ctx := t.Context()

	_, err := engine.HandleVote(ctx, 2, 10, enum.VoteTypeUpvote, nil)
	require.NoError(t, err)
	require.Equal(t, int64(10), store.reputationOf(1))

	// Upvote changed to downvote: author nets -12, voter pays the cost
	previous := enum.VoteTypeUpvote
	_, err = engine.HandleVote(ctx, 2, 10, enum.VoteTypeDownvote, &previous)
	require.NoError(t, err)

	assert.Equal(t, int64(-2), store.reputationOf(1))
	assert.Equal(t, int64(-1), store.reputationOf(2))
}

func TestHandleVoteChangeDownToUpRefundsCost(t *testing.T) {
	t.Parallel()
	engine, store := setupEngine(t)

	store.addUser(1)
	store.addUser(2)
	store.addPrompt(10, 1, enum.PromptStatusApproved, nil)

	ctx := t.Context()

	_, err := engine.HandleVote(ctx, 2, 10, enum.VoteTypeDownvote, nil)
	require.NoError(t, err)
	require.Equal(t, int64(-1), store.reputationOf(2))

	previous := enum.VoteTypeDownvote
	_, err = engine.HandleVote(ctx, 2, 10, enum.VoteTypeUpvote, &previous)
	require.NoError(t, err)

	assert.Equal(t, int64(10), store.reputationOf(1))
	assert.Equal(t, int64(0), store.reputationOf(2))
}

func TestHandleVoteMissingPromptIsNoop(t *testing.T) {
	t.Parallel()
	engine, store := setupEngine(t)

	store.addUser(2)

	affected, err := engine.HandleVote(t.Context(), 2, 999, enum.VoteTypeUpvote, nil)
	require.NoError(t, err)
	assert.Empty(t, affected)
}

func TestHandleVoteMissingAuthorIsNoop(t *testing.T) {
	t.Parallel()
	engine, store := setupEngine(t)

	// Prompt exists but its author row is gone
	store.addUser(2)
	store.addPrompt(10, 1, enum.PromptStatusApproved, nil)

	affected, err := engine.HandleVote(t.Context(), 2, 10, enum.VoteTypeUpvote, nil)
	require.NoError(t, err)
	assert.Empty(t, affected)
}

func TestHandleVoteMissingAuthorSkipsVoterCost(t *testing.T) {
	t.Parallel()
	engine, store := setupEngine(t)

	// A downvote against an orphaned prompt must not cost the voter:
	// nothing was debited from the author, so nothing is debited here
	store.addUser(2)
	store.addPrompt(10, 1, enum.PromptStatusApproved, nil)

	affected, err := engine.HandleVote(t.Context(), 2, 10, enum.VoteTypeDownvote, nil)
	require.NoError(t, err)

	assert.Empty(t, affected)
	assert.Equal(t, int64(0), store.reputationOf(2))
	assert.Zero(t, store.eventCount(2))
}

func TestHandleVoteRemovalMissingAuthorSkipsRefund(t *testing.T) {
	t.Parallel()
	engine, store := setupEngine(t)

	store.addUser(2)
	store.addPrompt(10, 1, enum.PromptStatusApproved, nil)

	affected, err := engine.HandleVoteRemoval(t.Context(), 2, 10, enum.VoteTypeDownvote)
	require.NoError(t, err)

	assert.Empty(t, affected)
	assert.Equal(t, int64(0), store.reputationOf(2))
	assert.Zero(t, store.eventCount(2))
}

func TestHandleVoteRemoval(t *testing.T) {
	t.Parallel()
	engine, store := setupEngine(t)

	store.addUser(1)
	store.addUser(2)
	store.addPrompt(10, 1, enum.PromptStatusApproved, nil)

	ctx := t.Context()

	_, err := engine.HandleVote(ctx, 2, 10, enum.VoteTypeDownvote, nil)
	require.NoError(t, err)

	_, err = engine.HandleVoteRemoval(ctx, 2, 10, enum.VoteTypeDownvote)
	require.NoError(t, err)

	// Both parties are back to zero and the ledger records every step
	assert.Equal(t, int64(0), store.reputationOf(1))
	assert.Equal(t, int64(0), store.reputationOf(2))
	assert.Equal(t, 2, store.eventCount(1))
	assert.Equal(t, 2, store.eventCount(2))
}

func TestHandleReviewApprove(t *testing.T) {
	t.Parallel()
	engine, store := setupEngine(t)

	store.addUser(1)
	store.addUser(3)
	store.addPrompt(10, 1, enum.PromptStatusPendingReview, nil)

	affected, err := engine.HandleReview(t.Context(), 3, 10, enum.ReviewVoteApprove)
	require.NoError(t, err)

	// First approval pays the approve bonus plus the one-time bonus
	assert.Equal(t, int64(65), store.reputationOf(1))
	assert.Equal(t, []uint64{1}, affected)
}

func TestHandleReviewSecondApprovalNoBonus(t *testing.T) {
	t.Parallel()
	engine, store := setupEngine(t)

	store.addUser(1)
	store.addUser(3)
	store.addPrompt(10, 1, enum.PromptStatusPendingReview, nil)
	store.addPrompt(11, 1, enum.PromptStatusPendingReview, nil)

	ctx := t.Context()

	_, err := engine.HandleReview(ctx, 3, 10, enum.ReviewVoteApprove)
	require.NoError(t, err)

	_, err = engine.HandleReview(ctx, 3, 11, enum.ReviewVoteApprove)
	require.NoError(t, err)

	// 15 + 50 for the first, 15 for the second
	assert.Equal(t, int64(80), store.reputationOf(1))
}

func TestHandleReviewReject(t *testing.T) {
	t.Parallel()
	engine, store := setupEngine(t)

	store.addUser(1)
	store.addUser(3)
	store.addPrompt(10, 1, enum.PromptStatusPendingReview, nil)

	_, err := engine.HandleReview(t.Context(), 3, 10, enum.ReviewVoteReject)
	require.NoError(t, err)

	assert.Equal(t, int64(-5), store.reputationOf(1))

	prompt, err := store.GetPrompt(t.Context(), 10)
	require.NoError(t, err)
	assert.Equal(t, enum.PromptStatusRejected, prompt.Status)
}

func TestHandleReviewNonPendingIsNoop(t *testing.T) {
	t.Parallel()
	engine, store := setupEngine(t)

	store.addUser(1)
	store.addUser(3)
	store.addPrompt(10, 1, enum.PromptStatusApproved, nil)

	affected, err := engine.HandleReview(t.Context(), 3, 10, enum.ReviewVoteApprove)
	require.NoError(t, err)
	assert.Empty(t, affected)
	assert.Equal(t, int64(0), store.reputationOf(1))
}

func TestHandleReviewForkBonus(t *testing.T) {
	t.Parallel()
	engine, store := setupEngine(t)

	store.addUser(1)
	store.addUser(2)
	store.addUser(3)
	store.addPrompt(10, 1, enum.PromptStatusApproved, nil)

	parentID := uint64(10)
	store.addPrompt(11, 2, enum.PromptStatusPendingReview, &parentID)

	affected, err := engine.HandleReview(t.Context(), 3, 11, enum.ReviewVoteApprove)
	require.NoError(t, err)

	// Fork author gets the approval payout, the original author the bonus
	assert.Equal(t, int64(65), store.reputationOf(2))
	assert.Equal(t, int64(5), store.reputationOf(1))
	assert.ElementsMatch(t, []uint64{1, 2}, affected)
}

func TestHandleReviewForkWithMissingParent(t *testing.T) {
	t.Parallel()
	engine, store := setupEngine(t)

	store.addUser(2)
	store.addUser(3)

	parentID := uint64(999)
	store.addPrompt(11, 2, enum.PromptStatusPendingReview, &parentID)

	affected, err := engine.HandleReview(t.Context(), 3, 11, enum.ReviewVoteApprove)
	require.NoError(t, err)

	assert.Equal(t, int64(65), store.reputationOf(2))
	assert.Equal(t, []uint64{2}, affected)
}

func TestHandleCommentUpvote(t *testing.T) {
	t.Parallel()
	engine, store := setupEngine(t)

	store.addUser(1)

	affected, err := engine.HandleCommentUpvote(t.Context(), 1, 42)
	require.NoError(t, err)

	assert.Equal(t, int64(2), store.reputationOf(1))
	assert.Equal(t, []uint64{1}, affected)
}

func TestRecordAccurateReview(t *testing.T) {
	t.Parallel()
	engine, store := setupEngine(t)

	store.addUser(3)

	affected, err := engine.RecordAccurateReview(t.Context(), 3, 10)
	require.NoError(t, err)

	assert.Equal(t, int64(5), store.reputationOf(3))
	assert.Equal(t, []uint64{3}, affected)
}

func TestFirstApprovalBonusPaidOnce(t *testing.T) {
	t.Parallel()
	engine, store := setupEngine(t)

	store.addUser(1)
	store.addUser(3)

	// Many pending prompts approved concurrently; the bonus must land
	// exactly once regardless of interleaving
	const prompts = 16
	for i := range uint64(prompts) {
		store.addPrompt(100+i, 1, enum.PromptStatusPendingReview, nil)
	}

	ctx := context.Background()

	var wg conc.WaitGroup
	for i := range uint64(prompts) {
		promptID := 100 + i

		wg.Go(func() {
			_, err := engine.HandleReview(ctx, 3, promptID, enum.ReviewVoteApprove)
			assert.NoError(t, err)
		})
	}
	wg.Wait()

	expected := int64(prompts*reputation.ReviewApprovePoints + reputation.FirstApprovalPoints)
	assert.Equal(t, expected, store.reputationOf(1))
}

func TestCachedTotalMatchesLedgerSum(t *testing.T) {
	t.Parallel()
	engine, store := setupEngine(t)

	store.addUser(1)
	store.addUser(2)
	store.addUser(3)
	store.addPrompt(10, 1, enum.PromptStatusPendingReview, nil)

	ctx := t.Context()

	_, err := engine.HandleReview(ctx, 3, 10, enum.ReviewVoteApprove)
	require.NoError(t, err)

	_, err = engine.HandleVote(ctx, 2, 10, enum.VoteTypeUpvote, nil)
	require.NoError(t, err)

	previous := enum.VoteTypeUpvote
	_, err = engine.HandleVote(ctx, 2, 10, enum.VoteTypeDownvote, &previous)
	require.NoError(t, err)

	_, err = engine.HandleCommentUpvote(ctx, 1, 42)
	require.NoError(t, err)

	for _, userID := range []uint64{1, 2, 3} {
		assert.Equal(t, store.ledgerSum(userID), store.reputationOf(userID),
			"cached total must equal ledger sum for user %d", userID)
	}
}
