package service_test

import (
	"context"
	"sync"
	"testing"

	"github.com/promptforge/promptforge/internal/database/service"
	"github.com/promptforge/promptforge/internal/database/types"
	"github.com/promptforge/promptforge/internal/database/types/enum"
	"github.com/sourcegraph/conc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type voteKey struct {
	promptID uint64
	userID   uint64
}

// memoryVoteStore upserts and deletes under one lock, mirroring the
// transactional guarantees of the real store: the replaced or deleted
// vote type is decided atomically with the write.
type memoryVoteStore struct {
	mu    sync.Mutex
	votes map[voteKey]enum.VoteType
}

func newMemoryVoteStore() *memoryVoteStore {
	return &memoryVoteStore{votes: make(map[voteKey]enum.VoteType)}
}

func (s *memoryVoteStore) UpsertVote(_ context.Context, vote *types.PromptVote) (*enum.VoteType, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := voteKey{promptID: vote.PromptID, userID: vote.UserID}

	var previous *enum.VoteType

	if existing, ok := s.votes[key]; ok {
		previous = &existing
	}

	s.votes[key] = vote.Type

	return previous, nil
}

func (s *memoryVoteStore) DeleteVote(_ context.Context, promptID, userID uint64) (*enum.VoteType, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := voteKey{promptID: promptID, userID: userID}

	existing, ok := s.votes[key]
	if !ok {
		return nil, types.ErrVoteNotFound
	}

	delete(s.votes, key)

	return &existing, nil
}

type processedVote struct {
	voterID  uint64
	promptID uint64
	vote     enum.VoteType
	previous *enum.VoteType
}

type processedRemoval struct {
	voterID  uint64
	promptID uint64
	previous enum.VoteType
}

// recordingProcessor captures the transitions handed to the engine.
type recordingProcessor struct {
	mu       sync.Mutex
	votes    []processedVote
	removals []processedRemoval
}

func (p *recordingProcessor) ProcessVote(
	_ context.Context, voterID, promptID uint64, vote enum.VoteType, previous *enum.VoteType,
) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.votes = append(p.votes, processedVote{
		voterID:  voterID,
		promptID: promptID,
		vote:     vote,
		previous: previous,
	})

	return nil
}

func (p *recordingProcessor) ProcessVoteRemoval(
	_ context.Context, voterID, promptID uint64, previous enum.VoteType,
) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.removals = append(p.removals, processedRemoval{
		voterID:  voterID,
		promptID: promptID,
		previous: previous,
	})

	return nil
}

func setupVoteService(t *testing.T) (*service.VoteService, *memoryVoteStore, *recordingProcessor) {
	t.Helper()

	store := newMemoryVoteStore()
	processor := &recordingProcessor{}
	svc := service.NewVote(store, processor, zap.NewNop())

	return svc, store, processor
}

func TestCastVoteNew(t *testing.T) {
	t.Parallel()
	svc, _, processor := setupVoteService(t)

	err := svc.CastVote(t.Context(), 2, 10, enum.VoteTypeUpvote)
	require.NoError(t, err)

	require.Len(t, processor.votes, 1)
	assert.Equal(t, enum.VoteTypeUpvote, processor.votes[0].vote)
	assert.Nil(t, processor.votes[0].previous)
}

func TestCastVoteChangePassesPrevious(t *testing.T) {
	t.Parallel()
	svc, _, processor := setupVoteService(t)

	ctx := t.Context()

	require.NoError(t, svc.CastVote(ctx, 2, 10, enum.VoteTypeUpvote))
	require.NoError(t, svc.CastVote(ctx, 2, 10, enum.VoteTypeDownvote))

	require.Len(t, processor.votes, 2)
	assert.Equal(t, enum.VoteTypeDownvote, processor.votes[1].vote)
	require.NotNil(t, processor.votes[1].previous)
	assert.Equal(t, enum.VoteTypeUpvote, *processor.votes[1].previous)
}

func TestCastVoteSameTypeIsNoop(t *testing.T) {
	t.Parallel()
	svc, _, processor := setupVoteService(t)

	ctx := t.Context()

	require.NoError(t, svc.CastVote(ctx, 2, 10, enum.VoteTypeUpvote))
	require.NoError(t, svc.CastVote(ctx, 2, 10, enum.VoteTypeUpvote))

	assert.Len(t, processor.votes, 1)
}

func TestCastVoteConcurrentDuplicatesApplyOnce(t *testing.T) {
	t.Parallel()
	svc, _, processor := setupVoteService(t)

	// Many identical casts racing for the same (prompt, user) slot must
	// collapse to a single applied transition, however they interleave
	ctx := context.Background()

	var wg conc.WaitGroup
	for range 16 {
		wg.Go(func() {
			assert.NoError(t, svc.CastVote(ctx, 2, 10, enum.VoteTypeUpvote))
		})
	}
	wg.Wait()

	require.Len(t, processor.votes, 1)
	assert.Nil(t, processor.votes[0].previous)
}

func TestRemoveVote(t *testing.T) {
	t.Parallel()
	svc, store, processor := setupVoteService(t)

	ctx := t.Context()

	require.NoError(t, svc.CastVote(ctx, 2, 10, enum.VoteTypeDownvote))
	require.NoError(t, svc.RemoveVote(ctx, 2, 10))

	require.Len(t, processor.removals, 1)
	assert.Equal(t, enum.VoteTypeDownvote, processor.removals[0].previous)
	assert.Empty(t, store.votes)
}

func TestRemoveVoteMissingIsNoop(t *testing.T) {
	t.Parallel()
	svc, _, processor := setupVoteService(t)

	require.NoError(t, svc.RemoveVote(t.Context(), 2, 10))
	assert.Empty(t, processor.removals)
}

func TestRemoveVoteConcurrentRefundsOnce(t *testing.T) {
	t.Parallel()
	svc, _, processor := setupVoteService(t)

	ctx := context.Background()

	require.NoError(t, svc.CastVote(ctx, 2, 10, enum.VoteTypeDownvote))

	var wg conc.WaitGroup
	for range 8 {
		wg.Go(func() {
			assert.NoError(t, svc.RemoveVote(ctx, 2, 10))
		})
	}
	wg.Wait()

	assert.Len(t, processor.removals, 1)
}
