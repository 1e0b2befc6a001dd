package service

import (
	"context"
	"errors"

	"github.com/promptforge/promptforge/internal/database/types"
	"github.com/promptforge/promptforge/internal/database/types/enum"
	"go.uber.org/zap"
)

// VoteStore is the persistence surface the vote service depends on. Both
// methods are atomic: UpsertVote reports the replaced vote type from
// inside the write transaction and DeleteVote reports the deleted type
// from the DELETE itself, so prior state is never read separately from
// the write that consumes it.
type VoteStore interface {
	UpsertVote(ctx context.Context, vote *types.PromptVote) (*enum.VoteType, error)
	DeleteVote(ctx context.Context, promptID, userID uint64) (*enum.VoteType, error)
}

// VoteProcessor applies the reputation effects of vote transitions.
type VoteProcessor interface {
	ProcessVote(ctx context.Context, voterID, promptID uint64, vote enum.VoteType, previous *enum.VoteType) error
	ProcessVoteRemoval(ctx context.Context, voterID, promptID uint64, previous enum.VoteType) error
}

// VoteService coordinates vote persistence with the reputation engine.
type VoteService struct {
	votes      VoteStore
	reputation VoteProcessor
	logger     *zap.Logger
}

// NewVote creates a new vote service.
func NewVote(votes VoteStore, reputation VoteProcessor, logger *zap.Logger) *VoteService {
	return &VoteService{
		votes:      votes,
		reputation: reputation,
		logger:     logger.Named("vote_service"),
	}
}

// CastVote records a user's vote on a prompt and applies the reputation
// effects. Recasting the same vote type is a no-op; changing the vote
// replaces the prior row and nets the difference in reputation. The
// prior vote comes out of the upsert transaction itself, so two racing
// casts resolve to exactly one applied transition.
func (s *VoteService) CastVote(
	ctx context.Context, userID, promptID uint64, voteType enum.VoteType,
) error {
	previous, err := s.votes.UpsertVote(ctx, &types.PromptVote{
		PromptID: promptID,
		UserID:   userID,
		Type:     voteType,
	})
	if err != nil {
		return err
	}

	if previous != nil && *previous == voteType {
		return nil
	}

	return s.reputation.ProcessVote(ctx, userID, promptID, voteType, previous)
}

// RemoveVote retracts a user's vote from a prompt. Removing a vote that
// does not exist is a no-op, and because the delete itself reports the
// removed type, two racing removals refund at most once.
func (s *VoteService) RemoveVote(ctx context.Context, userID, promptID uint64) error {
	previous, err := s.votes.DeleteVote(ctx, promptID, userID)
	if err != nil {
		if errors.Is(err, types.ErrVoteNotFound) {
			return nil
		}

		return err
	}

	return s.reputation.ProcessVoteRemoval(ctx, userID, promptID, *previous)
}
