// Package reputation translates domain events into signed point deltas
// and appends them to the ledger. Every rule lives here; the persistence
// layer only applies what the engine decides.
package reputation

import (
	"context"
	"errors"
	"fmt"

	"github.com/promptforge/promptforge/internal/database/types"
	"github.com/promptforge/promptforge/internal/database/types/enum"
	"go.uber.org/zap"
)

// Points awarded or deducted per rule.
const (
	PromptUpvotePoints    = 10
	PromptDownvotePoints  = -2
	DownvoteCastPoints    = -1
	DownvoteRemovedPoints = 1
	ReviewApprovePoints   = 15
	ReviewRejectPoints    = -5
	AccurateReviewPoints  = 5
	FirstApprovalPoints   = 50
	CommentUpvotePoints   = 2
	ForkApprovedPoints    = 5
)

// Store is the narrow persistence surface the engine depends on.
// Append must insert the events and bump the user's cached total in one
// transaction; ApprovePrompt must return the author's approved count as
// read after the status transition, inside the same transaction.
type Store interface {
	GetPrompt(ctx context.Context, promptID uint64) (*types.Prompt, error)
	Append(ctx context.Context, userID uint64, events []*types.ReputationEvent) error
	ApprovePrompt(ctx context.Context, promptID uint64) (int, error)
	RejectPrompt(ctx context.Context, promptID uint64) error
}

// Engine applies the reputation rules.
type Engine struct {
	store  Store
	logger *zap.Logger
}

// NewEngine creates a new reputation engine.
func NewEngine(store Store, logger *zap.Logger) *Engine {
	return &Engine{
		store:  store,
		logger: logger.Named("reputation_engine"),
	}
}

// HandleVote processes a cast or changed vote on a prompt. When previous
// is set, the prior vote's effect is reversed before the new vote is
// applied, so a change nets the difference between the two deltas.
// Recasting the same vote type is a no-op. Returns the IDs of users whose
// reputation changed.
func (e *Engine) HandleVote(
	ctx context.Context, voterID, promptID uint64, vote enum.VoteType, previous *enum.VoteType,
) ([]uint64, error) {
	if previous != nil && *previous == vote {
		return nil, nil
	}

	prompt, err := e.store.GetPrompt(ctx, promptID)
	if err != nil {
		if errors.Is(err, types.ErrPromptNotFound) {
			e.logger.Warn("Vote on missing prompt ignored",
				zap.Uint64("promptID", promptID),
				zap.Uint64("voterID", voterID))
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get prompt: %w", err)
	}

	var authorEvents []*types.ReputationEvent
	if previous != nil {
		authorEvents = append(authorEvents, reversalEvent(*previous, promptID))
	}
	authorEvents = append(authorEvents, voteEvent(vote, promptID))

	affected, err := e.append(ctx, prompt.AuthorID, authorEvents)
	if err != nil {
		return nil, err
	}

	// No author row means nothing was credited; do not charge the voter
	// for a vote that had no effect.
	if len(affected) == 0 {
		return nil, nil
	}

	voterEvents := voterCostEvents(vote, previous, promptID)
	voterAffected, err := e.append(ctx, voterID, voterEvents)
	if err != nil {
		return affected, err
	}

	return append(affected, voterAffected...), nil
}

// HandleVoteRemoval processes a retracted vote: the prior delta is
// reversed and any downvote cost refunded.
func (e *Engine) HandleVoteRemoval(
	ctx context.Context, voterID, promptID uint64, previous enum.VoteType,
) ([]uint64, error) {
	prompt, err := e.store.GetPrompt(ctx, promptID)
	if err != nil {
		if errors.Is(err, types.ErrPromptNotFound) {
			e.logger.Warn("Vote removal on missing prompt ignored",
				zap.Uint64("promptID", promptID),
				zap.Uint64("voterID", voterID))
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get prompt: %w", err)
	}

	affected, err := e.append(ctx, prompt.AuthorID, []*types.ReputationEvent{reversalEvent(previous, promptID)})
	if err != nil {
		return nil, err
	}

	// Same rule as HandleVote: a vanished author means no reversal was
	// applied, so there is nothing to refund the voter for.
	if len(affected) == 0 {
		return nil, nil
	}

	if previous == enum.VoteTypeDownvote {
		voterAffected, err := e.append(ctx, voterID, []*types.ReputationEvent{{
			Type:      enum.ReputationEventTypeDownvoteRemoved,
			Change:    DownvoteRemovedPoints,
			ContentID: &promptID,
		}})
		if err != nil {
			return affected, err
		}

		affected = append(affected, voterAffected...)
	}

	return affected, nil
}

// HandleReview processes a reviewer's verdict on a pending prompt. An
// approval pays the author the approve bonus, the first-approval bonus
// when this is their first approved prompt, and the fork bonus to the
// original author when the prompt is a fork.
func (e *Engine) HandleReview(
	ctx context.Context, reviewerID, promptID uint64, verdict enum.ReviewVote,
) ([]uint64, error) {
	prompt, err := e.store.GetPrompt(ctx, promptID)
	if err != nil {
		if errors.Is(err, types.ErrPromptNotFound) {
			e.logger.Warn("Review of missing prompt ignored",
				zap.Uint64("promptID", promptID),
				zap.Uint64("reviewerID", reviewerID))
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get prompt: %w", err)
	}

	if verdict == enum.ReviewVoteReject {
		err := e.store.RejectPrompt(ctx, promptID)
		if err != nil {
			if errors.Is(err, types.ErrPromptNotPending) {
				e.logger.Warn("Review of non-pending prompt ignored",
					zap.Uint64("promptID", promptID),
					zap.String("status", prompt.Status.String()))
				return nil, nil
			}
			return nil, fmt.Errorf("failed to reject prompt: %w", err)
		}

		return e.append(ctx, prompt.AuthorID, []*types.ReputationEvent{{
			Type:      enum.ReputationEventTypeReviewRejected,
			Change:    ReviewRejectPoints,
			ContentID: &promptID,
		}})
	}

	approvedCount, err := e.store.ApprovePrompt(ctx, promptID)
	if err != nil {
		if errors.Is(err, types.ErrPromptNotPending) {
			e.logger.Warn("Review of non-pending prompt ignored",
				zap.Uint64("promptID", promptID),
				zap.String("status", prompt.Status.String()))
			return nil, nil
		}
		return nil, fmt.Errorf("failed to approve prompt: %w", err)
	}

	authorEvents := []*types.ReputationEvent{{
		Type:      enum.ReputationEventTypeReviewApproved,
		Change:    ReviewApprovePoints,
		ContentID: &promptID,
	}}

	// The count is read after the status transition within the approval
	// transaction, so exactly one concurrent approval observes count == 1.
	if approvedCount == 1 {
		authorEvents = append(authorEvents, &types.ReputationEvent{
			Type:      enum.ReputationEventTypeFirstApproval,
			Change:    FirstApprovalPoints,
			ContentID: &promptID,
		})
	}

	affected, err := e.append(ctx, prompt.AuthorID, authorEvents)
	if err != nil {
		return nil, err
	}

	if prompt.ParentID != nil {
		forkAffected, err := e.payForkBonus(ctx, prompt, *prompt.ParentID)
		if err != nil {
			return affected, err
		}

		affected = append(affected, forkAffected...)
	}

	return affected, nil
}

// HandleCommentUpvote credits a comment author for an upvote. The caller
// must only invoke this when the vote row was newly inserted.
func (e *Engine) HandleCommentUpvote(ctx context.Context, authorID, commentID uint64) ([]uint64, error) {
	return e.append(ctx, authorID, []*types.ReputationEvent{{
		Type:      enum.ReputationEventTypeCommentUpvoted,
		Change:    CommentUpvotePoints,
		ContentID: &commentID,
	}})
}

// RecordAccurateReview credits a reviewer whose verdict matched the final
// outcome of a prompt. Nothing in the request path computes consensus
// yet, so this rule currently has no caller.
func (e *Engine) RecordAccurateReview(ctx context.Context, reviewerID, promptID uint64) ([]uint64, error) {
	return e.append(ctx, reviewerID, []*types.ReputationEvent{{
		Type:      enum.ReputationEventTypeAccurateReview,
		Change:    AccurateReviewPoints,
		ContentID: &promptID,
	}})
}

// payForkBonus credits the original author when a fork is approved.
// A missing parent prompt is skipped silently.
func (e *Engine) payForkBonus(ctx context.Context, fork *types.Prompt, parentID uint64) ([]uint64, error) {
	parent, err := e.store.GetPrompt(ctx, parentID)
	if err != nil {
		if errors.Is(err, types.ErrPromptNotFound) {
			e.logger.Warn("Fork bonus skipped, parent prompt missing",
				zap.Uint64("forkID", fork.ID),
				zap.Uint64("parentID", parentID))
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get parent prompt: %w", err)
	}

	return e.append(ctx, parent.AuthorID, []*types.ReputationEvent{{
		Type:      enum.ReputationEventTypeForkApproved,
		Change:    ForkApprovedPoints,
		ContentID: &fork.ID,
	}})
}

// append writes events for one user. A missing user is logged and
// swallowed so reputation never lands on an orphaned account.
func (e *Engine) append(ctx context.Context, userID uint64, events []*types.ReputationEvent) ([]uint64, error) {
	if len(events) == 0 {
		return nil, nil
	}

	err := e.store.Append(ctx, userID, events)
	if err != nil {
		if errors.Is(err, types.ErrUserNotFound) {
			e.logger.Warn("Reputation events for missing user ignored",
				zap.Uint64("userID", userID),
				zap.Int("events", len(events)))
			return nil, nil
		}
		return nil, fmt.Errorf("failed to append reputation events: %w", err)
	}

	return []uint64{userID}, nil
}

// voteEvent returns the author-side event for a newly applied vote.
func voteEvent(vote enum.VoteType, promptID uint64) *types.ReputationEvent {
	if vote == enum.VoteTypeUpvote {
		return &types.ReputationEvent{
			Type:      enum.ReputationEventTypePromptUpvoted,
			Change:    PromptUpvotePoints,
			ContentID: &promptID,
		}
	}

	return &types.ReputationEvent{
		Type:      enum.ReputationEventTypePromptDownvoted,
		Change:    PromptDownvotePoints,
		ContentID: &promptID,
	}
}

// reversalEvent returns the author-side event undoing a prior vote.
func reversalEvent(previous enum.VoteType, promptID uint64) *types.ReputationEvent {
	if previous == enum.VoteTypeUpvote {
		return &types.ReputationEvent{
			Type:      enum.ReputationEventTypeUpvoteReversed,
			Change:    -PromptUpvotePoints,
			ContentID: &promptID,
		}
	}

	return &types.ReputationEvent{
		Type:      enum.ReputationEventTypeDownvoteReversed,
		Change:    -PromptDownvotePoints,
		ContentID: &promptID,
	}
}

// voterCostEvents returns the voter-side cost or refund for a transition.
// Downvoting costs a point; moving off a downvote refunds it.
func voterCostEvents(vote enum.VoteType, previous *enum.VoteType, promptID uint64) []*types.ReputationEvent {
	var events []*types.ReputationEvent

	if previous != nil && *previous == enum.VoteTypeDownvote {
		events = append(events, &types.ReputationEvent{
			Type:      enum.ReputationEventTypeDownvoteRemoved,
			Change:    DownvoteRemovedPoints,
			ContentID: &promptID,
		})
	}

	if vote == enum.VoteTypeDownvote {
		events = append(events, &types.ReputationEvent{
			Type:      enum.ReputationEventTypeDownvoteCast,
			Change:    DownvoteCastPoints,
			ContentID: &promptID,
		})
	}

	return events
}
