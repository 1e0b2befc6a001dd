package service

import (
	"context"
	"fmt"

	"github.com/promptforge/promptforge/internal/badge"
	"github.com/promptforge/promptforge/internal/database/models"
	"github.com/promptforge/promptforge/internal/database/types"
	"github.com/promptforge/promptforge/internal/database/types/enum"
	"github.com/promptforge/promptforge/internal/reputation"
	"go.uber.org/zap"
)

// engineStore adapts the database models to the reputation engine's
// narrow store interface.
type engineStore struct {
	prompts *models.PromptModel
	events  *models.ReputationModel
}

func (s *engineStore) GetPrompt(ctx context.Context, promptID uint64) (*types.Prompt, error) {
	return s.prompts.GetPrompt(ctx, promptID)
}

func (s *engineStore) Append(ctx context.Context, userID uint64, events []*types.ReputationEvent) error {
	return s.events.Append(ctx, userID, events)
}

func (s *engineStore) ApprovePrompt(ctx context.Context, promptID uint64) (int, error) {
	return s.prompts.ApprovePrompt(ctx, promptID)
}

func (s *engineStore) RejectPrompt(ctx context.Context, promptID uint64) error {
	return s.prompts.RejectPrompt(ctx, promptID)
}

// badgeStore adapts the database models to the badge evaluator's store.
type badgeStore struct {
	users      *models.UserModel
	prompts    *models.PromptModel
	badges     *models.BadgeModel
	techniques *models.TechniqueModel
}

func (s *badgeStore) GetBadges(ctx context.Context) ([]*types.Badge, error) {
	return s.badges.GetBadges(ctx)
}

func (s *badgeStore) GetUserBadges(ctx context.Context, userID uint64) ([]*types.UserBadge, error) {
	return s.badges.GetUserBadges(ctx, userID)
}

func (s *badgeStore) AwardBadge(ctx context.Context, userID, badgeID uint64) error {
	return s.badges.AwardBadge(ctx, userID, badgeID)
}

func (s *badgeStore) Snapshot(ctx context.Context, userID uint64) (*badge.Snapshot, error) {
	user, err := s.users.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	approved, err := s.prompts.CountApprovedByAuthor(ctx, userID)
	if err != nil {
		return nil, err
	}

	techniques, err := s.techniques.ApprovedTechniqueNames(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &badge.Snapshot{
		Reputation:          user.Reputation,
		ApprovedPromptCount: approved,
		ApprovedTechniques:  techniques,
	}, nil
}

// ReputationService runs the reputation engine and the badge evaluator
// for each reputation-affecting domain event.
type ReputationService struct {
	engine    *reputation.Engine
	evaluator *badge.Evaluator
	badges    *models.BadgeModel
	logger    *zap.Logger
}

// NewReputation creates a new reputation service.
func NewReputation(
	users *models.UserModel,
	prompts *models.PromptModel,
	events *models.ReputationModel,
	badges *models.BadgeModel,
	techniques *models.TechniqueModel,
	logger *zap.Logger,
) *ReputationService {
	return &ReputationService{
		engine: reputation.NewEngine(&engineStore{
			prompts: prompts,
			events:  events,
		}, logger),
		evaluator: badge.NewEvaluator(&badgeStore{
			users:      users,
			prompts:    prompts,
			badges:     badges,
			techniques: techniques,
		}, logger),
		badges: badges,
		logger: logger.Named("reputation_service"),
	}
}

// SyncBadgeCatalog seeds the static badge catalog. Called once at startup.
func (s *ReputationService) SyncBadgeCatalog(ctx context.Context) error {
	if err := s.badges.SyncCatalog(ctx, badge.Catalog()); err != nil {
		return fmt.Errorf("failed to seed badge catalog: %w", err)
	}

	return nil
}

// ProcessVote applies a cast or changed vote and re-evaluates badges for
// every affected user.
func (s *ReputationService) ProcessVote(
	ctx context.Context, voterID, promptID uint64, vote enum.VoteType, previous *enum.VoteType,
) error {
	affected, err := s.engine.HandleVote(ctx, voterID, promptID, vote, previous)
	if err != nil {
		return err
	}

	s.checkBadges(ctx, affected)

	return nil
}

// ProcessVoteRemoval applies a retracted vote.
func (s *ReputationService) ProcessVoteRemoval(
	ctx context.Context, voterID, promptID uint64, previous enum.VoteType,
) error {
	affected, err := s.engine.HandleVoteRemoval(ctx, voterID, promptID, previous)
	if err != nil {
		return err
	}

	s.checkBadges(ctx, affected)

	return nil
}

// ProcessReview applies a review verdict.
func (s *ReputationService) ProcessReview(
	ctx context.Context, reviewerID, promptID uint64, verdict enum.ReviewVote,
) error {
	affected, err := s.engine.HandleReview(ctx, reviewerID, promptID, verdict)
	if err != nil {
		return err
	}

	s.checkBadges(ctx, affected)

	return nil
}

// ProcessCommentUpvote credits a comment author for a new upvote.
func (s *ReputationService) ProcessCommentUpvote(ctx context.Context, authorID, commentID uint64) error {
	affected, err := s.engine.HandleCommentUpvote(ctx, authorID, commentID)
	if err != nil {
		return err
	}

	s.checkBadges(ctx, affected)

	return nil
}

// checkBadges re-evaluates badge conditions for the affected users.
// Evaluation failures are logged, never surfaced: re-running the
// evaluator later is always safe, so a miss here is recoverable.
func (s *ReputationService) checkBadges(ctx context.Context, userIDs []uint64) {
	seen := make(map[uint64]struct{}, len(userIDs))

	for _, userID := range userIDs {
		if _, ok := seen[userID]; ok {
			continue
		}
		seen[userID] = struct{}{}

		if err := s.evaluator.CheckUser(ctx, userID); err != nil {
			s.logger.Error("Badge evaluation failed",
				zap.Uint64("userID", userID),
				zap.Error(err))
		}
	}
}
