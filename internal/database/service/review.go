package service

import (
	"context"

	"github.com/promptforge/promptforge/internal/database/models"
	"github.com/promptforge/promptforge/internal/database/types"
	"github.com/promptforge/promptforge/internal/database/types/enum"
	"go.uber.org/zap"
)

// ReviewService handles review-related business logic.
type ReviewService struct {
	reviews    *models.ReviewModel
	reputation *ReputationService
	logger     *zap.Logger
}

// NewReview creates a new review service.
func NewReview(reviews *models.ReviewModel, reputation *ReputationService, logger *zap.Logger) *ReviewService {
	return &ReviewService{
		reviews:    reviews,
		reputation: reputation,
		logger:     logger.Named("review_service"),
	}
}

// SubmitReview records a reviewer's verdict and applies the reputation
// effects: status transition, author bonus or penalty, first-approval
// bonus and fork bonus where applicable.
func (s *ReviewService) SubmitReview(
	ctx context.Context, reviewerID, promptID uint64, verdict enum.ReviewVote, comment string,
) error {
	err := s.reviews.CreateReview(ctx, &types.Review{
		PromptID:   promptID,
		ReviewerID: reviewerID,
		Vote:       verdict,
		Comment:    comment,
	})
	if err != nil {
		return err
	}

	return s.reputation.ProcessReview(ctx, reviewerID, promptID, verdict)
}
