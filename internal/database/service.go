package database

import (
	"github.com/promptforge/promptforge/internal/database/service"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// Service provides access to all business logic services.
type Service struct {
	reputation *service.ReputationService
	vote       *service.VoteService
	review     *service.ReviewService
	comment    *service.CommentService
}

// NewService creates a new service instance with all services.
func NewService(_ *bun.DB, repository *Repository, logger *zap.Logger) *Service {
	reputationService := service.NewReputation(
		repository.User(),
		repository.Prompt(),
		repository.Reputation(),
		repository.Badge(),
		repository.Technique(),
		logger,
	)

	return &Service{
		reputation: reputationService,
		vote:       service.NewVote(repository.Vote(), reputationService, logger),
		review:     service.NewReview(repository.Review(), reputationService, logger),
		comment:    service.NewComment(repository.Comment(), reputationService, logger),
	}
}

// Reputation returns the reputation service.
func (s *Service) Reputation() *service.ReputationService {
	return s.reputation
}

// Vote returns the vote service.
func (s *Service) Vote() *service.VoteService {
	return s.vote
}

// Review returns the review service.
func (s *Service) Review() *service.ReviewService {
	return s.review
}

// Comment returns the comment service.
func (s *Service) Comment() *service.CommentService {
	return s.comment
}
