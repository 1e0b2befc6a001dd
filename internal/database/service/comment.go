package service

import (
	"context"

	"github.com/promptforge/promptforge/internal/database/models"
	"github.com/promptforge/promptforge/internal/database/types"
	"go.uber.org/zap"
)

// CommentService handles comment-related business logic.
type CommentService struct {
	comments   *models.CommentModel
	reputation *ReputationService
	logger     *zap.Logger
}

// NewComment creates a new comment service.
func NewComment(comments *models.CommentModel, reputation *ReputationService, logger *zap.Logger) *CommentService {
	return &CommentService{
		comments:   comments,
		reputation: reputation,
		logger:     logger.Named("comment_service"),
	}
}

// AddComment posts a comment on a prompt.
func (s *CommentService) AddComment(ctx context.Context, comment *types.Comment) error {
	return s.comments.CreateComment(ctx, comment)
}

// UpvoteComment records an upvote on a comment and credits the comment
// author. Repeat upvotes by the same user are no-ops.
func (s *CommentService) UpvoteComment(ctx context.Context, commentID, userID uint64) error {
	comment, err := s.comments.GetComment(ctx, commentID)
	if err != nil {
		return err
	}

	added, err := s.comments.UpvoteComment(ctx, commentID, userID)
	if err != nil {
		return err
	}

	if !added {
		return nil
	}

	return s.reputation.ProcessCommentUpvote(ctx, comment.AuthorID, commentID)
}
