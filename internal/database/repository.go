package database

import (
	"github.com/promptforge/promptforge/internal/database/models"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// Repository provides access to all database models.
type Repository struct {
	user       *models.UserModel
	prompt     *models.PromptModel
	vote       *models.VoteModel
	review     *models.ReviewModel
	reputation *models.ReputationModel
	badge      *models.BadgeModel
	technique  *models.TechniqueModel
	comment    *models.CommentModel
}

// NewRepository creates a new repository instance with all models.
func NewRepository(db *bun.DB, logger *zap.Logger) *Repository {
	return &Repository{
		user:       models.NewUser(db, logger),
		prompt:     models.NewPrompt(db, logger),
		vote:       models.NewVote(db, logger),
		review:     models.NewReview(db, logger),
		reputation: models.NewReputation(db, logger),
		badge:      models.NewBadge(db, logger),
		technique:  models.NewTechnique(db, logger),
		comment:    models.NewComment(db, logger),
	}
}

// User returns the user model repository.
func (r *Repository) User() *models.UserModel {
	return r.user
}

// Prompt returns the prompt model repository.
func (r *Repository) Prompt() *models.PromptModel {
	return r.prompt
}

// Vote returns the vote model repository.
func (r *Repository) Vote() *models.VoteModel {
	return r.vote
}

// Review returns the review model repository.
func (r *Repository) Review() *models.ReviewModel {
	return r.review
}

// Reputation returns the reputation ledger model repository.
func (r *Repository) Reputation() *models.ReputationModel {
	return r.reputation
}

// Badge returns the badge model repository.
func (r *Repository) Badge() *models.BadgeModel {
	return r.badge
}

// Technique returns the technique model repository.
func (r *Repository) Technique() *models.TechniqueModel {
	return r.technique
}

// Comment returns the comment model repository.
func (r *Repository) Comment() *models.CommentModel {
	return r.comment
}
