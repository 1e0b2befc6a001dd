package handler

import (
	"errors"
	"net/http"

	"github.com/promptforge/promptforge/internal/database"
	"github.com/promptforge/promptforge/internal/database/types"
	"github.com/promptforge/promptforge/internal/database/types/enum"
	"github.com/promptforge/promptforge/internal/permission"
	"github.com/promptforge/promptforge/internal/rest/middleware/auth"
	restTypes "github.com/promptforge/promptforge/internal/rest/types"
	"github.com/uptrace/bunrouter"
	"go.uber.org/zap"
)

// ReviewHandler handles prompt review REST endpoints.
type ReviewHandler struct {
	db     database.Client
	logger *zap.Logger
}

// NewReviewHandler creates a new review handler.
func NewReviewHandler(db database.Client, logger *zap.Logger) *ReviewHandler {
	return &ReviewHandler{
		db:     db,
		logger: logger,
	}
}

// SubmitReview records the acting user's verdict on a pending prompt.
// Reviewing is gated behind the review reputation threshold, and authors
// cannot review their own prompts.
func (h *ReviewHandler) SubmitReview(w http.ResponseWriter, req bunrouter.Request) error {
	user, ok := auth.FromContext(req.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return nil
	}

	if !permission.CanReview(user.Reputation) {
		forbidden(w, "Insufficient reputation to review")
		return nil
	}

	promptID, err := paramID(req, "id")
	if err != nil {
		badRequest(w, "Invalid prompt ID")
		return nil
	}

	var body restTypes.SubmitReviewRequest
	if err := decodeBody(req, &body); err != nil {
		badRequest(w, "Invalid request body")
		return nil
	}

	verdict, err := enum.ReviewVoteString(body.Vote)
	if err != nil {
		badRequest(w, "Invalid review vote")
		return nil
	}

	prompt, err := h.db.Model().Prompt().GetPrompt(req.Context(), promptID)
	if err != nil {
		if errors.Is(err, types.ErrPromptNotFound) {
			http.Error(w, "Prompt not found", http.StatusNotFound)
			return nil
		}

		h.logger.Error("Failed to get prompt", zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)

		return nil
	}

	if prompt.AuthorID == user.ID {
		forbidden(w, "Authors cannot review their own prompts")
		return nil
	}

	err = h.db.Service().Review().SubmitReview(req.Context(), user.ID, promptID, verdict, body.Comment)
	if err != nil {
		if errors.Is(err, types.ErrPromptNotPending) {
			http.Error(w, "Prompt is not pending review", http.StatusConflict)
			return nil
		}

		h.logger.Error("Failed to submit review", zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)

		return nil
	}

	w.WriteHeader(http.StatusNoContent)

	return nil
}

// ListReviews returns the review history of a prompt.
func (h *ReviewHandler) ListReviews(w http.ResponseWriter, req bunrouter.Request) error {
	promptID, err := paramID(req, "id")
	if err != nil {
		badRequest(w, "Invalid prompt ID")
		return nil
	}

	reviews, err := h.db.Model().Review().GetPromptReviews(req.Context(), promptID)
	if err != nil {
		h.logger.Error("Failed to list reviews", zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)

		return nil
	}

	return bunrouter.JSON(w, restTypes.ListReviewsResponse{Reviews: reviews})
}
