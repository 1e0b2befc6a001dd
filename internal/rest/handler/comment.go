package handler

import (
	"errors"
	"net/http"

	"github.com/promptforge/promptforge/internal/database"
	"github.com/promptforge/promptforge/internal/database/types"
	"github.com/promptforge/promptforge/internal/permission"
	"github.com/promptforge/promptforge/internal/rest/middleware/auth"
	restTypes "github.com/promptforge/promptforge/internal/rest/types"
	"github.com/uptrace/bunrouter"
	"go.uber.org/zap"
)

// CommentHandler handles comment REST endpoints.
type CommentHandler struct {
	db     database.Client
	logger *zap.Logger
}

// NewCommentHandler creates a new comment handler.
func NewCommentHandler(db database.Client, logger *zap.Logger) *CommentHandler {
	return &CommentHandler{
		db:     db,
		logger: logger,
	}
}

// AddComment posts a comment on a prompt. Commenting is gated behind the
// comment reputation threshold.
func (h *CommentHandler) AddComment(w http.ResponseWriter, req bunrouter.Request) error {
	user, ok := auth.FromContext(req.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return nil
	}

	if !permission.CanComment(user.Reputation) {
		forbidden(w, "Insufficient reputation to comment")
		return nil
	}

	promptID, err := paramID(req, "id")
	if err != nil {
		badRequest(w, "Invalid prompt ID")
		return nil
	}

	var body restTypes.AddCommentRequest
	if err := decodeBody(req, &body); err != nil || body.Message == "" {
		badRequest(w, "Message is required")
		return nil
	}

	comment := &types.Comment{
		PromptID: promptID,
		AuthorID: user.ID,
		Message:  body.Message,
	}

	if err := h.db.Service().Comment().AddComment(req.Context(), comment); err != nil {
		h.logger.Error("Failed to add comment", zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)

		return nil
	}

	w.WriteHeader(http.StatusCreated)

	return bunrouter.JSON(w, comment)
}

// ListComments returns the comments on a prompt.
func (h *CommentHandler) ListComments(w http.ResponseWriter, req bunrouter.Request) error {
	promptID, err := paramID(req, "id")
	if err != nil {
		badRequest(w, "Invalid prompt ID")
		return nil
	}

	comments, err := h.db.Model().Comment().GetPromptComments(req.Context(), promptID)
	if err != nil {
		h.logger.Error("Failed to list comments", zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)

		return nil
	}

	return bunrouter.JSON(w, restTypes.ListCommentsResponse{Comments: comments})
}

// UpvoteComment records the acting user's upvote on a comment. Comment
// upvotes share the upvote reputation threshold, and repeats are no-ops.
func (h *CommentHandler) UpvoteComment(w http.ResponseWriter, req bunrouter.Request) error {
	user, ok := auth.FromContext(req.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return nil
	}

	if !permission.CanUpvote(user.Reputation) {
		forbidden(w, "Insufficient reputation to upvote")
		return nil
	}

	commentID, err := paramID(req, "id")
	if err != nil {
		badRequest(w, "Invalid comment ID")
		return nil
	}

	err = h.db.Service().Comment().UpvoteComment(req.Context(), commentID, user.ID)
	if err != nil {
		if errors.Is(err, types.ErrCommentNotFound) {
			http.Error(w, "Comment not found", http.StatusNotFound)
			return nil
		}

		h.logger.Error("Failed to upvote comment", zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)

		return nil
	}

	w.WriteHeader(http.StatusNoContent)

	return nil
}
