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

// VoteHandler handles prompt voting REST endpoints.
type VoteHandler struct {
	db     database.Client
	logger *zap.Logger
}

// NewVoteHandler creates a new vote handler.
func NewVoteHandler(db database.Client, logger *zap.Logger) *VoteHandler {
	return &VoteHandler{
		db:     db,
		logger: logger,
	}
}

// CastVote casts or changes the acting user's vote on a prompt. Upvoting
// and downvoting are gated behind separate reputation thresholds, checked
// against the caller's current total.
func (h *VoteHandler) CastVote(w http.ResponseWriter, req bunrouter.Request) error {
	user, ok := auth.FromContext(req.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return nil
	}

	promptID, err := paramID(req, "id")
	if err != nil {
		badRequest(w, "Invalid prompt ID")
		return nil
	}

	var body restTypes.CastVoteRequest
	if err := decodeBody(req, &body); err != nil {
		badRequest(w, "Invalid request body")
		return nil
	}

	voteType, err := enum.VoteTypeString(body.Type)
	if err != nil {
		badRequest(w, "Invalid vote type")
		return nil
	}

	switch voteType {
	case enum.VoteTypeUpvote:
		if !permission.CanUpvote(user.Reputation) {
			forbidden(w, "Insufficient reputation to upvote")
			return nil
		}
	case enum.VoteTypeDownvote:
		if !permission.CanDownvote(user.Reputation) {
			forbidden(w, "Insufficient reputation to downvote")
			return nil
		}
	}

	err = h.db.Service().Vote().CastVote(req.Context(), user.ID, promptID, voteType)
	if err != nil {
		if errors.Is(err, types.ErrPromptNotFound) {
			http.Error(w, "Prompt not found", http.StatusNotFound)
			return nil
		}

		h.logger.Error("Failed to cast vote", zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)

		return nil
	}

	w.WriteHeader(http.StatusNoContent)

	return nil
}

// RemoveVote retracts the acting user's vote from a prompt.
func (h *VoteHandler) RemoveVote(w http.ResponseWriter, req bunrouter.Request) error {
	user, ok := auth.FromContext(req.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return nil
	}

	promptID, err := paramID(req, "id")
	if err != nil {
		badRequest(w, "Invalid prompt ID")
		return nil
	}

	err = h.db.Service().Vote().RemoveVote(req.Context(), user.ID, promptID)
	if err != nil {
		h.logger.Error("Failed to remove vote", zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)

		return nil
	}

	w.WriteHeader(http.StatusNoContent)

	return nil
}
