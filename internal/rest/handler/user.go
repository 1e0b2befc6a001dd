package handler

import (
	"errors"
	"net/http"

	"github.com/promptforge/promptforge/internal/database"
	"github.com/promptforge/promptforge/internal/database/types"
	restTypes "github.com/promptforge/promptforge/internal/rest/types"
	"github.com/uptrace/bunrouter"
	"go.uber.org/zap"
)

// UserHandler handles user-related REST endpoints.
type UserHandler struct {
	db     database.Client
	logger *zap.Logger
}

// NewUserHandler creates a new user handler.
func NewUserHandler(db database.Client, logger *zap.Logger) *UserHandler {
	return &UserHandler{
		db:     db,
		logger: logger,
	}
}

// CreateUser registers a new member with zero reputation.
func (h *UserHandler) CreateUser(w http.ResponseWriter, req bunrouter.Request) error {
	var body restTypes.CreateUserRequest
	if err := decodeBody(req, &body); err != nil || body.Username == "" {
		badRequest(w, "Username is required")
		return nil
	}

	user, err := h.db.Model().User().CreateUser(req.Context(), body.Username)
	if err != nil {
		h.logger.Error("Failed to create user", zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)

		return nil
	}

	w.WriteHeader(http.StatusCreated)

	return bunrouter.JSON(w, user)
}

// GetUser returns a member with their badges. The ID parameter accepts
// either the numeric ID or the public UUID.
func (h *UserHandler) GetUser(w http.ResponseWriter, req bunrouter.Request) error {
	user, err := h.db.Model().User().GetUserByRef(req.Context(), req.Param("id"))
	if err != nil {
		if errors.Is(err, types.ErrUserNotFound) || errors.Is(err, types.ErrInvalidUserID) {
			http.Error(w, "User not found", http.StatusNotFound)
			return nil
		}

		h.logger.Error("Failed to get user", zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)

		return nil
	}

	held, err := h.db.Model().Badge().GetUserBadges(req.Context(), user.ID)
	if err != nil {
		h.logger.Error("Failed to get user badges", zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)

		return nil
	}

	catalog, err := h.db.Model().Badge().GetBadges(req.Context())
	if err != nil {
		h.logger.Error("Failed to get badge catalog", zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)

		return nil
	}

	byID := make(map[uint64]*types.Badge, len(catalog))
	for _, badge := range catalog {
		byID[badge.ID] = badge
	}

	badges := make([]restTypes.UserBadge, 0, len(held))

	for _, userBadge := range held {
		badge, ok := byID[userBadge.BadgeID]
		if !ok {
			continue
		}

		badges = append(badges, restTypes.UserBadge{
			Badge:     badge,
			AwardedAt: userBadge.AwardedAt,
		})
	}

	return bunrouter.JSON(w, restTypes.GetUserResponse{
		User:   user,
		Badges: badges,
	})
}

// GetReputation returns a member's ledger history and cached total.
func (h *UserHandler) GetReputation(w http.ResponseWriter, req bunrouter.Request) error {
	user, err := h.db.Model().User().GetUserByRef(req.Context(), req.Param("id"))
	if err != nil {
		if errors.Is(err, types.ErrUserNotFound) || errors.Is(err, types.ErrInvalidUserID) {
			http.Error(w, "User not found", http.StatusNotFound)
			return nil
		}

		h.logger.Error("Failed to get user", zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)

		return nil
	}

	events, err := h.db.Model().Reputation().GetUserEvents(req.Context(), user.ID)
	if err != nil {
		h.logger.Error("Failed to get reputation events", zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)

		return nil
	}

	return bunrouter.JSON(w, restTypes.GetReputationResponse{
		UserID:     user.ID,
		Reputation: user.Reputation,
		Events:     events,
	})
}

// ListBadges returns the badge catalog.
func (h *UserHandler) ListBadges(w http.ResponseWriter, req bunrouter.Request) error {
	badges, err := h.db.Model().Badge().GetBadges(req.Context())
	if err != nil {
		h.logger.Error("Failed to get badge catalog", zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)

		return nil
	}

	return bunrouter.JSON(w, restTypes.ListBadgesResponse{Badges: badges})
}
