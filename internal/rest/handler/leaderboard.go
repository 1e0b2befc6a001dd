package handler

import (
	"net/http"
	"strconv"

	"github.com/promptforge/promptforge/internal/leaderboard"
	restTypes "github.com/promptforge/promptforge/internal/rest/types"
	"github.com/uptrace/bunrouter"
	"go.uber.org/zap"
)

// LeaderboardHandler serves the cached reputation ranking.
type LeaderboardHandler struct {
	cache  *leaderboard.Cache
	logger *zap.Logger
}

// NewLeaderboardHandler creates a new leaderboard handler.
func NewLeaderboardHandler(cache *leaderboard.Cache, logger *zap.Logger) *LeaderboardHandler {
	return &LeaderboardHandler{
		cache:  cache,
		logger: logger,
	}
}

// GetLeaderboard returns the top users by reputation. The optional limit
// query parameter caps the number of entries.
func (h *LeaderboardHandler) GetLeaderboard(w http.ResponseWriter, req bunrouter.Request) error {
	limit := 0
	if raw := req.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			badRequest(w, "Invalid limit parameter")
			return nil
		}

		limit = parsed
	}

	entries, err := h.cache.Top(req.Context(), limit)
	if err != nil {
		h.logger.Error("Failed to read leaderboard", zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)

		return nil
	}

	return bunrouter.JSON(w, restTypes.LeaderboardResponse{Entries: entries})
}
