// Package types defines the REST API request and response shapes.
package types

import (
	"time"

	"github.com/promptforge/promptforge/internal/database/types"
	"github.com/promptforge/promptforge/internal/leaderboard"
)

// CreateUserRequest registers a new member.
type CreateUserRequest struct {
	Username string `json:"username"`
}

// CreatePromptRequest creates a new draft prompt.
type CreatePromptRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// CastVoteRequest casts or changes a vote on a prompt.
// Type is one of the vote type names, e.g. "Upvote" or "Downvote".
type CastVoteRequest struct {
	Type string `json:"type"`
}

// SubmitReviewRequest records a reviewer verdict on a pending prompt.
// Vote is one of the review vote names, e.g. "Approve" or "Reject".
type SubmitReviewRequest struct {
	Vote    string `json:"vote"`
	Comment string `json:"comment,omitempty"`
}

// AddCommentRequest posts a comment on a prompt.
type AddCommentRequest struct {
	Message string `json:"message"`
}

// CreateTechniqueRequest adds a taxonomy entry.
type CreateTechniqueRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// LinkTechniqueRequest tags a prompt with a technique.
type LinkTechniqueRequest struct {
	TechniqueID uint64 `json:"techniqueId"`
}

// UserBadge pairs a held badge with its award time.
type UserBadge struct {
	Badge     *types.Badge `json:"badge"`
	AwardedAt time.Time    `json:"awardedAt"`
}

// GetUserResponse returns a member with their badges.
type GetUserResponse struct {
	User   *types.User `json:"user"`
	Badges []UserBadge `json:"badges"`
}

// GetReputationResponse returns a member's ledger history alongside the
// cached total.
type GetReputationResponse struct {
	UserID     uint64                   `json:"userId"`
	Reputation int64                    `json:"reputation"`
	Events     []*types.ReputationEvent `json:"events"`
}

// GetPromptResponse returns a prompt with its technique tags.
type GetPromptResponse struct {
	Prompt     *types.Prompt      `json:"prompt"`
	Techniques []*types.Technique `json:"techniques"`
}

// ListPromptsResponse returns a filtered prompt listing.
type ListPromptsResponse struct {
	Prompts []*types.Prompt `json:"prompts"`
}

// ListCommentsResponse returns the comments on a prompt.
type ListCommentsResponse struct {
	Comments []*types.Comment `json:"comments"`
}

// ListReviewsResponse returns the review history of a prompt.
type ListReviewsResponse struct {
	Reviews []*types.Review `json:"reviews"`
}

// ListBadgesResponse returns the badge catalog.
type ListBadgesResponse struct {
	Badges []*types.Badge `json:"badges"`
}

// ListTechniquesResponse returns the technique taxonomy.
type ListTechniquesResponse struct {
	Techniques []*types.Technique `json:"techniques"`
}

// LeaderboardResponse returns the cached reputation ranking.
type LeaderboardResponse struct {
	Entries []leaderboard.Entry `json:"entries"`
}
