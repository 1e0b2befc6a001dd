// Package permission holds the reputation thresholds gating privileged
// actions. The predicates are pure and consulted by the request layer;
// any mirror of these checks in a client is advisory only.
package permission

// Reputation required for each privileged action.
const (
	UpvoteThreshold          = 15
	CommentThreshold         = 50
	DownvoteThreshold        = 125
	ReviewThreshold          = 500
	CreateTechniqueThreshold = 2000
)

// CanUpvote reports whether a user may upvote prompts.
func CanUpvote(reputation int64) bool {
	return reputation >= UpvoteThreshold
}

// CanComment reports whether a user may comment on prompts.
func CanComment(reputation int64) bool {
	return reputation >= CommentThreshold
}

// CanDownvote reports whether a user may downvote prompts.
func CanDownvote(reputation int64) bool {
	return reputation >= DownvoteThreshold
}

// CanReview reports whether a user may review pending prompts.
func CanReview(reputation int64) bool {
	return reputation >= ReviewThreshold
}

// CanCreateTechnique reports whether a user may add taxonomy entries.
func CanCreateTechnique(reputation int64) bool {
	return reputation >= CreateTechniqueThreshold
}
