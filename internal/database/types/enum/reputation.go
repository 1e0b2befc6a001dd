package enum

// ReputationEventType identifies the rule that produced a ledger entry.
//
//go:generate go tool enumer -type=ReputationEventType -trimprefix=ReputationEventType
type ReputationEventType int

const (
	ReputationEventTypePromptUpvoted ReputationEventType = iota
	ReputationEventTypePromptDownvoted
	ReputationEventTypeUpvoteReversed
	ReputationEventTypeDownvoteReversed
	ReputationEventTypeDownvoteCast
	ReputationEventTypeDownvoteRemoved
	ReputationEventTypeReviewApproved
	ReputationEventTypeReviewRejected
	ReputationEventTypeAccurateReview
	ReputationEventTypeFirstApproval
	ReputationEventTypeCommentUpvoted
	ReputationEventTypeForkApproved
)
