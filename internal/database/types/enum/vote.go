package enum

// VoteType represents the direction of a vote on a prompt or comment.
//
//go:generate go tool enumer -type=VoteType -trimprefix=VoteType
type VoteType int

const (
	VoteTypeUpvote VoteType = iota
	VoteTypeDownvote
)
