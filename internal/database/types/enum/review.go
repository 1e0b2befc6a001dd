package enum

// ReviewVote represents a reviewer's verdict on a pending prompt.
//
//go:generate go tool enumer -type=ReviewVote -trimprefix=ReviewVote
type ReviewVote int

const (
	ReviewVoteApprove ReviewVote = iota
	ReviewVoteReject
)
