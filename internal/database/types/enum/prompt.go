package enum

// PromptStatus represents the lifecycle state of a prompt.
//
//go:generate go tool enumer -type=PromptStatus -trimprefix=PromptStatus
type PromptStatus int

const (
	PromptStatusDraft PromptStatus = iota
	PromptStatusPendingReview
	PromptStatusApproved
	PromptStatusRejected
)
