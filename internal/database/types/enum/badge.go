package enum

// BadgeKind identifies a badge's unlock condition.
//
//go:generate go tool enumer -type=BadgeKind -trimprefix=BadgeKind
type BadgeKind int

const (
	BadgeKindFirstChainOfThought BadgeKind = iota
	BadgeKindReviewer
	BadgeKindModerator
)
