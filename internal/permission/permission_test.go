package permission_test

import (
	"testing"

	"github.com/promptforge/promptforge/internal/permission"
	"github.com/stretchr/testify/assert"
)

func TestThresholds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		check      func(int64) bool
		reputation int64
		want       bool
	}{
		{"upvote below threshold", permission.CanUpvote, 14, false},
		{"upvote at threshold", permission.CanUpvote, 15, true},
		{"comment below threshold", permission.CanComment, 49, false},
		{"comment at threshold", permission.CanComment, 50, true},
		{"downvote for new user", permission.CanDownvote, 0, false},
		{"downvote below threshold", permission.CanDownvote, 124, false},
		{"downvote above threshold", permission.CanDownvote, 130, true},
		{"review below threshold", permission.CanReview, 499, false},
		{"review at threshold", permission.CanReview, 500, true},
		{"technique below threshold", permission.CanCreateTechnique, 1999, false},
		{"technique at threshold", permission.CanCreateTechnique, 2000, true},
		{"negative reputation locks everything", permission.CanUpvote, -3, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.check(tt.reputation))
		})
	}
}
