package migrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		indexes := []string{
			"CREATE INDEX IF NOT EXISTS idx_prompts_author_status ON prompts (author_id, status)",
			"CREATE INDEX IF NOT EXISTS idx_prompts_parent ON prompts (parent_id) WHERE parent_id IS NOT NULL",
			"CREATE INDEX IF NOT EXISTS idx_prompts_status_created ON prompts (status, created_at DESC)",
			"CREATE INDEX IF NOT EXISTS idx_reputation_events_user ON reputation_events (user_id, created_at DESC)",
			"CREATE INDEX IF NOT EXISTS idx_reviews_prompt ON reviews (prompt_id, created_at DESC)",
			"CREATE INDEX IF NOT EXISTS idx_comments_prompt ON comments (prompt_id, created_at DESC)",
			"CREATE INDEX IF NOT EXISTS idx_users_reputation ON users (reputation DESC)",
		}

		for _, index := range indexes {
			if _, err := db.NewRaw(index).Exec(ctx); err != nil {
				return fmt.Errorf("failed to create index: %w", err)
			}
		}

		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		indexes := []string{
			"DROP INDEX IF EXISTS idx_prompts_author_status",
			"DROP INDEX IF EXISTS idx_prompts_parent",
			"DROP INDEX IF EXISTS idx_prompts_status_created",
			"DROP INDEX IF EXISTS idx_reputation_events_user",
			"DROP INDEX IF EXISTS idx_reviews_prompt",
			"DROP INDEX IF EXISTS idx_comments_prompt",
			"DROP INDEX IF EXISTS idx_users_reputation",
		}

		for _, index := range indexes {
			if _, err := db.NewRaw(index).Exec(ctx); err != nil {
				return fmt.Errorf("failed to drop index: %w", err)
			}
		}

		return nil
	})
}
