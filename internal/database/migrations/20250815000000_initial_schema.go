package migrations

import (
	"context"
	"fmt"

	"github.com/promptforge/promptforge/internal/database/types"
	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		models := []any{
			(*types.User)(nil),
			(*types.Prompt)(nil),
			(*types.PromptVote)(nil),
			(*types.CommentVote)(nil),
			(*types.Review)(nil),
			(*types.ReputationEvent)(nil),
			(*types.Badge)(nil),
			(*types.UserBadge)(nil),
			(*types.Technique)(nil),
			(*types.PromptTechnique)(nil),
			(*types.Comment)(nil),
		}

		for _, model := range models {
			_, err := db.NewCreateTable().
				Model(model).
				IfNotExists().
				Exec(ctx)
			if err != nil {
				return fmt.Errorf("failed to create table for %T: %w", model, err)
			}
		}

		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		models := []any{
			(*types.Comment)(nil),
			(*types.PromptTechnique)(nil),
			(*types.Technique)(nil),
			(*types.UserBadge)(nil),
			(*types.Badge)(nil),
			(*types.ReputationEvent)(nil),
			(*types.Review)(nil),
			(*types.CommentVote)(nil),
			(*types.PromptVote)(nil),
			(*types.Prompt)(nil),
			(*types.User)(nil),
		}

		for _, model := range models {
			_, err := db.NewDropTable().
				Model(model).
				IfExists().
				Exec(ctx)
			if err != nil {
				return fmt.Errorf("failed to drop table for %T: %w", model, err)
			}
		}

		return nil
	})
}
