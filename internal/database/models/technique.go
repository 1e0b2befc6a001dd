package models

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/promptforge/promptforge/internal/database/dbretry"
	"github.com/promptforge/promptforge/internal/database/types"
	"github.com/promptforge/promptforge/internal/database/types/enum"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// TechniqueModel handles database operations for the technique taxonomy.
type TechniqueModel struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewTechnique creates a new technique model.
func NewTechnique(db *bun.DB, logger *zap.Logger) *TechniqueModel {
	return &TechniqueModel{
		db:     db,
		logger: logger.Named("db_technique"),
	}
}

// CreateTechnique inserts a taxonomy entry.
func (r *TechniqueModel) CreateTechnique(ctx context.Context, technique *types.Technique) error {
	technique.CreatedAt = time.Now()

	err := dbretry.NoResult(ctx, func(ctx context.Context) error {
		_, err := r.db.NewInsert().
			Model(technique).
			On("CONFLICT (name) DO NOTHING").
			Returning("id").
			Exec(ctx)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to create technique: %w", err)
	}

	return nil
}

// GetTechnique retrieves a technique by ID.
func (r *TechniqueModel) GetTechnique(ctx context.Context, techniqueID uint64) (*types.Technique, error) {
	var technique types.Technique

	err := dbretry.NoResult(ctx, func(ctx context.Context) error {
		return r.db.NewSelect().
			Model(&technique).
			Where("id = ?", techniqueID).
			Scan(ctx)
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, types.ErrTechniqueNotFound
		}
		return nil, fmt.Errorf("failed to get technique: %w", err)
	}

	return &technique, nil
}

// ListTechniques retrieves the full taxonomy ordered by name.
func (r *TechniqueModel) ListTechniques(ctx context.Context) ([]*types.Technique, error) {
	var techniques []*types.Technique

	err := dbretry.NoResult(ctx, func(ctx context.Context) error {
		return r.db.NewSelect().
			Model(&techniques).
			Order("name ASC").
			Scan(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list techniques: %w", err)
	}

	return techniques, nil
}

// LinkPrompt attaches a technique to a prompt. Duplicate links are ignored.
func (r *TechniqueModel) LinkPrompt(ctx context.Context, promptID, techniqueID uint64) error {
	link := &types.PromptTechnique{
		PromptID:    promptID,
		TechniqueID: techniqueID,
	}

	err := dbretry.NoResult(ctx, func(ctx context.Context) error {
		_, err := r.db.NewInsert().
			Model(link).
			On("CONFLICT DO NOTHING").
			Exec(ctx)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to link technique: %w", err)
	}

	return nil
}

// GetPromptTechniques retrieves the techniques linked to a prompt.
func (r *TechniqueModel) GetPromptTechniques(ctx context.Context, promptID uint64) ([]*types.Technique, error) {
	var techniques []*types.Technique

	err := dbretry.NoResult(ctx, func(ctx context.Context) error {
		return r.db.NewSelect().
			Model(&techniques).
			Join("JOIN prompt_techniques AS pt ON pt.technique_id = technique.id").
			Where("pt.prompt_id = ?", promptID).
			Order("technique.name ASC").
			Scan(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get prompt techniques: %w", err)
	}

	return techniques, nil
}

// ApprovedTechniqueNames retrieves the names of techniques linked to a
// user's approved prompts. Feeds badge condition evaluation.
func (r *TechniqueModel) ApprovedTechniqueNames(ctx context.Context, authorID uint64) ([]string, error) {
	var names []string

	err := dbretry.NoResult(ctx, func(ctx context.Context) error {
		return r.db.NewSelect().
			Model((*types.Technique)(nil)).
			Column("technique.name").
			Join("JOIN prompt_techniques AS pt ON pt.technique_id = technique.id").
			Join("JOIN prompts AS p ON p.id = pt.prompt_id").
			Where("p.author_id = ?", authorID).
			Where("p.status = ?", enum.PromptStatusApproved).
			Scan(ctx, &names)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get approved technique names: %w", err)
	}

	return names, nil
}
