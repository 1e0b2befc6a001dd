package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/promptforge/promptforge/internal/database"
	"github.com/promptforge/promptforge/internal/database/migrations"
	"github.com/promptforge/promptforge/internal/setup/config"
	"github.com/uptrace/bun/migrate"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

var ErrNameRequired = errors.New("migration name argument is required")

func main() {
	if err := run(); err != nil {
		log.Printf("Error: %v", err)
		os.Exit(1)
	}
}

func run() error {
	db, migrator, logger, err := setupMigrator()
	if err != nil {
		return fmt.Errorf("failed to setup migrator: %w", err)
	}
	defer db.Close()

	app := &cli.Command{
		Name:  "db",
		Usage: "Manage the PromptForge schema",
		Commands: []*cli.Command{
			{
				Name:  "init",
				Usage: "Create the bun migration bookkeeping tables",
				Action: func(ctx context.Context, _ *cli.Command) error {
					return migrator.Init(ctx)
				},
			},
			{
				Name:  "migrate",
				Usage: "Apply all unapplied migrations",
				Action: func(ctx context.Context, _ *cli.Command) error {
					return withLock(ctx, migrator, func(ctx context.Context) error {
						group, err := migrator.Migrate(ctx)
						if err != nil {
							return err
						}

						if group.IsZero() {
							logger.Info("Schema already up to date, nothing applied")
							return nil
						}

						logger.Info("Applied migration group",
							zap.String("group", group.String()))

						return nil
					})
				},
			},
			{
				Name:  "rollback",
				Usage: "Undo the most recent migration group",
				Action: func(ctx context.Context, _ *cli.Command) error {
					return withLock(ctx, migrator, func(ctx context.Context) error {
						group, err := migrator.Rollback(ctx)
						if err != nil {
							return err
						}

						if group.IsZero() {
							logger.Info("Nothing to roll back")
							return nil
						}

						logger.Info("Rolled back migration group",
							zap.String("group", group.String()))

						return nil
					})
				},
			},
			{
				Name:  "status",
				Usage: "Report applied and pending migrations",
				Action: func(ctx context.Context, _ *cli.Command) error {
					ms, err := migrator.MigrationsWithStatus(ctx)
					if err != nil {
						return err
					}

					logger.Info("Migration status",
						zap.String("migrations", ms.String()),
						zap.String("unapplied", ms.Unapplied().String()),
						zap.String("last_group", ms.LastGroup().String()))

					return nil
				},
			},
			{
				Name:      "create",
				Usage:     "Scaffold an empty Go migration",
				ArgsUsage: "NAME",
				Action: func(ctx context.Context, c *cli.Command) error {
					if c.Args().Len() != 1 {
						return ErrNameRequired
					}

					mf, err := migrator.CreateGoMigration(ctx, c.Args().First())
					if err != nil {
						return err
					}

					logger.Info("Created migration file",
						zap.String("name", mf.Name),
						zap.String("path", mf.Path))

					return nil
				},
			},
		},
	}

	return app.Run(context.Background(), os.Args)
}

// withLock holds the migrator's advisory lock around fn so two invocations
// cannot mutate the schema at the same time.
func withLock(ctx context.Context, migrator *migrate.Migrator, fn func(context.Context) error) error {
	if err := migrator.Lock(ctx); err != nil {
		return err
	}
	defer migrator.Unlock(ctx) //nolint:errcheck

	return fn(ctx)
}

// setupMigrator loads configuration and opens a connection with automatic
// migrations disabled, since this tool drives them explicitly.
func setupMigrator() (database.Client, *migrate.Migrator, *zap.Logger, error) {
	cfg, _, err := config.LoadConfig()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}

	db, err := database.NewConnection(context.Background(), &cfg.PostgreSQL, logger, false)
	if err != nil {
		return nil, nil, logger, fmt.Errorf("failed to connect to database: %w", err)
	}

	migrator := migrate.NewMigrator(db.DB(), migrations.Migrations)

	return db, migrator, logger, nil
}
