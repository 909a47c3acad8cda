package main

import (
	"context"
	"database/sql"
	"fmt"
	root "registry"
	"registry/internal/config"
	"registry/pkg/logger"

	"github.com/pressly/goose/v3"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivermigrate"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// migrateRegistry applies the embedded goose migrations, or only reports
// their state when statusOnly is set.
func migrateRegistry(db *sql.DB, statusOnly bool) error {
	goose.SetBaseFS(root.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("could not set goose dialect to postgres: %w", err)
	}

	if statusOnly {
		if err := goose.Status(db, "migrations"); err != nil {
			return fmt.Errorf("could not get registry migrations status: %w", err)
		}

		return nil
	}

	if err := goose.Up(db, "migrations"); err != nil {
		return fmt.Errorf("could not migrate registry tables: %w", err)
	}

	return nil
}

// migrateRiver brings the river job tables to the latest version and returns
// the versions before and after.
func migrateRiver(ctx context.Context, db *sql.DB, statusOnly bool) (int, int, error) {
	migrator, err := rivermigrate.New(riverdatabasesql.New(db), nil)
	if err != nil {
		return 0, 0, fmt.Errorf("could not create river queue migrator: %w", err)
	}

	all := migrator.AllVersions()
	latest := all[len(all)-1].Version
	current := 0
	existing, err := migrator.ExistingVersions(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("could not get existing river queue migrations: %w", err)
	}
	if len(existing) > 0 {
		current = existing[len(existing)-1].Version
	}
	if statusOnly || latest <= current {
		return current, current, nil
	}

	_, err = migrator.Migrate(ctx, rivermigrate.DirectionUp, &rivermigrate.MigrateOpts{TargetVersion: latest})
	if err != nil {
		return current, current, fmt.Errorf("could not migrate river queue tables: %w", err)
	}

	return current, latest, nil
}

// migrateCommand constructs the 'migrate' subcommand that applies the registry
// and river migrations to the latest version.
func migrateCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Migrates database to the latest version",
		Run: func(cmd *cobra.Command, args []string) {
			statusOnly, _ := cmd.Flags().GetBool("status")
			ctx := context.Background()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			db, ok := strg.DB.(*sql.DB)
			if !ok {
				logger.Fatal(ctx, "postgres storage is not backed by a database handle")
			}

			if err := migrateRegistry(db, statusOnly); err != nil {
				logger.Fatal(ctx, "could not migrate registry", zap.Error(err))
			}

			from, to, err := migrateRiver(ctx, db, statusOnly)
			if err != nil {
				logger.Fatal(ctx, "could not migrate river queue", zap.Error(err))
			}
			logger.Info(ctx, "river queue migrations", zap.Int("from", from), zap.Int("to", to))
		},
	}
	cmd.Flags().Bool("status", false, "Only report the migration state")

	return cmd
}
