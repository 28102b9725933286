package main

import (
	"context"
	"database/sql"
	"fmt"

	"lifeguard"
	"lifeguard/internal/config"
	"lifeguard/pkg/logger"

	"github.com/pressly/goose/v3"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivermigrate"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// migrateTables applies the embedded goose migrations for checks and
// activities.
func migrateTables(db *sql.DB) error {
	goose.SetBaseFS(lifeguard.Migrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("could not set goose dialect to postgres: %w", err)
	}
	if err := goose.Up(db, "migrations"); err != nil {
		return fmt.Errorf("could not apply goose migrations: %w", err)
	}

	return nil
}

// migrateRiver brings River's schema to the newest version bundled with the
// library. It returns the versions migrated from and to.
func migrateRiver(ctx context.Context, db *sql.DB) (int, int, error) {
	migrator, err := rivermigrate.New(riverdatabasesql.New(db), nil)
	if err != nil {
		return 0, 0, fmt.Errorf("could not create river queue migrator: %w", err)
	}

	all := migrator.AllVersions()
	latest := all[len(all)-1].Version

	existing, err := migrator.ExistingVersions(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("could not get existing river queue migrations: %w", err)
	}
	current := 0
	if len(existing) > 0 {
		current = existing[len(existing)-1].Version
	}
	if current >= latest {
		return current, current, nil
	}

	_, err = migrator.Migrate(ctx, rivermigrate.DirectionUp, &rivermigrate.MigrateOpts{TargetVersion: latest})
	if err != nil {
		return current, current, fmt.Errorf("could not migrate river queue: %w", err)
	}

	return current, latest, nil
}

// migrateCommand constructs the 'migrate' subcommand. Application tables are
// managed by goose, River's own schema by rivermigrate.
func migrateCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Migrates checks, activities and river queue tables to the latest version",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			db := strg.DB.(*sql.DB)

			if err := migrateTables(db); err != nil {
				logger.Fatal(ctx, "could not migrate pgsql", zap.Error(err))
			}
			logger.Info(ctx, "lifeguard tables are up to date")

			from, to, err := migrateRiver(ctx, db)
			if err != nil {
				logger.Fatal(ctx, "could not migrate river queue", zap.Error(err))
			}
			logger.Info(ctx, "river queue is up to date", zap.Int("from", from), zap.Int("to", to))
		},
	}

	return cmd
}
