package postgres_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"lifeguard/internal/activity"
	"lifeguard/pkg/domain"
	"lifeguard/pkg/storage/postgres"

	"github.com/google/uuid"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivermigrate"
	"github.com/riverqueue/river/rivertest"
	"github.com/stretchr/testify/require"
)

func migrateRiver(t *testing.T, storage *postgres.PgSQL) {
	t.Helper()
	migrator, err := rivermigrate.New(riverdatabasesql.New(storage.DB.(*sql.DB)), nil)
	require.NoError(t, err)
	migrations := migrator.AllVersions()
	latestVersion := migrations[len(migrations)-1].Version
	_, err = migrator.Migrate(t.Context(), rivermigrate.DirectionUp, &rivermigrate.MigrateOpts{
		TargetVersion: latestVersion,
	})
	require.NoError(t, err)
}

func activityJob(ctx context.Context) activity.JobArgs {
	n := activity.NewJobNotifier(nil, activity.Options{
		Queue:           "activity",
		MaxAttempts:     3,
		UniqueJobPeriod: time.Hour,
	})

	return n.NewJobArgs(ctx, domain.UserID(uuid.New()), domain.ActionPasswordChecked, map[string]any{"strength": "strong"})
}

func TestPgSQL_AddJob_WithinTransaction_UsesTxPath(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()
	migrateRiver(t, pg)

	ctx := context.Background()

	// Start a transaction to force the *sql.Tx code path in AddJob.
	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)
	defer func() { _ = txStorage.Rollback() }()

	inserted, err := txStorage.AddJob(ctx, activityJob(ctx), nil)
	require.NoError(t, err)
	require.True(t, inserted)
	rivertest.RequireInsertedTx[*riverdatabasesql.Driver](
		ctx,
		t,
		txStorage.(*postgres.PgSQL).DB.(*sql.Tx),
		&activity.JobArgs{},
		&rivertest.RequireInsertedOpts{Queue: "activity", MaxAttempts: 3},
	)
}

func TestPgSQL_AddJob_OutsideTransaction_UsesDBPath(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()
	migrateRiver(t, pg)

	ctx := context.Background()

	inserted, err := pg.AddJob(ctx, activityJob(ctx), nil)
	require.NoError(t, err)
	require.True(t, inserted)
	rivertest.RequireInserted[*riverdatabasesql.Driver](
		ctx,
		t,
		riverdatabasesql.New(pg.DB.(*sql.DB)),
		&activity.JobArgs{},
		&rivertest.RequireInsertedOpts{Queue: "activity"},
	)
}

func TestPgSQL_AddJob_SameActivityIsUnique(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()
	migrateRiver(t, pg)

	ctx := context.Background()
	job := activityJob(ctx)

	inserted, err := pg.AddJob(ctx, job, nil)
	require.NoError(t, err)
	require.True(t, inserted)

	inserted, err = pg.AddJob(ctx, job, nil)
	require.NoError(t, err)
	require.False(t, inserted, "re-dispatching the same activity must be skipped")

	inserted, err = pg.AddJob(ctx, activityJob(ctx), nil)
	require.NoError(t, err)
	require.True(t, inserted)
}
