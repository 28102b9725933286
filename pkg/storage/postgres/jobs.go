package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"lifeguard/pkg/logger"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivertype"
	"go.uber.org/zap"
)

// insertClient returns an insert-only River client. db is nil when the
// client is only used with InsertTx.
func insertClient(ctx context.Context, db *sql.DB) (*river.Client[*sql.Tx], error) {
	client, err := river.NewClient(riverdatabasesql.New(db), &river.Config{Logger: logger.Slog(ctx)})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	return client, nil
}

// AddJob enqueues a River job. On a transaction handle the job joins the
// transaction and becomes visible on commit. It reports false when River
// skipped the job as a duplicate of a unique job.
func (p *PgSQL) AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error) {
	var (
		res *rivertype.JobInsertResult
		err error
	)

	switch db := p.DB.(type) {
	case *sql.Tx:
		client, cErr := insertClient(ctx, nil)
		if cErr != nil {
			return false, cErr
		}
		res, err = client.InsertTx(ctx, db, args, opts)
	case *sql.DB:
		client, cErr := insertClient(ctx, db)
		if cErr != nil {
			return false, cErr
		}
		res, err = client.Insert(ctx, args, opts)
	default:
		return false, fmt.Errorf("could not insert job: unsupported executor %T", p.DB)
	}
	if err != nil {
		return false, fmt.Errorf("could not insert %s job: %w", args.Kind(), err)
	}

	if res.UniqueSkippedAsDuplicate {
		logger.Debug(ctx, "job skipped as duplicate",
			zap.String("kind", args.Kind()), zap.Int64("jobId", res.Job.ID))

		return false, nil
	}

	return true, nil
}
