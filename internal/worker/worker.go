package worker

import (
	"context"
	"fmt"

	"lifeguard/pkg/activitystream"
	"lifeguard/pkg/logger"
	"lifeguard/pkg/storage"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
)

// Options configures the River client running background jobs.
type Options struct {
	// Queue is the queue activity jobs are inserted into.
	Queue string
	// MaxWorkers bounds concurrently running activity jobs.
	MaxWorkers int
}

// Start registers the workers and starts a River client processing them.
// stream may be nil when activity publishing is disabled.
func Start(ctx context.Context,
	dbPool *pgxpool.Pool,
	opts Options,
	store storage.ActivityStorage,
	stream activitystream.Publisher) (*river.Client[pgx.Tx], error) {
	workers := river.NewWorkers()
	river.AddWorker(workers, NewActivityWorker(store, stream))

	queue := opts.Queue
	if queue == "" {
		queue = river.QueueDefault
	}
	maxWorkers := opts.MaxWorkers
	if maxWorkers <= 0 {
		maxWorkers = 10
	}

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			queue: {MaxWorkers: maxWorkers},
		},
		Workers: workers,
		Logger:  logger.Slog(ctx),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}
