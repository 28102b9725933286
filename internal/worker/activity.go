package worker

import (
	"context"
	"fmt"

	"lifeguard/internal/activity"
	"lifeguard/pkg/activitystream"
	"lifeguard/pkg/logger"
	"lifeguard/pkg/storage"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// ActivityWorker persists activity jobs and, when a stream is configured,
// publishes them. Storing is idempotent by activity ID, so a job retried
// after a publish failure does not duplicate the log entry; consumers of the
// stream see at-least-once delivery.
type ActivityWorker struct {
	river.WorkerDefaults[activity.JobArgs]

	store  storage.ActivityStorage
	stream activitystream.Publisher
}

// NewActivityWorker constructs an ActivityWorker. stream may be nil.
func NewActivityWorker(store storage.ActivityStorage, stream activitystream.Publisher) *ActivityWorker {
	return &ActivityWorker{store: store, stream: stream}
}

// Work stores the activity and then publishes it. Any error makes River
// retry the job until its attempts are exhausted.
func (w *ActivityWorker) Work(ctx context.Context, job *river.Job[activity.JobArgs]) error {
	ctx = logger.WithFields(ctx,
		zap.Int64("jobID", job.ID),
		zap.String("activityID", job.Args.ActivityID.String()),
		zap.String("action", job.Args.Action))

	act := job.Args.Activity()

	stored, err := w.store.StoreActivity(ctx, act)
	if err != nil {
		logger.Error(ctx, "error in storing activity", zap.Error(err))

		return fmt.Errorf("could not store activity: %w", err)
	}
	if !stored {
		logger.Debug(ctx, "activity already stored")
	}

	if w.stream != nil {
		if err := w.stream.Publish(ctx, act); err != nil {
			logger.Warn(ctx, "error in publishing activity", zap.Error(err))

			return fmt.Errorf("could not publish activity: %w", err)
		}
	}

	logger.Info(ctx, "activity recorded")

	return nil
}
