// Package activity dispatches fire-and-forget activity notifications. A
// notification becomes a River job persisted by the activity worker; the
// caller never waits for it and never sees its failure.
package activity

import (
	"context"
	"maps"
	"sync"
	"time"

	"lifeguard/internal/config"
	"lifeguard/pkg/domain"
	"lifeguard/pkg/logger"
	"lifeguard/pkg/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Notifier records what a user did.
//
//go:generate mockgen -package mockactivity -source=notifier.go -destination=mock/mockactivity.go *
type Notifier interface {
	// Notify returns immediately. Delivery failures are only logged.
	Notify(ctx context.Context, userID domain.UserID, action string, details map[string]any)
}

// Options configures the job dispatch.
type Options struct {
	// Queue is the River queue activity jobs are inserted into.
	Queue string
	// MaxAttempts bounds how often the worker retries an activity.
	MaxAttempts int
	// DispatchTimeout bounds the detached job insert.
	DispatchTimeout time.Duration
	// UniqueJobPeriod is the window in which a re-inserted activity is skipped.
	UniqueJobPeriod time.Duration
}

// NewOptions maps the application config to Options.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Queue:           cfg.Activity.Queue,
		MaxAttempts:     cfg.Activity.MaxAttempts,
		DispatchTimeout: cfg.Activity.DispatchTimeout,
		UniqueJobPeriod: cfg.Activity.UniqueJobPeriod,
	}
}

// JobNotifier implements Notifier by inserting River jobs from a detached
// goroutine.
type JobNotifier struct {
	jobs storage.JobStorage
	opts Options
	now  func() time.Time

	wg sync.WaitGroup
}

var _ Notifier = (*JobNotifier)(nil)

// NewJobNotifier constructs a JobNotifier.
func NewJobNotifier(jobs storage.JobStorage, opts Options) *JobNotifier {
	if opts.DispatchTimeout <= 0 {
		opts.DispatchTimeout = 5 * time.Second
	}

	return &JobNotifier{jobs: jobs, opts: opts, now: time.Now}
}

// NewJobArgs builds the job for one activity.
func (n *JobNotifier) NewJobArgs(ctx context.Context,
	userID domain.UserID,
	action string,
	details map[string]any) JobArgs {
	merged := maps.Clone(details)
	if client := ClientDetails(ctx); client != nil {
		if merged == nil {
			merged = make(map[string]any, 1)
		}
		merged["client"] = client
	}

	return JobArgs{
		ActivityID: uuid.New(),
		UserID:     uuid.UUID(userID),
		Action:     action,
		Details:    merged,
		OccurredAt: n.now().UTC(),

		queue:           n.opts.Queue,
		maxAttempts:     n.opts.MaxAttempts,
		uniqueJobPeriod: n.opts.UniqueJobPeriod,
	}
}

// Notify implements Notifier. The insert runs on a context detached from
// the caller's cancellation, so a finished request does not abort it.
func (n *JobNotifier) Notify(ctx context.Context, userID domain.UserID, action string, details map[string]any) {
	args := n.NewJobArgs(ctx, userID, action, details)
	ctx = logger.WithFields(context.WithoutCancel(ctx),
		zap.String("action", action),
		zap.String("activityID", args.ActivityID.String()))

	n.wg.Add(1)
	go func() {
		defer n.wg.Done()

		ctx, cancel := context.WithTimeout(ctx, n.opts.DispatchTimeout)
		defer cancel()

		if _, err := n.jobs.AddJob(ctx, args, nil); err != nil {
			logger.Warn(ctx, "could not dispatch activity", zap.Error(err))

			return
		}
		logger.Debug(ctx, "activity dispatched")
	}()
}

// Wait blocks until every dispatched notification has finished.
func (n *JobNotifier) Wait() {
	n.wg.Wait()
}

// Nop discards every notification. It serves the local CLI, which has no
// queue to dispatch to.
type Nop struct{}

// Notify implements Notifier.
func (Nop) Notify(context.Context, domain.UserID, string, map[string]any) {}
