package activity

import (
	"time"

	"lifeguard/pkg/domain"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// JobArgs carries one activity to the worker that persists it.
type JobArgs struct {
	// ActivityID is generated at dispatch time so a retried or re-inserted
	// job stores the activity once.
	ActivityID uuid.UUID      `json:"activityId" river:"unique"`
	UserID     uuid.UUID      `json:"userId"`
	Action     string         `json:"action"`
	Details    map[string]any `json:"details,omitempty"`
	OccurredAt time.Time      `json:"occurredAt"`

	queue           string
	maxAttempts     int
	uniqueJobPeriod time.Duration
}

// Kind returns the River job kind the activity worker is registered under.
func (args JobArgs) Kind() string { return "ActivityLogJob" }

// InsertOpts returns the queue, retry budget and uniqueness window of the job.
func (args JobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		Queue:       args.queue,
		MaxAttempts: args.maxAttempts,
		UniqueOpts: river.UniqueOpts{
			ByArgs:   true,
			ByPeriod: args.uniqueJobPeriod,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStateCompleted,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		},
	}
}

// Activity converts the job payload back into the domain entity.
func (args JobArgs) Activity() domain.Activity {
	return domain.Activity{
		ID:         domain.ActivityID(args.ActivityID),
		UserID:     domain.UserID(args.UserID),
		Action:     args.Action,
		Details:    args.Details,
		OccurredAt: args.OccurredAt,
	}
}
