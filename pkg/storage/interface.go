// Package storage defines the persistence interfaces the application relies on.
// It abstracts check history, the activity log and transaction management so
// that different backends (e.g. PostgreSQL) can provide concrete
// implementations.
//
//go:generate mockgen -package mockstorage -source=interface.go -destination=mock/mockstorage.go *
package storage

import (
	"context"

	"lifeguard/pkg/domain"

	"github.com/riverqueue/river"
)

// AllStorage is the composite of every domain-specific storage capability.
type AllStorage interface {
	CheckStorage
	ActivityStorage
	JobStorage
}

// TxStorage is a storage handle bound to a database transaction. It becomes
// unusable after Commit or Rollback.
type TxStorage interface {
	AllStorage

	// Commit finalizes the transaction, persisting all changes.
	Commit() error
	// Rollback aborts the transaction, discarding all uncommitted changes.
	Rollback() error
}

// Storage is a non-transactional storage handle able to start transactions.
type Storage interface {
	AllStorage

	// Close releases any resources held by the storage implementation.
	Close() error

	// Begin starts a new transaction.
	Begin(ctx context.Context) (TxStorage, error)
	// WithTx begins a transaction, invokes cb with it and commits when cb
	// returns nil or rolls back otherwise.
	WithTx(ctx context.Context, cb func(storage AllStorage) error) error
}

// UserChecks is a page of checks plus the cursor of the next page, nil when
// there is none.
type UserChecks struct {
	Checks     []domain.Check
	NextCursor *Cursor
}

// CheckStorage persists completed password and URL checks. Deletes are soft.
type CheckStorage interface {
	// StoreCheck inserts a check and returns it with generated fields set.
	StoreCheck(ctx context.Context, check domain.Check) (*domain.Check, error)
	// CheckByID returns the user's check, or nil when it does not exist or was deleted.
	CheckByID(ctx context.Context, userID domain.UserID, ID domain.CheckID) (*domain.Check, error)
	// UserChecks returns the user's checks positioned after cursor in
	// (created_at, id) descending order. An empty kind returns every kind. A
	// zero cursor starts from the newest.
	UserChecks(ctx context.Context,
		userID domain.UserID,
		kind domain.CheckKind,
		cursor Cursor,
		limit uint) (UserChecks, error)
	// DeleteCheck soft-deletes the user's check and returns it, or nil when it
	// was not found.
	DeleteCheck(ctx context.Context, userID domain.UserID, ID domain.CheckID) (*domain.Check, error)
}

// UserActivities is a page of activities plus the cursor of the next page.
type UserActivities struct {
	Activities []domain.Activity
	NextCursor *Cursor
}

// ActivityStorage persists the user activity log.
type ActivityStorage interface {
	// StoreActivity inserts an activity. Storing an ID twice is a no-op so
	// retried jobs do not duplicate entries; the boolean reports whether a row
	// was written.
	StoreActivity(ctx context.Context, activity domain.Activity) (bool, error)
	// UserActivities returns the user's activities positioned after cursor in
	// (occurred_at, id) descending order.
	UserActivities(ctx context.Context, userID domain.UserID, cursor Cursor, limit uint) (UserActivities, error)
}

// JobStorage enqueues background jobs.
type JobStorage interface {
	// AddJob enqueues a job. It is atomic with any surrounding transaction.
	// The boolean is false when the job was skipped as a duplicate.
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}
