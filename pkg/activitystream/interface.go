// Package activitystream publishes user activity to downstream consumers.
package activitystream

import (
	"context"

	"lifeguard/pkg/domain"
)

// Publisher delivers activities with at-least-once semantics; consumers
// de-duplicate by activity ID.
//
//go:generate mockgen -package mockactivitystream -source=interface.go -destination=mock/mockactivitystream.go *
type Publisher interface {
	Publish(ctx context.Context, activity domain.Activity) error
}
