package domain

import (
	"time"

	"github.com/google/uuid"
)

// ActivityID uniquely identifies a logged activity.
type ActivityID uuid.UUID

// String returns the canonical UUID representation.
func (a ActivityID) String() string { return uuid.UUID(a).String() }

// MarshalText encodes the ID in its canonical UUID form.
func (a ActivityID) MarshalText() ([]byte, error) { return uuid.UUID(a).MarshalText() }

// UnmarshalText decodes an ID from any form uuid.Parse accepts.
func (a *ActivityID) UnmarshalText(b []byte) error { return (*uuid.UUID)(a).UnmarshalText(b) }

// Activity actions emitted by the checkers.
const (
	ActionPasswordChecked   = "password_checked"
	ActionPasswordGenerated = "password_generated"
	ActionURLScanned        = "url_scanned"
	ActionCheckDeleted      = "check_deleted"
)

// Activity is a best-effort record of something a user did.
type Activity struct {
	ID      ActivityID     `json:"id"`
	UserID  UserID         `json:"userId"`
	Action  string         `json:"action"`
	Details map[string]any `json:"details,omitempty"`

	OccurredAt time.Time `json:"occurredAt"`
}
