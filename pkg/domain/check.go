package domain

import (
	"time"

	"github.com/google/uuid"
)

// CheckID uniquely identifies a persisted check.
type CheckID uuid.UUID

// String returns the canonical UUID representation.
func (c CheckID) String() string { return uuid.UUID(c).String() }

// MarshalText encodes the ID in its canonical UUID form.
func (c CheckID) MarshalText() ([]byte, error) { return uuid.UUID(c).MarshalText() }

// UnmarshalText decodes an ID from any form uuid.Parse accepts.
func (c *CheckID) UnmarshalText(b []byte) error { return (*uuid.UUID)(c).UnmarshalText(b) }

// CheckKind tells which engine produced a check.
type CheckKind string

const (
	CheckKindPassword CheckKind = "PASSWORD"
	CheckKindURL      CheckKind = "URL"
)

// CheckResult holds exactly one of the assessments depending on the kind.
type CheckResult struct {
	Password *PasswordReport `json:"password,omitempty"`
	URL      *URLAssessment  `json:"url,omitempty"`
}

// PasswordReport is what gets stored for a password check. The password
// itself is never part of it.
type PasswordReport struct {
	PasswordAssessment

	Length        int    `json:"length"`
	BreachDetails string `json:"breachDetails"`
}

// Check is a completed password or URL check saved for a user.
type Check struct {
	ID     CheckID `json:"id"`
	UserID UserID  `json:"userId"`

	Kind CheckKind `json:"kind"`
	// Target is the normalized URL for URL checks and empty for password checks.
	Target    string      `json:"target"`
	Safe      bool        `json:"safe"`
	RiskLevel RiskLevel   `json:"riskLevel"`
	Result    CheckResult `json:"result"`

	CreatedAt time.Time `json:"createdAt"`
	// DeletedAt marks when the check was soft-deleted; zero value means not deleted.
	DeletedAt time.Time `json:"-"`
}
