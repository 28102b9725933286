package domain

import "github.com/google/uuid"

// UserID uniquely identifies a dashboard user. Authentication happens
// upstream; the ID arrives as the subject of a verified bearer token.
type UserID uuid.UUID

// String returns the canonical UUID representation.
func (u UserID) String() string { return uuid.UUID(u).String() }

// MarshalText encodes the ID in its canonical UUID form.
func (u UserID) MarshalText() ([]byte, error) { return uuid.UUID(u).MarshalText() }

// UnmarshalText decodes an ID from any form uuid.Parse accepts.
func (u *UserID) UnmarshalText(b []byte) error { return (*uuid.UUID)(u).UnmarshalText(b) }
