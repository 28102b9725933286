// Package breach defines the password breach lookup used by the password
// checker. Lookups follow the k-anonymity model: only a short prefix of the
// password hash ever leaves the process.
package breach

import (
	"context"

	"lifeguard/pkg/domain"
)

// Details reported for each lookup outcome.
const (
	DetailsUnavailable = "Unable to check password breach status"
	DetailsClean       = "Password not found in known data breaches"
	DetailsBreached    = "Password found in %d data breaches"
)

// Unavailable is the result reported when a lookup could not complete.
func Unavailable() domain.BreachResult {
	return domain.BreachResult{Details: DetailsUnavailable}
}

// Checker looks a password up in a breach corpus.
//
//go:generate mockgen -package mockbreach -source=interface.go -destination=mock/mockbreach.go *
type Checker interface {
	// Check never fails: an unreachable or misbehaving backend yields
	// Unavailable().
	Check(ctx context.Context, password string) domain.BreachResult
}
