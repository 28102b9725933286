package checker

import (
	"context"

	"lifeguard/pkg/domain"
)

// Checker runs the password and URL engines on behalf of a user, keeps the
// history of completed checks and records what the user did.
//
//go:generate mockgen -package mockchecker -source=interface.go -destination=mock/mockchecker.go *
type Checker interface {
	CheckPassword(ctx context.Context, userID domain.UserID, password string) (*domain.Check, error)
	CheckURL(ctx context.Context, userID domain.UserID, URL string) (*domain.Check, error)
	GeneratePassword(ctx context.Context, userID domain.UserID, length int) (string, error)
	History(ctx context.Context,
		userID domain.UserID,
		kind domain.CheckKind,
		cursor string,
		limit uint) ([]domain.Check, string, error)
	Result(ctx context.Context, userID domain.UserID, checkID domain.CheckID) (*domain.Check, error)
	Delete(ctx context.Context, userID domain.UserID, checkID domain.CheckID) error
	Activities(ctx context.Context, userID domain.UserID, cursor string, limit uint) ([]domain.Activity, string, error)
}

// URLAssessor produces a complete verdict for a URL and never fails.
type URLAssessor interface {
	Assess(ctx context.Context, rawURL string) domain.URLAssessment
}
