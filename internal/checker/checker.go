package checker

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"lifeguard/internal/activity"
	"lifeguard/internal/urlrisk"
	"lifeguard/pkg/breach"
	"lifeguard/pkg/domain"
	"lifeguard/pkg/password"
	"lifeguard/pkg/serrors"
	"lifeguard/pkg/storage"
)

// Deps are the collaborators of the checker. Notifier defaults to a no-op.
type Deps struct {
	Storage  storage.Storage
	Breach   breach.Checker
	URLs     URLAssessor
	Notifier activity.Notifier
}

// checker is the concrete implementation of the Checker interface.
type checker struct {
	storage  storage.Storage
	breach   breach.Checker
	urls     URLAssessor
	notifier activity.Notifier
	now      func() time.Time
}

// New creates a Checker backed by deps.
func New(deps Deps) Checker {
	notifier := deps.Notifier
	if notifier == nil {
		notifier = activity.Nop{}
	}

	return &checker{
		storage:  deps.Storage,
		breach:   deps.Breach,
		urls:     deps.URLs,
		notifier: notifier,
		now:      time.Now,
	}
}

// AssessPassword runs the strength heuristic and, when b is not nil, the
// breach lookup. A breach adds its details to the feedback ahead of the
// strength summary.
func AssessPassword(ctx context.Context, b breach.Checker, pw string) domain.PasswordReport {
	report := domain.PasswordReport{
		PasswordAssessment: password.Evaluate(pw),
		Length:             utf8.RuneCountInString(pw),
	}
	if b == nil {
		return report
	}

	res := b.Check(ctx, pw)
	report.IsBreached = res.IsBreached
	report.BreachCount = res.BreachCount
	report.BreachDetails = res.Details

	if res.IsBreached {
		last := len(report.Feedback) - 1
		report.Feedback = slices.Insert(report.Feedback, max(last, 0), res.Details)
	}

	return report
}

// CheckPassword evaluates and stores a password check. The password itself
// is never persisted nor sent anywhere but the hash prefix to the breach API.
func (c checker) CheckPassword(ctx context.Context, userID domain.UserID, pw string) (*domain.Check, error) {
	if pw == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "password is required")
	}

	report := AssessPassword(ctx, c.breach, pw)

	risk := domain.RiskLevelLow
	switch {
	case report.IsBreached || report.Strength == domain.StrengthWeak:
		risk = domain.RiskLevelHigh
	case report.Strength == domain.StrengthMedium:
		risk = domain.RiskLevelMedium
	}

	check, err := c.storage.StoreCheck(ctx, domain.Check{
		UserID:    userID,
		Kind:      domain.CheckKindPassword,
		Safe:      !report.IsBreached && report.Strength != domain.StrengthWeak,
		RiskLevel: risk,
		Result:    domain.CheckResult{Password: &report},
	})
	if err != nil {
		return nil, fmt.Errorf("could not store password check: %w", err)
	}

	c.notifier.Notify(ctx, userID, domain.ActionPasswordChecked, map[string]any{
		"checkId":  check.ID.String(),
		"strength": string(report.Strength),
		"breached": report.IsBreached,
	})

	return check, nil
}

// CheckURL assesses and stores a URL check. The assessment always completes;
// only an empty URL or a storage failure is an error.
func (c checker) CheckURL(ctx context.Context, userID domain.UserID, URL string) (*domain.Check, error) {
	URL = strings.TrimSpace(URL)
	if URL == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "url is required")
	}

	target, err := urlrisk.NormalizeURL(URL)
	if err != nil {
		target = urlrisk.EnsureScheme(URL)
	}

	assessment := c.urls.Assess(ctx, URL)

	check, err := c.storage.StoreCheck(ctx, domain.Check{
		UserID:    userID,
		Kind:      domain.CheckKindURL,
		Target:    target,
		Safe:      assessment.Safe,
		RiskLevel: assessment.RiskLevel,
		Result:    domain.CheckResult{URL: &assessment},
	})
	if err != nil {
		return nil, fmt.Errorf("could not store url check: %w", err)
	}

	c.notifier.Notify(ctx, userID, domain.ActionURLScanned, map[string]any{
		"checkId":   check.ID.String(),
		"url":       target,
		"safe":      assessment.Safe,
		"riskLevel": string(assessment.RiskLevel),
	})

	return check, nil
}

// GeneratePassword returns a random password. Only its length is logged.
func (c checker) GeneratePassword(ctx context.Context, userID domain.UserID, length int) (string, error) {
	pw, err := password.Generate(length)
	if err != nil {
		return "", fmt.Errorf("could not generate password: %w", err)
	}

	c.notifier.Notify(ctx, userID, domain.ActionPasswordGenerated, map[string]any{
		"length": utf8.RuneCountInString(pw),
	})

	return pw, nil
}

func parseCursor(cursor string) (storage.Cursor, error) {
	c, err := storage.ParseCursor(cursor)
	if err != nil {
		return storage.Cursor{}, serrors.Wrap(serrors.ErrBadRequest, err, "invalid cursor")
	}

	return c, nil
}

func formatCursor(c *storage.Cursor) string {
	if c == nil {
		return ""
	}

	return c.String()
}

// History returns a page of the user's checks filtered by kind. It supports
// cursor-based pagination using the opaque cursor of the previous page and
// returns the next cursor when more results are available.
func (c checker) History(ctx context.Context,
	userID domain.UserID,
	kind domain.CheckKind,
	cursor string,
	limit uint) ([]domain.Check, string, error) {
	switch kind {
	case "", domain.CheckKindPassword, domain.CheckKindURL:
	default:
		return nil, "", serrors.With(serrors.ErrBadRequest, "unknown check kind %q", kind)
	}

	after, err := parseCursor(cursor)
	if err != nil {
		return nil, "", err
	}

	page, err := c.storage.UserChecks(ctx, userID, kind, after, limit)
	if err != nil {
		return nil, "", fmt.Errorf("could not get user checks: %w", err)
	}

	return page.Checks, formatCursor(page.NextCursor), nil
}

// Result fetches a single check by ID for the given user.
func (c checker) Result(ctx context.Context, userID domain.UserID, checkID domain.CheckID) (*domain.Check, error) {
	res, err := c.storage.CheckByID(ctx, userID, checkID)
	if err != nil {
		return nil, fmt.Errorf("could not get check: %w", err)
	}
	if res == nil {
		return nil, serrors.With(serrors.ErrNotFound, "check not found")
	}

	return res, nil
}

// Delete soft-deletes a check belonging to the given user.
func (c checker) Delete(ctx context.Context, userID domain.UserID, checkID domain.CheckID) error {
	res, err := c.storage.DeleteCheck(ctx, userID, checkID)
	if err != nil {
		return fmt.Errorf("could not delete check: %w", err)
	}
	if res == nil {
		return serrors.With(serrors.ErrNotFound, "check not found")
	}

	c.notifier.Notify(ctx, userID, domain.ActionCheckDeleted, map[string]any{
		"checkId": checkID.String(),
		"kind":    string(res.Kind),
	})

	return nil
}

// Activities returns a page of the user's activity log.
func (c checker) Activities(ctx context.Context,
	userID domain.UserID,
	cursor string,
	limit uint) ([]domain.Activity, string, error) {
	after, err := parseCursor(cursor)
	if err != nil {
		return nil, "", err
	}

	page, err := c.storage.UserActivities(ctx, userID, after, limit)
	if err != nil {
		return nil, "", fmt.Errorf("could not get user activities: %w", err)
	}

	return page.Activities, formatCursor(page.NextCursor), nil
}
