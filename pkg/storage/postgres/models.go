package postgres

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"lifeguard/pkg/domain"

	"github.com/google/uuid"
)

type PgCheck struct {
	ID     uuid.UUID `db:"id"      goqu:"skipinsert"`
	UserID uuid.UUID `db:"user_id"`

	Kind      string          `db:"kind"`
	Target    string          `db:"target"`
	Safe      bool            `db:"safe"`
	RiskLevel string          `db:"risk_level"`
	Result    json.RawMessage `db:"result"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	DeletedAt sql.NullTime `db:"deleted_at" goqu:"skipinsert"`
}

func (p *PgCheck) ToDomain() (*domain.Check, error) {
	var result domain.CheckResult
	if err := json.Unmarshal(p.Result, &result); err != nil {
		return nil, fmt.Errorf("could not unmarshal check result: %w", err)
	}

	return &domain.Check{
		ID:        domain.CheckID(p.ID),
		UserID:    domain.UserID(p.UserID),
		Kind:      domain.CheckKind(p.Kind),
		Target:    p.Target,
		Safe:      p.Safe,
		RiskLevel: domain.RiskLevel(p.RiskLevel),
		Result:    result,
		CreatedAt: p.CreatedAt,
		DeletedAt: p.DeletedAt.Time,
	}, nil
}

func (p *PgCheck) FromDomain(check domain.Check) error {
	result, err := json.Marshal(check.Result)
	if err != nil {
		return fmt.Errorf("could not marshal check result: %w", err)
	}

	*p = PgCheck{
		ID:        uuid.UUID(check.ID),
		UserID:    uuid.UUID(check.UserID),
		Kind:      string(check.Kind),
		Target:    check.Target,
		Safe:      check.Safe,
		RiskLevel: string(check.RiskLevel),
		Result:    result,
		CreatedAt: check.CreatedAt,
		DeletedAt: sql.NullTime{
			Time:  check.DeletedAt,
			Valid: !check.DeletedAt.IsZero(),
		},
	}

	return nil
}

func pgChecksToDomain(checks []PgCheck) ([]domain.Check, error) {
	out := make([]domain.Check, 0, len(checks))
	for _, check := range checks {
		d, err := check.ToDomain()
		if err != nil {
			return nil, err
		}

		out = append(out, *d)
	}

	return out, nil
}

type PgActivity struct {
	ID     uuid.UUID `db:"id"`
	UserID uuid.UUID `db:"user_id"`

	Action  string          `db:"action"`
	Details json.RawMessage `db:"details"`

	OccurredAt time.Time `db:"occurred_at"`
	CreatedAt  time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgActivity) ToDomain() (*domain.Activity, error) {
	var details map[string]any
	if len(p.Details) > 0 {
		if err := json.Unmarshal(p.Details, &details); err != nil {
			return nil, fmt.Errorf("could not unmarshal activity details: %w", err)
		}
	}
	if len(details) == 0 {
		details = nil
	}

	return &domain.Activity{
		ID:         domain.ActivityID(p.ID),
		UserID:     domain.UserID(p.UserID),
		Action:     p.Action,
		Details:    details,
		OccurredAt: p.OccurredAt,
	}, nil
}

func (p *PgActivity) FromDomain(activity domain.Activity) error {
	details := activity.Details
	if details == nil {
		details = map[string]any{}
	}
	b, err := json.Marshal(details)
	if err != nil {
		return fmt.Errorf("could not marshal activity details: %w", err)
	}

	*p = PgActivity{
		ID:         uuid.UUID(activity.ID),
		UserID:     uuid.UUID(activity.UserID),
		Action:     activity.Action,
		Details:    b,
		OccurredAt: activity.OccurredAt,
	}

	return nil
}
