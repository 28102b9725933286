package postgres

import (
	"context"
	"fmt"

	"lifeguard/pkg/domain"
	"lifeguard/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	activitiesTable = "activities"
)

// StoreActivity inserts an activity, ignoring an ID that is already stored.
func (p *PgSQL) StoreActivity(ctx context.Context, activity domain.Activity) (bool, error) {
	var row PgActivity
	if err := row.FromDomain(activity); err != nil {
		return false, err
	}

	res, err := p.Builder.Insert(activitiesTable).
		Rows(row).
		OnConflict(goqu.DoNothing()).
		Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not store activity into pg: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not get affected rows: %w", err)
	}

	return n > 0, nil
}

// UserActivities returns a page of activities for a user ordered by
// occurred_at DESC, id DESC.
func (p *PgSQL) UserActivities(ctx context.Context,
	userID domain.UserID,
	cursor storage.Cursor,
	limit uint) (storage.UserActivities, error) {
	w := []goqu.Expression{
		goqu.I("user_id").Eq(uuid.UUID(userID)),
	}
	if !cursor.IsZero() {
		w = append(w, keysetBefore("occurred_at", cursor))
	}

	var rows []PgActivity
	if err := p.Builder.From(activitiesTable).
		Where(w...).
		Order(goqu.I("occurred_at").Desc(), goqu.I("id").Desc()).
		Limit(limit+1).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.UserActivities{}, fmt.Errorf("could not fetch user activities from pg: %w", err)
	}

	var nextCursor *storage.Cursor
	if uint(len(rows)) > limit {
		rows = rows[:limit]
		if limit > 0 {
			last := rows[len(rows)-1]
			nextCursor = &storage.Cursor{At: last.OccurredAt, ID: last.ID}
		}
	}

	activities := make([]domain.Activity, 0, len(rows))
	for _, row := range rows {
		a, err := row.ToDomain()
		if err != nil {
			return storage.UserActivities{}, err
		}
		activities = append(activities, *a)
	}

	return storage.UserActivities{
		Activities: activities,
		NextCursor: nextCursor,
	}, nil
}
