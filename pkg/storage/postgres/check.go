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
	checksTable = "checks"
)

// StoreCheck inserts a check and returns the stored row including its
// generated ID and creation time.
func (p *PgSQL) StoreCheck(ctx context.Context, check domain.Check) (*domain.Check, error) {
	var row PgCheck
	if err := row.FromDomain(check); err != nil {
		return nil, err
	}

	var stored PgCheck
	if _, err := p.Builder.Insert(checksTable).
		Rows(row).
		Returning(&PgCheck{}).
		Executor().ScanStructContext(ctx, &stored); err != nil {
		return nil, fmt.Errorf("could not store check into pg: %w", err)
	}

	return stored.ToDomain()
}

// CheckByID returns a check by its ID, excluding soft-deleted rows.
func (p *PgSQL) CheckByID(ctx context.Context, userID domain.UserID, id domain.CheckID) (*domain.Check, error) {
	var row PgCheck
	found, err := p.Builder.From(checksTable).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("user_id").Eq(uuid.UUID(userID)),
			goqu.I("deleted_at").IsNull(),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not get check by id from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// UserChecks returns a page of checks for a user ordered by created_at DESC,
// id DESC, optionally filtered by kind.
func (p *PgSQL) UserChecks(ctx context.Context,
	userID domain.UserID,
	kind domain.CheckKind,
	cursor storage.Cursor,
	limit uint) (storage.UserChecks, error) {
	w := []goqu.Expression{
		goqu.I("user_id").Eq(uuid.UUID(userID)),
		goqu.I("deleted_at").IsNull(),
	}
	if kind != "" {
		w = append(w, goqu.I("kind").Eq(string(kind)))
	}
	if !cursor.IsZero() {
		w = append(w, keysetBefore("created_at", cursor))
	}

	// fetch one extra to determine if there is a next page
	ds := p.Builder.From(checksTable).
		Where(w...).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(limit + 1)

	var rows []PgCheck
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.UserChecks{}, fmt.Errorf("could not fetch user checks from pg: %w", err)
	}

	var nextCursor *storage.Cursor
	if uint(len(rows)) > limit {
		rows = rows[:limit]
		if limit > 0 {
			last := rows[len(rows)-1]
			nextCursor = &storage.Cursor{At: last.CreatedAt, ID: last.ID}
		}
	}

	checks, err := pgChecksToDomain(rows)
	if err != nil {
		return storage.UserChecks{}, err
	}

	return storage.UserChecks{
		Checks:     checks,
		NextCursor: nextCursor,
	}, nil
}

// DeleteCheck performs a soft delete by setting deleted_at for the given
// check and user, returning the deleted record.
func (p *PgSQL) DeleteCheck(ctx context.Context, userID domain.UserID, id domain.CheckID) (*domain.Check, error) {
	var row PgCheck
	found, err := p.Builder.Update(checksTable).
		Set(goqu.Record{
			"deleted_at": goqu.L("CURRENT_TIMESTAMP"),
		}).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("user_id").Eq(uuid.UUID(userID)),
		goqu.I("deleted_at").IsNull(),
	).Returning(&PgCheck{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete check in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// keysetBefore matches rows whose (column, id) sorts below cursor, which are
// the rows following it in a descending listing.
func keysetBefore(column string, cursor storage.Cursor) goqu.Expression {
	return goqu.L("(?, ?) < (?, ?)", goqu.I(column), goqu.I("id"), cursor.At, cursor.ID)
}
