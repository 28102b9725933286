package postgres_test

import (
	"context"
	"testing"
	"time"

	"lifeguard/pkg/domain"
	"lifeguard/pkg/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestPgSQL_StoreActivity(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	activity := domain.Activity{
		ID:         domain.ActivityID(uuid.New()),
		UserID:     domain.UserID(uuid.New()),
		Action:     domain.ActionURLScanned,
		Details:    map[string]any{"url": "http://bit.ly/abc", "safe": false},
		OccurredAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	written, err := pgSQL.StoreActivity(ctx, activity)
	require.NoError(t, err)
	require.True(t, written)

	written, err = pgSQL.StoreActivity(ctx, activity)
	require.NoError(t, err)
	require.False(t, written, "a retried activity is not duplicated")

	page, err := pgSQL.UserActivities(ctx, activity.UserID, storage.Cursor{}, 10)
	require.NoError(t, err)
	require.Len(t, page.Activities, 1)
	require.Nil(t, page.NextCursor)

	got := page.Activities[0]
	require.Equal(t, activity.ID, got.ID)
	require.Equal(t, domain.ActionURLScanned, got.Action)
	require.Equal(t, "http://bit.ly/abc", got.Details["url"])
	require.Equal(t, false, got.Details["safe"])
	require.True(t, activity.OccurredAt.Equal(got.OccurredAt))
}

func TestPgSQL_UserActivities(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()
	userID := domain.UserID(uuid.New())

	base := time.Now().UTC().Truncate(time.Second)
	for i := range 3 {
		_, err := pgSQL.StoreActivity(ctx, domain.Activity{
			ID:         domain.ActivityID(uuid.New()),
			UserID:     userID,
			Action:     domain.ActionPasswordGenerated,
			OccurredAt: base.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
	}

	page, err := pgSQL.UserActivities(ctx, userID, storage.Cursor{}, 2)
	require.NoError(t, err)
	require.Len(t, page.Activities, 2)
	require.NotNil(t, page.NextCursor)
	require.True(t, page.Activities[0].OccurredAt.Equal(base.Add(2*time.Minute)))
	require.Nil(t, page.Activities[0].Details)

	page, err = pgSQL.UserActivities(ctx, userID, *page.NextCursor, 2)
	require.NoError(t, err)
	require.Len(t, page.Activities, 1)
	require.Nil(t, page.NextCursor)
	require.True(t, page.Activities[0].OccurredAt.Equal(base))
}

func TestPgSQL_UserActivities_sameOccurredAt(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()
	userID := domain.UserID(uuid.New())

	at := time.Now().UTC().Truncate(time.Second)
	stored := make(map[domain.ActivityID]bool)
	for range 5 {
		id := domain.ActivityID(uuid.New())
		_, err := pgSQL.StoreActivity(ctx, domain.Activity{
			ID:         id,
			UserID:     userID,
			Action:     domain.ActionURLScanned,
			OccurredAt: at,
		})
		require.NoError(t, err)
		stored[id] = true
	}

	seen := make(map[domain.ActivityID]bool)
	pages := 0
	for cursor := (storage.Cursor{}); ; {
		page, err := pgSQL.UserActivities(ctx, userID, cursor, 2)
		require.NoError(t, err)
		pages++
		for _, a := range page.Activities {
			require.False(t, seen[a.ID], "activity %s repeated across pages", a.ID)
			seen[a.ID] = true
		}
		if page.NextCursor == nil {
			break
		}
		require.True(t, at.Equal(page.NextCursor.At))
		cursor = *page.NextCursor
	}
	require.Equal(t, 3, pages)
	require.Equal(t, stored, seen)
}
