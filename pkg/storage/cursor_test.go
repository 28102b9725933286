package storage_test

import (
	"testing"
	"time"

	"lifeguard/pkg/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestCursor_roundTrip(t *testing.T) {
	c := storage.Cursor{
		At: time.Date(2024, 4, 30, 8, 0, 0, 123456000, time.FixedZone("CEST", 2*60*60)),
		ID: uuid.MustParse("0b6f3c1e-8a55-4f7e-9b1a-2d3c4e5f6a7b"),
	}
	require.Equal(t, "2024-04-30T06:00:00.123456Z_0b6f3c1e-8a55-4f7e-9b1a-2d3c4e5f6a7b", c.String())

	parsed, err := storage.ParseCursor(c.String())
	require.NoError(t, err)
	require.True(t, c.At.Equal(parsed.At))
	require.Equal(t, c.ID, parsed.ID)
}

func TestParseCursor(t *testing.T) {
	tests := []struct {
		name    string
		cursor  string
		wantErr bool
	}{
		{name: "empty is the start", cursor: ""},
		{name: "timestamp without id", cursor: "2024-05-01T10:00:00Z", wantErr: true},
		{name: "bad timestamp", cursor: "yesterday_0b6f3c1e-8a55-4f7e-9b1a-2d3c4e5f6a7b", wantErr: true},
		{name: "bad id", cursor: "2024-05-01T10:00:00Z_42", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := storage.ParseCursor(tt.cursor)
			if tt.wantErr {
				require.Error(t, err)

				return
			}
			require.NoError(t, err)
			require.True(t, c.IsZero())
		})
	}
}
