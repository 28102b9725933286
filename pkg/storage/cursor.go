package storage

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const cursorSeparator = "_"

// Cursor is a keyset position in a newest-first listing. Rows sharing a
// timestamp are ordered by ID, so a page boundary inside a tie neither skips
// nor repeats rows.
type Cursor struct {
	At time.Time
	ID uuid.UUID
}

// IsZero reports whether the cursor points at the start of the listing.
func (c Cursor) IsZero() bool {
	return c.At.IsZero() && c.ID == uuid.Nil
}

// String encodes the cursor as "<RFC3339Nano timestamp>_<id>".
func (c Cursor) String() string {
	return c.At.UTC().Format(time.RFC3339Nano) + cursorSeparator + c.ID.String()
}

// ParseCursor decodes a cursor produced by Cursor.String. An empty string is
// the zero cursor.
func ParseCursor(s string) (Cursor, error) {
	if s == "" {
		return Cursor{}, nil
	}

	at, id, ok := strings.Cut(s, cursorSeparator)
	if !ok {
		return Cursor{}, fmt.Errorf("could not parse cursor %q: missing id", s)
	}

	t, err := time.Parse(time.RFC3339Nano, at)
	if err != nil {
		return Cursor{}, fmt.Errorf("could not parse cursor timestamp: %w", err)
	}

	u, err := uuid.Parse(id)
	if err != nil {
		return Cursor{}, fmt.Errorf("could not parse cursor id: %w", err)
	}

	return Cursor{At: t, ID: u}, nil
}
