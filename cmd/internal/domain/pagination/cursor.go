package pagination

import (
	"fmt"
	"strconv"
	"strings"
)

// Cursor marks a pagination boundary. It is the id of the row at the edge of a
// page; ids are only assumed to be ordered, never contiguous.
type Cursor int64

// ParseCursor decodes a cursor taken from a query string. An empty value decodes to
// the zero cursor, which callers treat as "no boundary".
func ParseCursor(raw string) (Cursor, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid cursor %q: %w", raw, err)
	}
	return Cursor(id), nil
}

func (c Cursor) String() string {
	return strconv.FormatInt(int64(c), 10)
}

// IsZero reports whether the cursor is absent.
func (c Cursor) IsZero() bool {
	return c == 0
}

func cursorOf(id int64) *Cursor {
	c := Cursor(id)
	return &c
}
