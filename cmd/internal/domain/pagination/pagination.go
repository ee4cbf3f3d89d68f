package pagination

const (
	DefaultLimit = 2

	// MaxLimit is a hard ceiling, it cannot be raised by callers.
	MaxLimit = 5
)

type Mode int

const (
	ModeDefault Mode = iota
	ModePage
	ModeAfter
	ModeBefore
)

func (m Mode) String() string {
	switch m {
	case ModePage:
		return "page"
	case ModeAfter:
		return "after"
	case ModeBefore:
		return "before"
	default:
		return "default"
	}
}

// Params holds the raw listing parameters. Zero values mean the parameter was
// not provided.
type Params struct {
	Limit  int
	Page   int
	After  Cursor
	Before Cursor
}

// Window is the query shape computed from Params.
type Window struct {
	Mode       Mode
	Limit      int
	Page       int
	Offset     int
	Cursor     Cursor
	Descending bool
}

// Page is one page of results, always in ascending id order.
type Page[T any] struct {
	List       []T
	HasNext    bool
	NextCursor *Cursor
	PrevCursor *Cursor
}

// ClampLimit bounds the requested page size to [1, MaxLimit], falling back to
// DefaultLimit when nothing usable was requested.
func ClampLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	return min(limit, MaxLimit)
}

// Plan selects the pagination mode (page > after > before > default) and computes
// the window to query.
func Plan(p Params) Window {
	w := Window{Limit: ClampLimit(p.Limit)}

	switch {
	case p.Page > 0:
		w.Mode = ModePage
		w.Page = max(1, p.Page)
		w.Offset = (w.Page - 1) * w.Limit
	case !p.After.IsZero():
		w.Mode = ModeAfter
		w.Cursor = p.After
	case !p.Before.IsZero():
		w.Mode = ModeBefore
		w.Cursor = p.Before
		w.Descending = true
	default:
		w.Mode = ModeDefault
	}
	return w
}

// Fetch is the number of rows to ask for. The extra row only signals that more
// rows exist and is never returned.
func (w Window) Fetch() int {
	return w.Limit + 1
}

// Boundary returns the comparison operator to apply on the id column, if any.
func (w Window) Boundary() (string, Cursor, bool) {
	switch w.Mode {
	case ModeAfter:
		return ">", w.Cursor, true
	case ModeBefore:
		return "<", w.Cursor, true
	default:
		return "", 0, false
	}
}

// Build turns the fetched batch into a page. rows must be in the scan order
// dictated by the window (descending for ModeBefore).
func Build[T any](w Window, rows []T, idOf func(T) int64) Page[T] {
	hasNext := len(rows) > w.Limit

	list := rows
	if hasNext {
		list = rows[:w.Limit]
	}

	out := make([]T, len(list))
	if w.Descending {
		for i, item := range list {
			out[len(list)-1-i] = item
		}
	} else {
		copy(out, list)
	}

	page := Page[T]{List: out, HasNext: hasNext}
	if len(out) == 0 {
		return page
	}

	first := cursorOf(idOf(out[0]))
	last := cursorOf(idOf(out[len(out)-1]))

	switch w.Mode {
	case ModePage:
		if hasNext {
			page.NextCursor = last
		}
		// The first page has nothing before it.
		if hasNext && w.Page > 1 {
			page.PrevCursor = first
		}
	case ModeAfter:
		if hasNext {
			page.NextCursor = last
		}
		page.PrevCursor = first
	case ModeBefore:
		page.NextCursor = last
		if hasNext {
			page.PrevCursor = first
		}
	default:
		if hasNext {
			page.NextCursor = last
			page.PrevCursor = first
		}
	}
	return page
}

// Map converts the items of a page, keeping its cursors.
func Map[T, U any](p Page[T], fn func(T) U) Page[U] {
	list := make([]U, len(p.List))
	for i, item := range p.List {
		list[i] = fn(item)
	}
	return Page[U]{
		List:       list,
		HasNext:    p.HasNext,
		NextCursor: p.NextCursor,
		PrevCursor: p.PrevCursor,
	}
}
