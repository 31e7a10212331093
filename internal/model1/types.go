package model1

// DefaultPageSize is the page size a table starts with.
const DefaultPageSize = 10

// NAValue is displayed for cells without a value.
const NAValue = "n/a"

// Accessor maps a row to the scalar used to sort, filter and display one column.
type Accessor[R any] func(R) any

// CellFunc renders a row's cell for one column.
type CellFunc[R any] func(R) string

// HeaderFunc renders a column header given the column's current sort direction.
type HeaderFunc func(dir SortDirection) string

// Attrs represents column display attributes.
type Attrs struct {
	Align   int  // tview alignment
	Numeric bool // Right-aligned figures
	Wide    bool // Hidden in narrow view
}

// Merge fills unset attributes from b.
func (a Attrs) Merge(b Attrs) Attrs {
	if a.Align == 0 {
		a.Align = b.Align
	}
	if !a.Numeric {
		a.Numeric = b.Numeric
	}
	if !a.Wide {
		a.Wide = b.Wide
	}
	return a
}

// SortDirection represents a column sort direction.
type SortDirection int

const (
	Unsorted SortDirection = iota
	Ascending
	Descending
)

// Next returns the direction following d in the unsorted, ascending, descending cycle.
func (d SortDirection) Next() SortDirection {
	switch d {
	case Unsorted:
		return Ascending
	case Ascending:
		return Descending
	default:
		return Unsorted
	}
}

func (d SortDirection) String() string {
	switch d {
	case Ascending:
		return "asc"
	case Descending:
		return "desc"
	default:
		return "none"
	}
}

// SortColumn is one entry of a sort state.
type SortColumn struct {
	ID   string
	Desc bool
}

// Direction returns the column sort direction.
func (s SortColumn) Direction() SortDirection {
	if s.Desc {
		return Descending
	}
	return Ascending
}

// SortState represents an ordered list of sorted columns. Empty means source order.
type SortState []SortColumn

// Direction returns the sort direction of the given column.
func (s SortState) Direction(id string) SortDirection {
	for _, c := range s {
		if c.ID == id {
			return c.Direction()
		}
	}
	return Unsorted
}

// With returns a copy of the state with column id set to dir, keeping other columns.
func (s SortState) With(id string, dir SortDirection) SortState {
	out := make(SortState, 0, len(s)+1)
	found := false
	for _, c := range s {
		if c.ID != id {
			out = append(out, c)
			continue
		}
		found = true
		if dir != Unsorted {
			out = append(out, SortColumn{ID: id, Desc: dir == Descending})
		}
	}
	if !found && dir != Unsorted {
		out = append(out, SortColumn{ID: id, Desc: dir == Descending})
	}
	return out
}

// Clone returns a copy of the sort state.
func (s SortState) Clone() SortState {
	if s == nil {
		return SortState{}
	}
	out := make(SortState, len(s))
	copy(out, s)
	return out
}

// ColumnFilters maps column IDs to filter text.
type ColumnFilters map[string]string

// Clone returns a copy of the filters.
func (f ColumnFilters) Clone() ColumnFilters {
	out := make(ColumnFilters, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}

// Pagination tracks the current page.
type Pagination struct {
	PageIndex int
	PageSize  int
}

// PageCount returns the number of pages needed for n rows.
func (p Pagination) PageCount(n int) int {
	if p.PageSize <= 0 || n <= 0 {
		return 0
	}
	return (n + p.PageSize - 1) / p.PageSize
}

// Bounds returns the [start, end) window of the current page over n rows.
func (p Pagination) Bounds(n int) (int, int) {
	if p.PageSize <= 0 || p.PageIndex < 0 {
		return 0, 0
	}
	start := p.PageIndex * p.PageSize
	if start >= n {
		return n, n
	}
	return start, min(start+p.PageSize, n)
}

// Clamp returns the pagination with its page index moved inside [0, pageCount-1].
func (p Pagination) Clamp(n int) Pagination {
	last := p.PageCount(n) - 1
	if p.PageIndex > last {
		p.PageIndex = last
	}
	if p.PageIndex < 0 {
		p.PageIndex = 0
	}
	return p
}
