package model1

import "fmt"

// Column represents a table column definition over rows of type R.
type Column[R any] struct {
	ID       string
	Header   string
	HeaderFn HeaderFunc
	Accessor Accessor[R]
	Cell     CellFunc[R]

	DisableSorting   bool
	DisableFiltering bool
	Attrs
}

func (c Column[R]) String() string {
	return fmt.Sprintf("%s [%d::%t::%t]", c.ID, c.Align, c.Numeric, c.Wide)
}

// CanSort returns true if the column takes part in sorting.
func (c Column[R]) CanSort() bool {
	return c.Accessor != nil && !c.DisableSorting
}

// CanFilter returns true if the column can be the search column.
func (c Column[R]) CanFilter() bool {
	return c.Accessor != nil && !c.DisableFiltering
}

// Value returns the accessor value of the row, nil for display-only columns.
func (c Column[R]) Value(row R) any {
	if c.Accessor == nil {
		return nil
	}
	return c.Accessor(row)
}

// Render returns the cell text of the row.
func (c Column[R]) Render(row R) string {
	if c.Cell != nil {
		return c.Cell(row)
	}
	return Text(c.Value(row))
}

// Label returns the column header text for the given sort direction.
func (c Column[R]) Label(dir SortDirection) string {
	if c.HeaderFn != nil {
		return c.HeaderFn(dir)
	}
	if c.Header != "" {
		return c.Header
	}
	return c.ID
}

// Columns represents a table header (slice of columns).
type Columns[R any] []Column[R]

// Clone returns a copy of the columns.
func (h Columns[R]) Clone() Columns[R] {
	out := make(Columns[R], len(h))
	copy(out, h)
	return out
}

// IndexOf returns the position of the column with the given ID.
func (h Columns[R]) IndexOf(id string, includeWide bool) (int, bool) {
	for i, c := range h {
		if c.Wide && !includeWide {
			continue
		}
		if c.ID == id {
			return i, true
		}
	}
	return -1, false
}

// Find returns the column with the given ID.
func (h Columns[R]) Find(id string) (Column[R], bool) {
	if i, ok := h.IndexOf(id, true); ok {
		return h[i], true
	}
	return Column[R]{}, false
}

// IDs returns the column IDs, skipping wide columns unless wide is set.
func (h Columns[R]) IDs(wide bool) []string {
	if len(h) == 0 {
		return nil
	}
	cc := make([]string, 0, len(h))
	for _, c := range h {
		if !wide && c.Wide {
			continue
		}
		cc = append(cc, c.ID)
	}
	return cc
}

// Narrow returns the columns shown in narrow view.
func (h Columns[R]) Narrow() Columns[R] {
	out := make(Columns[R], 0, len(h))
	for _, c := range h {
		if !c.Wide {
			out = append(out, c)
		}
	}
	return out
}
