package model1

import "sort"

// Row represents a source row as seen by the table.
type Row[R any] struct {
	ID       string
	Index    int // Position in the source rows
	Original R
	Selected bool
}

// Rows represents a collection of rows.
type Rows[R any] []Row[R]

// Originals returns the source rows.
func (r Rows[R]) Originals() []R {
	out := make([]R, len(r))
	for i, row := range r {
		out[i] = row.Original
	}
	return out
}

// IDs returns the row identifiers.
func (r Rows[R]) IDs() []string {
	out := make([]string, len(r))
	for i, row := range r {
		out[i] = row.ID
	}
	return out
}

// RowSelection tracks selected row IDs. Only true entries are kept.
type RowSelection map[string]bool

// NewRowSelection returns a selection holding the given IDs.
func NewRowSelection(ids ...string) RowSelection {
	s := make(RowSelection, len(ids))
	for _, id := range ids {
		s[id] = true
	}
	return s
}

// Normalize returns a copy holding only selected entries.
func (s RowSelection) Normalize() RowSelection {
	out := make(RowSelection, len(s))
	for k, v := range s {
		if v {
			out[k] = true
		}
	}
	return out
}

// Clone returns a copy of the selection.
func (s RowSelection) Clone() RowSelection {
	return s.Normalize()
}

// Has returns true if id is selected.
func (s RowSelection) Has(id string) bool {
	return s[id]
}

// Len returns the number of selected rows.
func (s RowSelection) Len() int {
	n := 0
	for _, v := range s {
		if v {
			n++
		}
	}
	return n
}

// Keys returns the selected IDs in sorted order.
func (s RowSelection) Keys() []string {
	kk := make([]string, 0, len(s))
	for k, v := range s {
		if v {
			kk = append(kk, k)
		}
	}
	sort.Strings(kk)
	return kk
}

// Equal returns true if both selections hold the same IDs.
func (s RowSelection) Equal(o RowSelection) bool {
	if s.Len() != o.Len() {
		return false
	}
	for k, v := range s {
		if v && !o[k] {
			return false
		}
	}
	return true
}
