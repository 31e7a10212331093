package ui

import (
	"fmt"
	"io"

	"github.com/fundboard/fundboard/internal/model"
	"github.com/fundboard/fundboard/internal/render"
	"github.com/olekukonko/tablewriter"
)

// PlainRenderer writes a table page as text, for headless runs.
type PlainRenderer[R any] struct {
	out  io.Writer
	wide bool
}

// NewPlainRenderer returns a renderer writing to out.
func NewPlainRenderer[R any](out io.Writer, wide bool) *PlainRenderer[R] {
	return &PlainRenderer[R]{out: out, wide: wide}
}

// Render writes the current page of m, followed by its footer summary.
func (p *PlainRenderer[R]) Render(name string, m *model.DataTable[R]) error {
	cols := m.Columns()
	if !p.wide {
		cols = cols.Narrow()
	}
	sorting := m.Sorting()

	tw := tablewriter.NewWriter(p.out)
	hh := make([]any, 0, len(cols))
	for _, c := range cols {
		if c.ID == render.SelectColumn {
			hh = append(hh, Checkbox(m.AllFilteredRowsSelected(), m.SomeFilteredRowsSelected()))
			continue
		}
		hh = append(hh, HeaderLabel(c.Label(sorting.Direction(c.ID)), sorting, c.ID))
	}
	tw.Header(hh...)

	for _, row := range m.PageRows() {
		cells := make([]string, 0, len(cols))
		for _, c := range cols {
			if c.ID == render.SelectColumn {
				cells = append(cells, Checkbox(row.Selected, false))
				continue
			}
			cells = append(cells, c.Render(row.Original))
		}
		if err := tw.Append(cells); err != nil {
			return fmt.Errorf("failed to append row %s: %w", row.ID, err)
		}
	}
	if err := tw.Render(); err != nil {
		return fmt.Errorf("failed to render %s: %w", name, err)
	}

	st := FooterState{
		Selected:  m.SelectedFilteredCount(),
		Filtered:  m.FilteredRowCount(),
		PageIndex: m.Pagination().PageIndex,
		PageCount: m.PageCount(),
		PageSize:  m.Pagination().PageSize,
	}
	_, err := fmt.Fprintf(p.out, "%s | %s\n", st.SelectionText(), st.PageText())

	return err
}
