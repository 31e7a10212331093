package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fundboard/fundboard/internal/dao"
	"github.com/fundboard/fundboard/internal/model"
	"github.com/fundboard/fundboard/internal/model1"
	"github.com/fundboard/fundboard/internal/render"
)

func exportCmd() *cobra.Command {
	var out, sortBy, selected string

	cmd := &cobra.Command{
		Use:   "export [source]",
		Short: "Write the filtered and sorted rows as CSV",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, closeLog, err := setup(fbFlags)
			if err != nil {
				return err
			}
			defer closeLog()

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			b, err := loadBoard(ctx, fbFlags, args, logger)
			if err != nil {
				return err
			}
			defer b.table.Close()

			if err := b.data.Refresh(ctx); err != nil {
				return err
			}
			if err := applySort(b.table, sortBy); err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if out != "" {
				f, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("failed to create %s: %w", out, err)
				}
				defer f.Close()
				w = f
			}

			return writeCSV(w, b.table, splitIDs(selected))
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file, stdout when empty")
	cmd.Flags().StringVar(&sortBy, "sort", "", "Sort columns, e.g. last_name,total_due:desc")
	cmd.Flags().StringVar(&selected, "selected", "", "Only export these row IDs, comma separated")

	return cmd
}

// applySort sorts m by a comma separated list of col[:asc|desc].
func applySort(m *model.DataTable[dao.Record], spec string) error {
	if strings.TrimSpace(spec) == "" {
		return nil
	}
	for i, s := range strings.Split(spec, ",") {
		id, dir, _ := strings.Cut(strings.TrimSpace(s), ":")
		col, ok := m.Columns().Find(id)
		if !ok || !col.CanSort() {
			return fmt.Errorf("cannot sort on column %q", id)
		}

		want := model1.Ascending
		switch strings.ToLower(dir) {
		case "", "asc":
		case "desc":
			want = model1.Descending
		default:
			return fmt.Errorf("invalid sort direction %q for %q", dir, id)
		}

		toggle := m.ToggleMultiSort
		if i == 0 {
			toggle = m.ToggleSort
		}
		for m.SortDirection(id) != want {
			toggle(id)
			toggle = m.ToggleMultiSort
		}
	}

	return nil
}

// writeCSV writes the filtered, sorted rows of m. When ids is not empty only
// those rows are written.
func writeCSV(w io.Writer, m *model.DataTable[dao.Record], ids []string) error {
	if len(ids) > 0 {
		m.SetExternalSelection(model1.NewRowSelection(ids...))
	}

	cols := make(model1.Columns[dao.Record], 0, len(m.Columns()))
	for _, c := range m.Columns() {
		if c.ID != render.SelectColumn {
			cols = append(cols, c)
		}
	}

	cw := csv.NewWriter(w)
	header := make([]string, 0, len(cols))
	for _, c := range cols {
		header = append(header, c.Label(model1.Unsorted))
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, row := range m.FilteredRows() {
		if len(ids) > 0 && !row.Selected {
			continue
		}
		rec := make([]string, 0, len(cols))
		for _, c := range cols {
			rec = append(rec, c.Render(row.Original))
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

func splitIDs(s string) []string {
	var ids []string
	for _, id := range strings.Split(s, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}

	return ids
}
