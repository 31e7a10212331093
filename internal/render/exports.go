package render

import (
	"fmt"

	"github.com/derailed/tcell/v2"
	"github.com/fundboard/fundboard/internal/dao"
	"github.com/fundboard/fundboard/internal/model1"
)

// Exports renders the data exports stored under an S3 prefix.
type Exports struct {
	Base
}

// Name returns the view name.
func (*Exports) Name() string { return "exports" }

// Title returns the view title.
func (*Exports) Title() string { return "Exports" }

// SearchColumn returns the filtered column.
func (*Exports) SearchColumn() string { return "name" }

// FilterPlaceholder returns the filter placeholder.
func (*Exports) FilterPlaceholder() string { return "Search by file name..." }

// Columns returns the export columns.
func (*Exports) Columns() model1.Columns[dao.Record] {
	return model1.Columns[dao.Record]{
		SelectCol(),
		FieldCol("name", "NAME"),
		{
			ID:       "size",
			Header:   "SIZE",
			Accessor: Number("size"),
			Cell:     exportSize,
			Attrs:    model1.Attrs{Numeric: true},
		},
		{
			ID:       "storage_class",
			Header:   "STORAGE-CLASS",
			Accessor: Field("storage_class"),
			Cell:     func(r dao.Record) string { return NA(r.Text("storage_class")) },
		},
		{
			ID:       "last_modified",
			Header:   "AGE",
			Accessor: Time("last_modified"),
			Cell: func(r dao.Record) string {
				if t, ok := AsTime(r.Get("last_modified")); ok {
					return ToAge(&t)
				}
				return NAValue
			},
		},
		{
			ID:       "key",
			Header:   "KEY",
			Accessor: Field("key"),
			Attrs:    model1.Attrs{Wide: true},
		},
	}
}

// RowColor highlights folders and archived objects.
func (*Exports) RowColor(r dao.Record) tcell.Color {
	if r.Text("kind") == "folder" {
		return model1.HighlightColor
	}
	switch r.Text("storage_class") {
	case "GLACIER", "DEEP_ARCHIVE", "GLACIER_IR":
		return model1.PendingColor
	default:
		return model1.StdColor
	}
}

func exportSize(r dao.Record) string {
	n, ok := AsFloat(r.Get("size"))
	if !ok {
		return NAValue
	}
	return FormatSize(int64(n))
}

// FormatSize formats bytes to human readable format.
func FormatSize(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(bytes)/float64(div), "KMGTPE"[exp])
}
