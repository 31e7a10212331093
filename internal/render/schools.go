package render

import (
	"strings"

	"github.com/derailed/tcell/v2"
	"github.com/fundboard/fundboard/internal/dao"
	"github.com/fundboard/fundboard/internal/model1"
)

// Schools renders the registered schools.
type Schools struct {
	Base
}

// Name returns the view name.
func (*Schools) Name() string { return "schools" }

// Title returns the view title.
func (*Schools) Title() string { return "Schools" }

// Endpoint returns the schools endpoint.
func (*Schools) Endpoint() string { return "/admin/schools" }

// SearchColumn returns the filtered column.
func (*Schools) SearchColumn() string { return "name" }

// FilterPlaceholder returns the filter placeholder.
func (*Schools) FilterPlaceholder() string { return "Search by school name..." }

// Columns returns the school columns.
func (*Schools) Columns() model1.Columns[dao.Record] {
	return model1.Columns[dao.Record]{
		SelectCol(),
		FieldCol("name", "SCHOOL"),
		{
			ID:       "admin_name",
			Header:   "ADMIN",
			Accessor: Field("admin_name"),
			Cell:     func(r dao.Record) string { return Missing(r.Text("admin_name")) },
		},
		{
			ID:       "status",
			Header:   "STATUS",
			Accessor: func(r dao.Record) any { return strings.ToLower(NA(r.Text("status"))) },
		},
		DateCol("created_at", "CREATED"),
	}
}

// RowColor flags pending schools and grays out inactive ones.
func (*Schools) RowColor(r dao.Record) tcell.Color {
	switch strings.ToLower(r.Text("status")) {
	case StatePending:
		return model1.PendingColor
	case StateInactive:
		return model1.KillColor
	default:
		return model1.StdColor
	}
}
