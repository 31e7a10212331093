package render

import (
	"strings"

	"github.com/derailed/tcell/v2"
	"github.com/fundboard/fundboard/internal/dao"
	"github.com/fundboard/fundboard/internal/model1"
)

// Students renders a school's students.
type Students struct {
	Base
}

// Name returns the view name.
func (*Students) Name() string { return "students" }

// Title returns the view title.
func (*Students) Title() string { return "Students" }

// Endpoint returns the students endpoint.
func (*Students) Endpoint() string { return "/students/school/{school_id}" }

// SearchColumn returns the filtered column.
func (*Students) SearchColumn() string { return "last_name" }

// FilterPlaceholder returns the filter placeholder.
func (*Students) FilterPlaceholder() string { return "Search by name or matricule..." }

// Columns returns the students columns.
func (*Students) Columns() model1.Columns[dao.Record] {
	return model1.Columns[dao.Record]{
		SelectCol(),
		{
			ID:       "last_name",
			Header:   "IDENTITY",
			Accessor: Field("last_name"),
			Cell:     FullName,
		},
		FieldCol("matricule", "MATRICULE"),
		{
			ID:       "class_name",
			Header:   "CLASS",
			Accessor: Field("class_name"),
			Cell:     func(r dao.Record) string { return NA(r.Text("class_name")) },
		},
		{
			ID:       "status",
			Header:   "STATUS",
			Accessor: studentStatus,
		},
		{
			ID:       "id",
			Header:   "ID",
			Accessor: Field("id"),
			Attrs:    model1.Attrs{Wide: true},
		},
	}
}

func studentStatus(r dao.Record) any {
	s := strings.ToLower(r.Text("status"))
	switch s {
	case "", "actif":
		return StateActive
	case "inactif":
		return StateInactive
	default:
		return s
	}
}

// RowColor grays out inactive students.
func (*Students) RowColor(r dao.Record) tcell.Color {
	if studentStatus(r) == StateInactive {
		return model1.KillColor
	}
	return model1.StdColor
}
