package render

import (
	"github.com/fundboard/fundboard/internal/dao"
	"github.com/fundboard/fundboard/internal/model1"
)

// Classes renders the classes of the active academic year.
type Classes struct {
	Base
}

// Name returns the view name.
func (*Classes) Name() string { return "classes" }

// Title returns the view title.
func (*Classes) Title() string { return "Classes" }

// Endpoint returns the classes endpoint.
func (*Classes) Endpoint() string { return "/academic/classes/{year_id}" }

// SearchColumn returns the filtered column.
func (*Classes) SearchColumn() string { return "name" }

// FilterPlaceholder returns the filter placeholder.
func (*Classes) FilterPlaceholder() string { return "Search a class..." }

// Columns returns the class columns.
func (*Classes) Columns() model1.Columns[dao.Record] {
	return model1.Columns[dao.Record]{
		SelectCol(),
		FieldCol("name", "CLASS"),
		FieldCol("level", "LEVEL"),
		{
			ID:       "student_count",
			Header:   "STUDENTS",
			Accessor: Number("student_count"),
			Attrs:    model1.Attrs{Numeric: true, Wide: true},
		},
	}
}
