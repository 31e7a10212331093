package render

import (
	"github.com/fundboard/fundboard/internal/dao"
	"github.com/fundboard/fundboard/internal/model1"
)

// Parents renders the parent accounts.
type Parents struct {
	Base
}

// Name returns the view name.
func (*Parents) Name() string { return "parents" }

// Title returns the view title.
func (*Parents) Title() string { return "Parents" }

// Endpoint returns the parents endpoint.
func (*Parents) Endpoint() string { return "/admin/parents" }

// SearchColumn returns the filtered column.
func (*Parents) SearchColumn() string { return "email" }

// FilterPlaceholder returns the filter placeholder.
func (*Parents) FilterPlaceholder() string { return "Search by email..." }

// Columns returns the parent columns.
func (*Parents) Columns() model1.Columns[dao.Record] {
	return model1.Columns[dao.Record]{
		SelectCol(),
		FieldCol("email", "EMAIL"),
		{
			ID:       "first_name",
			Header:   "FULL NAME",
			Accessor: func(r dao.Record) any { return FullName(r) },
		},
		{
			ID:       "phone_number",
			Header:   "PHONE",
			Accessor: Field("phone_number"),
			Cell:     func(r dao.Record) string { return Missing(r.Text("phone_number")) },
			Attrs:    model1.Attrs{Wide: true},
		},
		{
			ID:       "email_verified",
			Header:   "VERIFIED",
			Accessor: func(r dao.Record) any { return Truthy(r.Get("email_verified")) },
			Cell:     func(r dao.Record) string { return YesNo(r.Get("email_verified")) },
		},
		DateCol("created_at", "REGISTERED"),
	}
}
