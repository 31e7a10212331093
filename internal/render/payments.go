package render

import (
	"github.com/fundboard/fundboard/internal/dao"
	"github.com/fundboard/fundboard/internal/model1"
)

// Payments renders recorded fee payments.
type Payments struct {
	Base
}

// Name returns the view name.
func (*Payments) Name() string { return "payments" }

// Title returns the view title.
func (*Payments) Title() string { return "Payments" }

// Endpoint returns the payments endpoint.
func (*Payments) Endpoint() string { return "/finance/payments/{school_id}" }

// SearchColumn returns the filtered column.
func (*Payments) SearchColumn() string { return "last_name" }

// FilterPlaceholder returns the filter placeholder.
func (*Payments) FilterPlaceholder() string { return "Search by student name..." }

// Columns returns the payment columns.
func (*Payments) Columns() model1.Columns[dao.Record] {
	return model1.Columns[dao.Record]{
		SelectCol(),
		{
			ID:       "id",
			Header:   "REF",
			Accessor: Field("id"),
			Cell:     func(r dao.Record) string { return "#" + r.Text("id") },
		},
		{
			ID:       "last_name",
			Header:   "STUDENT",
			Accessor: Field("last_name"),
			Cell:     FullName,
		},
		FieldCol("fee_title", "FEE"),
		{
			ID:       "payment_method",
			Header:   "METHOD",
			Accessor: Field("payment_method"),
			Cell:     func(r dao.Record) string { return Missing(r.Text("payment_method")) },
		},
		DateCol("payment_date", "DATE"),
		MoneyCol("amount_paid", "AMOUNT"),
	}
}
