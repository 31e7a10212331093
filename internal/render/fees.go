package render

import (
	"fmt"

	"github.com/derailed/tcell/v2"
	"github.com/fundboard/fundboard/internal/dao"
	"github.com/fundboard/fundboard/internal/model1"
)

// Fees renders each student's fee balance.
type Fees struct {
	Base
}

// Name returns the view name.
func (*Fees) Name() string { return "fees" }

// Title returns the view title.
func (*Fees) Title() string { return "Fee Balances" }

// Endpoint returns the fee status endpoint.
func (*Fees) Endpoint() string { return "/finance/students-status/{school_id}" }

// SearchColumn returns the filtered column.
func (*Fees) SearchColumn() string { return "last_name" }

// FilterPlaceholder returns the filter placeholder.
func (*Fees) FilterPlaceholder() string { return "Search by student name..." }

// Columns returns the fee balance columns.
func (*Fees) Columns() model1.Columns[dao.Record] {
	return model1.Columns[dao.Record]{
		SelectCol(),
		{
			ID:       "last_name",
			Header:   "STUDENT",
			Accessor: Field("last_name"),
			Cell:     FullName,
		},
		{
			ID:       "class_name",
			Header:   "CLASS",
			Accessor: Field("class_name"),
			Cell:     func(r dao.Record) string { return NA(r.Text("class_name")) },
		},
		{
			ID:     "progress",
			Header: "PROGRESS",
			Cell:   progress,
			Attrs:  model1.Attrs{Numeric: true},
		},
		MoneyCol("total_due", "TOTAL DUE"),
		MoneyCol("total_paid", "PAID"),
		MoneyCol("remaining_balance", "BALANCE"),
	}
}

// progress renders the paid share of the total due. Settled balances are flagged.
func progress(r dao.Record) string {
	due, _ := AsFloat(r.Get("total_due"))
	paid, _ := AsFloat(r.Get("total_paid"))
	balance, _ := AsFloat(r.Get("remaining_balance"))

	p := fmt.Sprintf("%d%%", Percent(paid, due))
	if balance <= 0 && due > 0 {
		p += " ✓"
	}
	return p
}

// RowColor shows settled balances in green and untouched ones in red.
func (*Fees) RowColor(r dao.Record) tcell.Color {
	due, _ := AsFloat(r.Get("total_due"))
	paid, _ := AsFloat(r.Get("total_paid"))
	balance, _ := AsFloat(r.Get("remaining_balance"))

	switch {
	case due > 0 && balance <= 0:
		return model1.CompletedColor
	case due > 0 && paid == 0:
		return model1.ErrColor
	default:
		return model1.StdColor
	}
}
