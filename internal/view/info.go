package view

import (
	"fmt"

	"github.com/derailed/tcell/v2"
	"github.com/derailed/tview"
	"github.com/fundboard/fundboard/internal/aws"
	"github.com/fundboard/fundboard/internal/dao"
	"github.com/fundboard/fundboard/internal/render"
)

// Info displays the session, the row source and the AWS account.
type Info struct {
	*tview.Table
}

// NewInfo returns a new info header.
func NewInfo() *Info {
	i := Info{Table: tview.NewTable()}
	i.SetBorderPadding(0, 0, 1, 1)
	i.SetBackgroundColor(tcell.ColorDefault)
	i.SetSelectable(false, false)

	return &i
}

// InfoLines returns the header labels and values.
func InfoLines(s *dao.Session, source string, conn aws.Connection, version string) [][2]string {
	session := "none"
	if s.Valid() {
		session = fmt.Sprintf("school %s", render.NA(s.SchoolID))
		if s.Role != "" {
			session += " (" + s.Role + ")"
		}
	}
	account := render.MissingValue
	if conn != nil {
		account = fmt.Sprintf("%s@%s %s", conn.ActiveProfile(), conn.ActiveRegion(), conn.AccountID())
	}

	return [][2]string{
		{"Session:", session},
		{"Source:", source},
		{"AWS:", account},
		{"Rev:", render.NA(version)},
	}
}

// Update redraws the header.
func (i *Info) Update(lines [][2]string) {
	i.Clear()
	for row, l := range lines {
		i.SetCell(row, 0, tview.NewTableCell(l[0]).
			SetTextColor(tcell.ColorOrange).
			SetAttributes(tcell.AttrBold).
			SetSelectable(false))
		i.SetCell(row, 1, tview.NewTableCell(tview.Escape(l[1])).
			SetTextColor(tcell.ColorWhite).
			SetSelectable(false))
	}
}
