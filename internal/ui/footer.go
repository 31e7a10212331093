package ui

import (
	"fmt"

	"github.com/derailed/tcell/v2"
	"github.com/derailed/tview"
)

// FooterState summarizes a table's selection and paging.
type FooterState struct {
	Selected  int
	Filtered  int
	PageIndex int
	PageCount int
	PageSize  int
}

// SelectionText returns the selection summary.
func (s FooterState) SelectionText() string {
	return fmt.Sprintf("%d row(s) selected of %d", s.Selected, s.Filtered)
}

// PageText returns the page position. An empty table reads as page 1 of 1.
func (s FooterState) PageText() string {
	return fmt.Sprintf("Page %d / %d", s.PageIndex+1, max(s.PageCount, 1))
}

// Footer shows the selection summary and page controls under a table.
type Footer struct {
	*tview.TextView
}

// NewFooter returns a new footer.
func NewFooter() *Footer {
	f := Footer{TextView: tview.NewTextView()}
	f.SetDynamicColors(true)
	f.SetBackgroundColor(tcell.ColorDefault)
	f.SetBorderPadding(0, 0, 1, 1)

	return &f
}

// Update redraws the footer.
func (f *Footer) Update(s FooterState) {
	f.Clear()
	_, _ = fmt.Fprintf(f, "[gray::-]%s[-::-]    [white::b]%s[-::-]    [gray::-]<p> %d per page[-::-]",
		s.SelectionText(), s.PageText(), s.PageSize)
}
