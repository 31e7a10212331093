// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of fundboard

package ui

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/derailed/tcell/v2"
	"github.com/derailed/tview"
	"github.com/fundboard/fundboard/internal/model"
	"github.com/fundboard/fundboard/internal/model1"
	"github.com/fundboard/fundboard/internal/render"
)

const (
	titleFmt       = " [aqua::b]%s[white::-][[green::b]%d[white::-]] "
	filterTitleFmt = " [aqua::b]%s[white::-][[green::b]%d[white::-]] [yellow::b]</%s>[white::-] "
	errorTitleFmt  = " [aqua::b]%s[white::-][[red::b]error[white::-]] "

	noDataMsg  = "No rows"
	noMatchMsg = "No rows match"

	ascMarker  = "▲"
	descMarker = "▼"
)

// Table renders the current page of a data table.
type Table[R any] struct {
	*tview.Table

	name      string
	model     *model.DataTable[R]
	actions   *KeyActions
	footer    *Footer
	pageSizes []int
	wide      bool
	colCursor int
	lastPage  int
	loadErr   error
	queueFn   func(func())
	filterFn  func()
	colorer   model1.ColorerFunc[R]
	mx        sync.RWMutex
}

// NewTable returns a table widget over m.
func NewTable[R any](name string, m *model.DataTable[R], pageSizes []int) *Table[R] {
	if len(pageSizes) == 0 {
		pageSizes = []int{m.Pagination().PageSize}
	}

	return &Table[R]{
		Table:     tview.NewTable(),
		name:      name,
		model:     m,
		actions:   NewKeyActions(),
		footer:    NewFooter(),
		pageSizes: pageSizes,
		queueFn:   func(f func()) { f() },
		colorer:   model1.DefaultColorer[R],
	}
}

// Init initializes the table component.
func (t *Table[R]) Init(context.Context) error {
	t.SetFixed(1, 0)
	t.SetBorder(true)
	t.SetBorderAttributes(tcell.AttrBold)
	t.SetBorderPadding(0, 0, 1, 1)
	t.SetSelectable(true, false)
	t.SetBackgroundColor(tcell.ColorDefault)
	t.SetBorderColor(tcell.ColorDodgerBlue)
	t.SetInputCapture(t.keyboard)
	t.bindKeys()

	t.model.AddListener(t)
	t.Refresh()

	return nil
}

// Start starts the component.
func (*Table[R]) Start() {}

// Stop stops the component.
func (*Table[R]) Stop() {}

// Close detaches the table from its model.
func (t *Table[R]) Close() {
	t.model.RemoveListener(t)
}

// Name returns the table name.
func (t *Table[R]) Name() string {
	return t.name
}

// Model returns the table model.
func (t *Table[R]) Model() *model.DataTable[R] {
	return t.model
}

// Footer returns the footer widget.
func (t *Table[R]) Footer() *Footer {
	return t.footer
}

// Actions returns the key actions.
func (t *Table[R]) Actions() *KeyActions {
	return t.actions
}

// Hints returns menu hints for key bindings.
func (t *Table[R]) Hints() MenuHints {
	return t.actions.Hints()
}

// SetQueueFn sets how redraws are scheduled on the ui goroutine.
func (t *Table[R]) SetQueueFn(fn func(func())) {
	t.mx.Lock()
	defer t.mx.Unlock()

	t.queueFn = fn
}

// SetFilterFn sets the callback opening the filter prompt.
func (t *Table[R]) SetFilterFn(fn func()) {
	t.mx.Lock()
	defer t.mx.Unlock()

	t.filterFn = fn
}

// SetColorer sets the row text colorer. Selected rows stay highlighted.
func (t *Table[R]) SetColorer(fn model1.ColorerFunc[R]) {
	t.mx.Lock()
	defer t.mx.Unlock()

	if fn == nil {
		fn = model1.DefaultColorer[R]
	}
	t.colorer = fn
}

// SetLoadError flags the title with a load failure. A nil error clears it.
func (t *Table[R]) SetLoadError(err error) {
	t.mx.Lock()
	t.loadErr = err
	t.mx.Unlock()

	t.queue(t.Refresh)
}

// TableStateChanged implements model.StateListener.
func (t *Table[R]) TableStateChanged(model.State) {
	t.queue(t.Refresh)
}

// Refresh redraws the header, the page rows, the title and the footer.
func (t *Table[R]) Refresh() {
	cols := t.columns()
	rows := t.model.PageRows()
	pag := t.model.Pagination()

	row, _ := t.GetSelection()
	t.mx.RLock()
	colorer := t.colorer
	t.mx.RUnlock()

	t.Clear()
	t.buildHeader(cols)
	for i, r := range rows {
		t.buildRow(i+1, cols, r, colorer)
	}

	t.mx.Lock()
	if pag.PageIndex != t.lastPage {
		row, t.lastPage = 1, pag.PageIndex
	}
	t.mx.Unlock()

	if len(rows) == 0 {
		t.showEmpty()
	} else {
		t.Select(max(1, min(row, len(rows))), 0)
	}

	t.updateTitle()
	t.footer.Update(t.FooterState())
}

// FooterState returns the footer summary.
func (t *Table[R]) FooterState() FooterState {
	pag := t.model.Pagination()

	return FooterState{
		Selected:  t.model.SelectedFilteredCount(),
		Filtered:  t.model.FilteredRowCount(),
		PageIndex: pag.PageIndex,
		PageCount: t.model.PageCount(),
		PageSize:  pag.PageSize,
	}
}

// SelectedRowID returns the ID of the row under the cursor.
func (t *Table[R]) SelectedRowID() (string, bool) {
	row, _ := t.GetSelection()
	if row < 1 {
		return "", false
	}
	c := t.GetCell(row, 0)
	if c == nil {
		return "", false
	}
	id, ok := c.GetReference().(string)

	return id, ok
}

// SortCursor returns the ID of the column under the header cursor.
func (t *Table[R]) SortCursor() string {
	cols := t.columns()
	t.mx.RLock()
	defer t.mx.RUnlock()

	if t.colCursor < 0 || t.colCursor >= len(cols) {
		return ""
	}
	return cols[t.colCursor].ID
}

func (t *Table[R]) queue(f func()) {
	t.mx.RLock()
	fn := t.queueFn
	t.mx.RUnlock()

	fn(f)
}

func (t *Table[R]) columns() model1.Columns[R] {
	t.mx.RLock()
	wide := t.wide
	t.mx.RUnlock()

	if wide {
		return t.model.Columns()
	}
	return t.model.Columns().Narrow()
}

func (t *Table[R]) buildHeader(cols model1.Columns[R]) {
	sorting := t.model.Sorting()
	cursor := t.SortCursor()

	for col, c := range cols {
		var text string
		if c.ID == render.SelectColumn {
			text = Checkbox(t.model.AllFilteredRowsSelected(), t.model.SomeFilteredRowsSelected())
		} else {
			text = HeaderLabel(c.Label(sorting.Direction(c.ID)), sorting, c.ID)
		}

		cell := tview.NewTableCell(tview.Escape(text))
		cell.SetTextColor(tcell.ColorWhite)
		cell.SetAttributes(tcell.AttrBold)
		cell.SetBackgroundColor(tcell.ColorDefault)
		cell.SetAlign(alignOf(c))
		cell.SetExpansion(1)
		cell.SetSelectable(false)
		if c.ID == cursor && c.CanSort() {
			cell.SetTextColor(tcell.ColorYellow)
		}
		t.SetCell(0, col, cell)
	}
}

func (t *Table[R]) buildRow(r int, cols model1.Columns[R], row model1.Row[R], colorer model1.ColorerFunc[R]) {
	fg := rowColor(row, colorer)
	for col, c := range cols {
		var text string
		if c.ID == render.SelectColumn {
			text = Checkbox(row.Selected, false)
		} else {
			text = c.Render(row.Original)
		}

		cell := tview.NewTableCell(tview.Escape(text))
		cell.SetTextColor(fg)
		cell.SetBackgroundColor(tcell.ColorDefault)
		cell.SetAlign(alignOf(c))
		cell.SetExpansion(1)
		if col == 0 {
			cell.SetReference(row.ID)
		}
		t.SetCell(r, col, cell)
	}
}

func rowColor[R any](row model1.Row[R], colorer model1.ColorerFunc[R]) tcell.Color {
	if row.Selected {
		return model1.HighlightColor
	}
	return colorer(row)
}

func (t *Table[R]) showEmpty() {
	msg := noMatchMsg
	if t.model.RowCount() == 0 {
		msg = noDataMsg
	}
	cell := tview.NewTableCell(msg)
	cell.SetTextColor(tcell.ColorGray)
	cell.SetAlign(tview.AlignLeft)
	cell.SetSelectable(false)
	t.SetCell(1, 0, cell)
}

func (t *Table[R]) updateTitle() {
	t.mx.RLock()
	err := t.loadErr
	t.mx.RUnlock()

	t.SetTitle(Title(t.name, t.model.FilteredRowCount(), t.model.FilterText(), err))
}

func (t *Table[R]) bindKeys() {
	t.actions.Bulk(KeyMap{
		KeySpace:        NewKeyAction("Mark", t.toggleRowCmd, true),
		KeyA:            NewKeyAction("Mark All", t.toggleAllCmd, true),
		KeyS:            NewKeyAction("Sort", t.sortCmd(false), true),
		KeyShiftS:       NewKeyAction("Multi Sort", t.sortCmd(true), true),
		KeyLeftBracket:  NewKeyAction("Prev Page", t.prevPageCmd, true),
		KeyRightBracket: NewKeyAction("Next Page", t.nextPageCmd, true),
		KeyP:            NewKeyAction("Page Size", t.pageSizeCmd, true),
		KeySlash:        NewKeyAction("Filter", t.filterCmd, true),
		KeyW:            NewKeyAction("Wide", t.wideCmd, true),
		tcell.KeyEscape: NewKeyAction("Clear Filter", t.clearFilterCmd, false),
		KeyH:            NewKeyAction("Column Left", t.moveColumnCmd(-1), false),
		KeyL:            NewKeyAction("Column Right", t.moveColumnCmd(1), false),
		tcell.KeyLeft:   NewKeyAction("Column Left", t.moveColumnCmd(-1), false),
		tcell.KeyRight:  NewKeyAction("Column Right", t.moveColumnCmd(1), false),
		KeyJ:            NewKeyAction("Down", t.moveRowCmd(1), false),
		KeyK:            NewKeyAction("Up", t.moveRowCmd(-1), false),
	})
}

func (t *Table[R]) keyboard(evt *tcell.EventKey) *tcell.EventKey {
	if a, ok := t.actions.Get(AsKey(evt)); ok {
		return a.Action(evt)
	}

	return evt
}

func (t *Table[R]) toggleRowCmd(*tcell.EventKey) *tcell.EventKey {
	if id, ok := t.SelectedRowID(); ok {
		t.model.ToggleRowSelected(id, !t.model.IsSelected(id))
	}

	return nil
}

func (t *Table[R]) toggleAllCmd(*tcell.EventKey) *tcell.EventKey {
	t.model.ToggleAllPageRowsSelected(!t.model.AllFilteredRowsSelected())

	return nil
}

func (t *Table[R]) sortCmd(multi bool) ActionHandler {
	return func(*tcell.EventKey) *tcell.EventKey {
		id := t.SortCursor()
		if id == "" {
			return nil
		}
		if multi {
			t.model.ToggleMultiSort(id)
		} else {
			t.model.ToggleSort(id)
		}

		return nil
	}
}

func (t *Table[R]) prevPageCmd(*tcell.EventKey) *tcell.EventKey {
	t.model.PreviousPage()

	return nil
}

func (t *Table[R]) nextPageCmd(*tcell.EventKey) *tcell.EventKey {
	t.model.NextPage()

	return nil
}

func (t *Table[R]) pageSizeCmd(*tcell.EventKey) *tcell.EventKey {
	t.model.SetPageSize(NextPageSize(t.pageSizes, t.model.Pagination().PageSize))

	return nil
}

func (t *Table[R]) filterCmd(evt *tcell.EventKey) *tcell.EventKey {
	t.mx.RLock()
	fn := t.filterFn
	t.mx.RUnlock()

	if fn == nil {
		return evt
	}
	fn()

	return nil
}

func (t *Table[R]) clearFilterCmd(evt *tcell.EventKey) *tcell.EventKey {
	if t.model.FilterText() == "" {
		return evt
	}
	t.model.SetFilterText("")

	return nil
}

func (t *Table[R]) wideCmd(*tcell.EventKey) *tcell.EventKey {
	t.mx.Lock()
	t.wide = !t.wide
	t.mx.Unlock()
	t.Refresh()

	return nil
}

func (t *Table[R]) moveColumnCmd(delta int) ActionHandler {
	return func(*tcell.EventKey) *tcell.EventKey {
		n := len(t.columns())
		if n == 0 {
			return nil
		}
		t.mx.Lock()
		t.colCursor = (t.colCursor + delta + n) % n
		t.mx.Unlock()
		t.Refresh()

		return nil
	}
}

func (t *Table[R]) moveRowCmd(delta int) ActionHandler {
	return func(*tcell.EventKey) *tcell.EventKey {
		row, col := t.GetSelection()
		if next := row + delta; next >= 1 && next < t.GetRowCount() {
			t.Select(next, col)
		}

		return nil
	}
}

// Checkbox renders a selection box: checked, partial or empty.
func Checkbox(checked, partial bool) string {
	switch {
	case checked:
		return "[x]"
	case partial:
		return "[-]"
	default:
		return "[ ]"
	}
}

// HeaderLabel decorates a column label with its sort marker. The marker
// carries the sort priority when several columns are sorted.
func HeaderLabel(label string, sorting model1.SortState, id string) string {
	for i, s := range sorting {
		if s.ID != id {
			continue
		}
		marker := ascMarker
		if s.Desc {
			marker = descMarker
		}
		if len(sorting) > 1 {
			marker += strconv.Itoa(i + 1)
		}
		return label + " " + marker
	}

	return label
}

// Title formats a table title.
func Title(name string, count int, filter string, err error) string {
	switch {
	case err != nil:
		return fmt.Sprintf(errorTitleFmt, name)
	case filter != "":
		return fmt.Sprintf(filterTitleFmt, name, count, tview.Escape(filter))
	default:
		return fmt.Sprintf(titleFmt, name, count)
	}
}

// NextPageSize returns the page size following current, wrapping around.
func NextPageSize(sizes []int, current int) int {
	for _, s := range sizes {
		if s > current {
			return s
		}
	}
	if len(sizes) == 0 {
		return current
	}

	return sizes[0]
}

func alignOf[R any](c model1.Column[R]) int {
	switch {
	case c.Align != 0:
		return c.Align
	case c.Numeric:
		return tview.AlignRight
	default:
		return tview.AlignLeft
	}
}
