package model

import (
	"sort"
	"strconv"
	"sync"

	"github.com/fundboard/fundboard/internal/model1"
)

// Options configures a DataTable.
type Options[R any] struct {
	// SearchColumn is the column the free-text filter targets.
	SearchColumn string

	// FilterPlaceholder is shown in an empty filter prompt.
	FilterPlaceholder string

	// OnSelectionChange is called synchronously after every selection change made
	// through the table.
	OnSelectionChange func(model1.RowSelection)

	// RowSelection seeds the selection when no Selection store is given.
	RowSelection model1.RowSelection

	// Selection is the owner's selection store. When nil the table creates its own.
	Selection *SelectionStore

	// RowID returns a row identifier. Defaults to the row's source index.
	// Repeated identifiers get the row index appended, e.g. "7#1".
	RowID func(row R, index int) string

	// PageSize defaults to model1.DefaultPageSize.
	PageSize int
}

// DataTable tracks filtering, sorting, pagination and selection over a row set.
type DataTable[R any] struct {
	columns    model1.Columns[R]
	rows       []R
	ids        []string
	index      map[string]int
	opts       Options[R]
	sorting    model1.SortState
	filters    model1.ColumnFilters
	pagination model1.Pagination
	rowModel   []int
	store      *SelectionStore
	unsub      func()
	listeners  []StateListener
	mx         sync.RWMutex
}

// NewDataTable returns a table over rows rendered through columns.
func NewDataTable[R any](columns model1.Columns[R], rows []R, opts Options[R]) *DataTable[R] {
	if opts.PageSize <= 0 {
		opts.PageSize = model1.DefaultPageSize
	}
	if opts.RowID == nil {
		opts.RowID = func(_ R, i int) string { return strconv.Itoa(i) }
	}
	store := opts.Selection
	if store == nil {
		store = NewSelectionStore(opts.RowSelection)
	}

	t := &DataTable[R]{
		columns:    columns.Clone(),
		opts:       opts,
		sorting:    model1.SortState{},
		filters:    model1.ColumnFilters{},
		pagination: model1.Pagination{PageSize: opts.PageSize},
		store:      store,
	}
	t.setRows(rows)
	t.unsub = store.AddListener(SelectionListenerFunc(t.selectionChanged))

	return t
}

// Close detaches the table from its selection store.
func (t *DataTable[R]) Close() {
	t.mx.Lock()
	unsub := t.unsub
	t.unsub = nil
	t.mx.Unlock()

	if unsub != nil {
		unsub()
	}
}

// Columns returns the column definitions.
func (t *DataTable[R]) Columns() model1.Columns[R] {
	t.mx.RLock()
	defer t.mx.RUnlock()
	return t.columns
}

// SearchColumn returns the column targeted by the filter text.
func (t *DataTable[R]) SearchColumn() string {
	return t.opts.SearchColumn
}

// FilterPlaceholder returns the filter prompt placeholder.
func (t *DataTable[R]) FilterPlaceholder() string {
	return t.opts.FilterPlaceholder
}

// SelectionStore returns the store holding the table selection.
func (t *DataTable[R]) SelectionStore() *SelectionStore {
	return t.store
}

// AddListener registers a state listener.
func (t *DataTable[R]) AddListener(l StateListener) {
	t.mx.Lock()
	defer t.mx.Unlock()
	t.listeners = append(t.listeners, l)
}

// RemoveListener unregisters a state listener.
func (t *DataTable[R]) RemoveListener(l StateListener) {
	t.mx.Lock()
	defer t.mx.Unlock()

	for i, listener := range t.listeners {
		if listener == l {
			t.listeners = append(t.listeners[:i], t.listeners[i+1:]...)
			return
		}
	}
}

// SetData replaces the source rows, keeping sort, filter and selection.
func (t *DataTable[R]) SetData(rows []R) {
	t.mx.Lock()
	t.setRows(rows)
	t.mx.Unlock()

	t.notify()
}

// RowCount returns the number of source rows.
func (t *DataTable[R]) RowCount() int {
	t.mx.RLock()
	defer t.mx.RUnlock()
	return len(t.rows)
}

// IDs returns the row identifiers in source order.
func (t *DataTable[R]) IDs() []string {
	t.mx.RLock()
	defer t.mx.RUnlock()

	out := make([]string, len(t.ids))
	copy(out, t.ids)
	return out
}

// FilteredRowCount returns the number of rows passing the filter.
func (t *DataTable[R]) FilteredRowCount() int {
	t.mx.RLock()
	defer t.mx.RUnlock()
	return len(t.rowModel)
}

// FilterText returns the search column filter.
func (t *DataTable[R]) FilterText() string {
	t.mx.RLock()
	defer t.mx.RUnlock()
	return t.filters[t.opts.SearchColumn]
}

// SetFilterText replaces the search column filter. The page index is clamped
// into the new page range.
func (t *DataTable[R]) SetFilterText(text string) {
	t.mx.Lock()
	if t.filters[t.opts.SearchColumn] == text {
		t.mx.Unlock()
		return
	}
	if text == "" {
		delete(t.filters, t.opts.SearchColumn)
	} else {
		t.filters[t.opts.SearchColumn] = text
	}
	t.recompute()
	t.mx.Unlock()

	t.notify()
}

// Sorting returns the current sort state.
func (t *DataTable[R]) Sorting() model1.SortState {
	t.mx.RLock()
	defer t.mx.RUnlock()
	return t.sorting.Clone()
}

// SortDirection returns the sort direction of a column.
func (t *DataTable[R]) SortDirection(id string) model1.SortDirection {
	t.mx.RLock()
	defer t.mx.RUnlock()
	return t.sorting.Direction(id)
}

// ToggleSort cycles a column through unsorted, ascending and descending and
// makes it the only sorted column.
func (t *DataTable[R]) ToggleSort(id string) {
	t.toggleSort(id, false)
}

// ToggleMultiSort cycles a column while keeping the other sorted columns.
func (t *DataTable[R]) ToggleMultiSort(id string) {
	t.toggleSort(id, true)
}

func (t *DataTable[R]) toggleSort(id string, multi bool) {
	t.mx.Lock()
	col, ok := t.columns.Find(id)
	if !ok || !col.CanSort() {
		t.mx.Unlock()
		return
	}
	dir := t.sorting.Direction(id).Next()
	if multi {
		t.sorting = t.sorting.With(id, dir)
	} else {
		t.sorting = model1.SortState{}.With(id, dir)
	}
	t.recompute()
	t.mx.Unlock()

	t.notify()
}

// Pagination returns the current pagination state.
func (t *DataTable[R]) Pagination() model1.Pagination {
	t.mx.RLock()
	defer t.mx.RUnlock()
	return t.pagination
}

// PageCount returns the number of pages of filtered rows.
func (t *DataTable[R]) PageCount() int {
	t.mx.RLock()
	defer t.mx.RUnlock()
	return t.pagination.PageCount(len(t.rowModel))
}

// CanPreviousPage returns true unless on the first page.
func (t *DataTable[R]) CanPreviousPage() bool {
	t.mx.RLock()
	defer t.mx.RUnlock()
	return t.pagination.PageIndex > 0
}

// CanNextPage returns true unless on the last page.
func (t *DataTable[R]) CanNextPage() bool {
	t.mx.RLock()
	defer t.mx.RUnlock()
	return t.pagination.PageIndex < t.pagination.PageCount(len(t.rowModel))-1
}

// SetPageSize changes the page size keeping the first visible row on screen.
// Non positive sizes are ignored.
func (t *DataTable[R]) SetPageSize(n int) {
	t.mx.Lock()
	if n <= 0 || n == t.pagination.PageSize {
		t.mx.Unlock()
		return
	}
	top := t.pagination.PageIndex * t.pagination.PageSize
	t.pagination = model1.Pagination{PageIndex: top / n, PageSize: n}.Clamp(len(t.rowModel))
	t.mx.Unlock()

	t.notify()
}

// SetPageIndex moves to page i, clamped into range.
func (t *DataTable[R]) SetPageIndex(i int) {
	t.mx.Lock()
	p := t.pagination
	p.PageIndex = i
	p = p.Clamp(len(t.rowModel))
	if p == t.pagination {
		t.mx.Unlock()
		return
	}
	t.pagination = p
	t.mx.Unlock()

	t.notify()
}

// NextPage moves one page forward. No-op on the last page.
func (t *DataTable[R]) NextPage() {
	if t.CanNextPage() {
		t.SetPageIndex(t.Pagination().PageIndex + 1)
	}
}

// PreviousPage moves one page back. No-op on the first page.
func (t *DataTable[R]) PreviousPage() {
	if t.CanPreviousPage() {
		t.SetPageIndex(t.Pagination().PageIndex - 1)
	}
}

// VisibleRows returns the current page of filtered and sorted rows.
func (t *DataTable[R]) VisibleRows() []R {
	t.mx.RLock()
	defer t.mx.RUnlock()

	start, end := t.pagination.Bounds(len(t.rowModel))
	out := make([]R, 0, end-start)
	for _, i := range t.rowModel[start:end] {
		out = append(out, t.rows[i])
	}
	return out
}

// PageRows returns the current page with row identity and selection.
func (t *DataTable[R]) PageRows() model1.Rows[R] {
	sel := t.store.Selection()

	t.mx.RLock()
	defer t.mx.RUnlock()

	start, end := t.pagination.Bounds(len(t.rowModel))
	out := make(model1.Rows[R], 0, end-start)
	for _, i := range t.rowModel[start:end] {
		out = append(out, model1.Row[R]{
			ID:       t.ids[i],
			Index:    i,
			Original: t.rows[i],
			Selected: sel[t.ids[i]],
		})
	}
	return out
}

// FilteredRows returns every filtered and sorted row.
func (t *DataTable[R]) FilteredRows() model1.Rows[R] {
	sel := t.store.Selection()

	t.mx.RLock()
	defer t.mx.RUnlock()

	out := make(model1.Rows[R], 0, len(t.rowModel))
	for _, i := range t.rowModel {
		out = append(out, model1.Row[R]{
			ID:       t.ids[i],
			Index:    i,
			Original: t.rows[i],
			Selected: sel[t.ids[i]],
		})
	}
	return out
}

// Selection returns the current selection.
func (t *DataTable[R]) Selection() model1.RowSelection {
	return t.store.Selection()
}

// IsSelected returns true if the row is selected.
func (t *DataTable[R]) IsSelected(id string) bool {
	return t.store.IsSelected(id)
}

// ToggleRowSelected selects or deselects one row. Unknown rows are ignored.
func (t *DataTable[R]) ToggleRowSelected(id string, selected bool) {
	t.mx.RLock()
	_, ok := t.index[id]
	t.mx.RUnlock()
	if !ok {
		return
	}

	if selected {
		t.store.Apply(SelectRows(id))
	} else {
		t.store.Apply(DeselectRows(id))
	}
}

// ToggleAllPageRowsSelected selects or deselects every filtered row, including
// rows on other pages. Rows hidden by the filter are left untouched.
func (t *DataTable[R]) ToggleAllPageRowsSelected(selected bool) {
	t.mx.RLock()
	ids := make([]string, 0, len(t.rowModel))
	for _, i := range t.rowModel {
		ids = append(ids, t.ids[i])
	}
	t.mx.RUnlock()

	if len(ids) == 0 {
		return
	}
	if selected {
		t.store.Apply(SelectRows(ids...))
	} else {
		t.store.Apply(DeselectRows(ids...))
	}
}

// SetExternalSelection adopts the owner's selection verbatim.
func (t *DataTable[R]) SetExternalSelection(sel model1.RowSelection) {
	t.store.Replace(sel)
}

// SelectedFilteredCount returns the number of selected rows passing the filter.
func (t *DataTable[R]) SelectedFilteredCount() int {
	sel := t.store.Selection()

	t.mx.RLock()
	defer t.mx.RUnlock()

	n := 0
	for _, i := range t.rowModel {
		if sel[t.ids[i]] {
			n++
		}
	}
	return n
}

// AllFilteredRowsSelected returns true when there are filtered rows and all are selected.
func (t *DataTable[R]) AllFilteredRowsSelected() bool {
	n := t.FilteredRowCount()
	return n > 0 && t.SelectedFilteredCount() == n
}

// SomeFilteredRowsSelected returns true when some but not all filtered rows are selected.
func (t *DataTable[R]) SomeFilteredRowsSelected() bool {
	n := t.SelectedFilteredCount()
	return n > 0 && n < t.FilteredRowCount()
}

// State returns a snapshot of the table state.
func (t *DataTable[R]) State() State {
	sel := t.store.Selection()

	t.mx.RLock()
	defer t.mx.RUnlock()

	return State{
		Sorting:    t.sorting.Clone(),
		Filters:    t.filters.Clone(),
		Selection:  sel,
		Pagination: t.pagination,
	}
}

func (t *DataTable[R]) selectionChanged(c SelectionChange) {
	if c.Origin == OriginLocal && t.opts.OnSelectionChange != nil {
		t.opts.OnSelectionChange(c.Next.Clone())
	}
	t.notify()
}

// setRows expects the write lock to be held.
func (t *DataTable[R]) setRows(rows []R) {
	t.rows = rows
	t.ids = make([]string, len(rows))
	t.index = make(map[string]int, len(rows))
	for i, r := range rows {
		id := t.opts.RowID(r, i)
		for n := i; ; n++ {
			if _, dup := t.index[id]; !dup {
				break
			}
			id = t.opts.RowID(r, i) + "#" + strconv.Itoa(n)
		}
		t.ids[i] = id
		t.index[id] = i
	}
	t.recompute()
}

// recompute rebuilds the filtered and sorted row model. Expects the write lock.
func (t *DataTable[R]) recompute() {
	idx := make([]int, 0, len(t.rows))
	for i, r := range t.rows {
		if t.matches(r) {
			idx = append(idx, i)
		}
	}

	if len(t.sorting) > 0 {
		t.sortRows(idx)
	}

	t.rowModel = idx
	t.pagination = t.pagination.Clamp(len(idx))
}

func (t *DataTable[R]) matches(row R) bool {
	for id, text := range t.filters {
		if text == "" {
			continue
		}
		col, ok := t.columns.Find(id)
		if !ok || !col.CanFilter() {
			return false
		}
		if !model1.Matches(col.Value(row), text) {
			return false
		}
	}
	return true
}

type sortKey struct {
	values []any
	desc   bool
}

func (t *DataTable[R]) sortRows(idx []int) {
	keys := make([]sortKey, 0, len(t.sorting))
	for _, s := range t.sorting {
		col, ok := t.columns.Find(s.ID)
		if !ok || !col.CanSort() {
			continue
		}
		vals := make([]any, len(t.rows))
		for _, i := range idx {
			vals[i] = col.Value(t.rows[i])
		}
		keys = append(keys, sortKey{values: vals, desc: s.Desc})
	}
	if len(keys) == 0 {
		return
	}

	sort.SliceStable(idx, func(a, b int) bool {
		for _, k := range keys {
			c := model1.Compare(k.values[idx[a]], k.values[idx[b]])
			if k.desc {
				c = -c
			}
			if c != 0 {
				return c < 0
			}
		}
		return false
	})
}

func (t *DataTable[R]) notify() {
	t.mx.RLock()
	listeners := make([]StateListener, len(t.listeners))
	copy(listeners, t.listeners)
	t.mx.RUnlock()

	if len(listeners) == 0 {
		return
	}
	state := t.State()
	for _, l := range listeners {
		l.TableStateChanged(state)
	}
}
