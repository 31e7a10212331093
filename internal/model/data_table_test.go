package model

import (
	"fmt"
	"strings"
	"testing"

	"github.com/fundboard/fundboard/internal/model1"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type student struct {
	ID    string
	Name  string
	Class string
	Fees  float64
}

func studentColumns() model1.Columns[student] {
	return model1.Columns[student]{
		{ID: "select", Header: "[ ]"},
		{ID: "name", Header: "Name", Accessor: func(s student) any { return s.Name }},
		{ID: "class", Header: "Class", Accessor: func(s student) any { return s.Class }},
		{ID: "fees", Header: "Fees", Accessor: func(s student) any { return s.Fees }},
		{ID: "id", Header: "ID", Accessor: func(s student) any { return s.ID }, DisableSorting: true},
	}
}

func studentID(s student, _ int) string { return s.ID }

func makeStudents(n int) []student {
	ss := make([]student, n)
	for i := range ss {
		ss[i] = student{
			ID:    fmt.Sprintf("s%02d", i),
			Name:  fmt.Sprintf("Student %d", i),
			Class: []string{"P5", "P6"}[i%2],
			Fees:  float64(i * 100),
		}
	}
	return ss
}

func newStudentTable(rows []student, opts Options[student]) *DataTable[student] {
	if opts.SearchColumn == "" {
		opts.SearchColumn = "name"
	}
	if opts.RowID == nil {
		opts.RowID = studentID
	}
	return NewDataTable(studentColumns(), rows, opts)
}

func visibleIDs(t *DataTable[student]) []string {
	return t.PageRows().IDs()
}

type stateRecorder struct {
	states []State
}

func (r *stateRecorder) TableStateChanged(s State) {
	r.states = append(r.states, s)
}

func TestDataTableInitialState(t *testing.T) {
	tb := newStudentTable(makeStudents(3), Options[student]{})

	st := tb.State()
	assert.Empty(t, st.Sorting)
	assert.Empty(t, st.Filters)
	assert.Empty(t, st.Selection)
	assert.Equal(t, model1.Pagination{PageIndex: 0, PageSize: model1.DefaultPageSize}, st.Pagination)
	assert.Equal(t, []string{"s00", "s01", "s02"}, visibleIDs(tb))
	assert.Equal(t, 3, tb.RowCount())
	assert.Equal(t, 1, tb.PageCount())
}

func TestDataTableDefaultRowID(t *testing.T) {
	tb := NewDataTable(studentColumns(), makeStudents(2), Options[student]{})
	assert.Equal(t, []string{"0", "1"}, tb.PageRows().IDs())
}

func TestDataTableSeededSelection(t *testing.T) {
	tb := newStudentTable(makeStudents(3), Options[student]{
		RowSelection: model1.RowSelection{"s01": true, "s02": false},
	})
	assert.Equal(t, model1.NewRowSelection("s01"), tb.Selection())
	assert.True(t, tb.PageRows()[1].Selected)
}

func TestDataTableFilter(t *testing.T) {
	rows := []student{
		{ID: "a", Name: "Alice Mbuyi", Class: "P6"},
		{ID: "b", Name: "Bob Kasongo", Class: "P6"},
		{ID: "c", Name: "ALINE Ilunga", Class: "alice"},
	}
	tb := newStudentTable(rows, Options[student]{})

	tb.SetFilterText("ali")
	assert.Equal(t, "ali", tb.FilterText())
	assert.Equal(t, []string{"a", "c"}, visibleIDs(tb))
	assert.Equal(t, 2, tb.FilteredRowCount())
	assert.Equal(t, 3, tb.RowCount())

	tb.SetFilterText("zzz")
	assert.Empty(t, tb.VisibleRows())
	assert.Equal(t, 0, tb.PageCount())

	tb.SetFilterText("")
	assert.Len(t, tb.VisibleRows(), 3)
	assert.Empty(t, tb.State().Filters)
}

func TestDataTableFilterIdempotent(t *testing.T) {
	tb := newStudentTable(makeStudents(30), Options[student]{})
	var rec stateRecorder
	tb.AddListener(&rec)

	tb.SetFilterText("1")
	once := tb.VisibleRows()
	tb.SetFilterText("1")

	assert.Equal(t, once, tb.VisibleRows())
	assert.Len(t, rec.states, 1)
}

func TestDataTableFilterUnknownColumn(t *testing.T) {
	tb := newStudentTable(makeStudents(3), Options[student]{SearchColumn: "nope"})

	assert.Len(t, tb.VisibleRows(), 3)
	tb.SetFilterText("Student")
	assert.Empty(t, tb.VisibleRows())
}

func TestDataTableFilterClampsPage(t *testing.T) {
	tb := newStudentTable(makeStudents(35), Options[student]{})
	tb.SetPageIndex(3)
	require.Equal(t, 3, tb.Pagination().PageIndex)

	tb.SetFilterText("Student 1")
	assert.Equal(t, 11, tb.FilteredRowCount())
	assert.Equal(t, 1, tb.Pagination().PageIndex)
	assert.Len(t, tb.VisibleRows(), 1)
}

func TestDataTableSortCycle(t *testing.T) {
	rows := []student{
		{ID: "a", Name: "Student 10"},
		{ID: "b", Name: "student 2"},
		{ID: "c", Name: "Student 1"},
	}
	tb := newStudentTable(rows, Options[student]{})

	tb.ToggleSort("name")
	assert.Equal(t, model1.Ascending, tb.SortDirection("name"))
	assert.Equal(t, []string{"c", "b", "a"}, visibleIDs(tb))

	tb.ToggleSort("name")
	assert.Equal(t, model1.Descending, tb.SortDirection("name"))
	assert.Equal(t, []string{"a", "b", "c"}, visibleIDs(tb))

	tb.ToggleSort("name")
	assert.Equal(t, model1.Unsorted, tb.SortDirection("name"))
	assert.Empty(t, tb.Sorting())
	assert.Equal(t, []string{"a", "b", "c"}, visibleIDs(tb))
}

func TestDataTableSortNumeric(t *testing.T) {
	rows := []student{
		{ID: "a", Fees: 1000},
		{ID: "b", Fees: 20},
		{ID: "c", Fees: 300},
	}
	tb := newStudentTable(rows, Options[student]{})

	tb.ToggleSort("fees")
	assert.Equal(t, []string{"b", "c", "a"}, visibleIDs(tb))
}

func TestDataTableSortSingleColumn(t *testing.T) {
	tb := newStudentTable(makeStudents(4), Options[student]{})

	tb.ToggleSort("class")
	tb.ToggleSort("fees")
	assert.Equal(t, model1.SortState{{ID: "fees"}}, tb.Sorting())

	tb.ToggleMultiSort("class")
	assert.Equal(t, model1.SortState{{ID: "fees"}, {ID: "class"}}, tb.Sorting())
}

func TestDataTableMultiSort(t *testing.T) {
	rows := []student{
		{ID: "a", Class: "P6", Fees: 10},
		{ID: "b", Class: "P5", Fees: 30},
		{ID: "c", Class: "P6", Fees: 5},
		{ID: "d", Class: "P5", Fees: 1},
	}
	tb := newStudentTable(rows, Options[student]{})

	tb.ToggleMultiSort("class")
	tb.ToggleMultiSort("fees")
	tb.ToggleMultiSort("fees")
	assert.Equal(t, []string{"b", "d", "a", "c"}, visibleIDs(tb))
}

func TestDataTableSortIgnored(t *testing.T) {
	tb := newStudentTable(makeStudents(3), Options[student]{})
	var rec stateRecorder
	tb.AddListener(&rec)

	tb.ToggleSort("id")
	tb.ToggleSort("select")
	tb.ToggleSort("nope")

	assert.Empty(t, tb.Sorting())
	assert.Empty(t, rec.states)
}

func TestDataTableStableSort(t *testing.T) {
	rows := []student{
		{ID: "a", Class: "P6"},
		{ID: "b", Class: "P5"},
		{ID: "c", Class: "P6"},
		{ID: "d", Class: "P5"},
		{ID: "e", Class: "P6"},
	}
	tb := newStudentTable(rows, Options[student]{})
	before := tb.VisibleRows()

	tb.ToggleSort("class")
	assert.Equal(t, []string{"b", "d", "a", "c", "e"}, visibleIDs(tb))
	tb.ToggleSort("class")
	assert.Equal(t, []string{"a", "c", "e", "b", "d"}, visibleIDs(tb))
	tb.ToggleSort("class")

	assert.Equal(t, before, tb.VisibleRows())
}

func TestDataTableSelectionRoundTrip(t *testing.T) {
	tb := newStudentTable(makeStudents(3), Options[student]{
		RowSelection: model1.NewRowSelection("s02"),
	})
	prior := tb.Selection()

	tb.ToggleRowSelected("s00", true)
	assert.True(t, tb.IsSelected("s00"))
	tb.ToggleRowSelected("s00", false)

	assert.Equal(t, prior, tb.Selection())
}

func TestDataTableSelectUnknownRow(t *testing.T) {
	var calls int
	tb := newStudentTable(makeStudents(3), Options[student]{
		OnSelectionChange: func(model1.RowSelection) { calls++ },
	})

	tb.ToggleRowSelected("zz", true)
	assert.Empty(t, tb.Selection())
	assert.Zero(t, calls)
}

func TestDataTableDuplicateIDs(t *testing.T) {
	rows := makeStudents(3)
	rows[1].ID = rows[0].ID
	tb := newStudentTable(rows, Options[student]{})

	assert.Equal(t, []string{rows[0].ID, rows[0].ID + "#1", rows[2].ID}, tb.IDs())

	tb.ToggleRowSelected(rows[0].ID, true)
	assert.Equal(t, 1, tb.SelectedFilteredCount())
	assert.True(t, tb.IsSelected(rows[0].ID))
	assert.False(t, tb.IsSelected(rows[0].ID+"#1"))

	tb.ToggleRowSelected(rows[0].ID+"#1", true)
	assert.Equal(t, 2, tb.SelectedFilteredCount())
}

func TestDataTableOnSelectionChange(t *testing.T) {
	var got []model1.RowSelection
	tb := newStudentTable(makeStudents(3), Options[student]{
		OnSelectionChange: func(s model1.RowSelection) { got = append(got, s) },
	})

	tb.ToggleRowSelected("s01", true)
	tb.ToggleRowSelected("s01", true)
	tb.ToggleRowSelected("s02", true)

	require.Len(t, got, 2)
	assert.Equal(t, model1.NewRowSelection("s01"), got[0])
	assert.Equal(t, model1.NewRowSelection("s01", "s02"), got[1])
}

func TestDataTableSelectAllScope(t *testing.T) {
	rows := []student{
		{ID: "a", Name: "Alice"},
		{ID: "b", Name: "Bob"},
		{ID: "c", Name: "Aline"},
	}
	tb := newStudentTable(rows, Options[student]{})

	tb.SetFilterText("ali")
	tb.ToggleAllPageRowsSelected(true)

	assert.Equal(t, model1.NewRowSelection("a", "c"), tb.Selection())
	assert.True(t, tb.AllFilteredRowsSelected())
	assert.Equal(t, 2, tb.SelectedFilteredCount())
}

func TestDataTableSelectAllSpansPages(t *testing.T) {
	tb := newStudentTable(makeStudents(25), Options[student]{})

	tb.ToggleAllPageRowsSelected(true)
	assert.Len(t, tb.Selection(), 25)
	assert.True(t, tb.AllFilteredRowsSelected())
	assert.False(t, tb.SomeFilteredRowsSelected())
}

func TestDataTableDeselectAllKeepsHidden(t *testing.T) {
	rows := []student{
		{ID: "a", Name: "Alice"},
		{ID: "b", Name: "Bob"},
		{ID: "c", Name: "Aline"},
	}
	tb := newStudentTable(rows, Options[student]{
		RowSelection: model1.NewRowSelection("a", "b", "c"),
	})

	tb.SetFilterText("ali")
	tb.ToggleAllPageRowsSelected(false)

	assert.Equal(t, model1.NewRowSelection("b"), tb.Selection())
	assert.Equal(t, 0, tb.SelectedFilteredCount())

	tb.SetFilterText("")
	assert.True(t, tb.SomeFilteredRowsSelected())
	assert.Equal(t, 1, tb.SelectedFilteredCount())
}

func TestDataTableExternalOverride(t *testing.T) {
	var calls int
	rows := []student{{ID: "a"}, {ID: "b"}, {ID: "c"}}
	tb := newStudentTable(rows, Options[student]{
		OnSelectionChange: func(model1.RowSelection) { calls++ },
	})

	tb.ToggleRowSelected("a", true)
	require.Equal(t, 1, calls)

	tb.SetExternalSelection(model1.RowSelection{"b": true})

	assert.Equal(t, model1.RowSelection{"b": true}, tb.Selection())
	assert.Equal(t, 1, calls)
	assert.False(t, tb.PageRows()[0].Selected)
	assert.True(t, tb.PageRows()[1].Selected)
}

func TestDataTableSharedStore(t *testing.T) {
	store := NewSelectionStore(nil)
	rows := makeStudents(3)
	t1 := newStudentTable(rows, Options[student]{Selection: store})
	t2 := newStudentTable(rows, Options[student]{Selection: store})
	defer t2.Close()

	t1.ToggleRowSelected("s01", true)
	assert.True(t, t2.IsSelected("s01"))

	store.Replace(model1.NewRowSelection("s02"))
	assert.Equal(t, model1.NewRowSelection("s02"), t1.Selection())

	var rec stateRecorder
	t1.AddListener(&rec)
	t1.Close()
	store.Clear()
	assert.Empty(t, rec.states)
	assert.Empty(t, t1.Selection())
}

func TestDataTablePaginationBoundary(t *testing.T) {
	uu := map[string]struct {
		rows, size, pages int
	}{
		"exact":   {rows: 20, size: 10, pages: 2},
		"partial": {rows: 21, size: 10, pages: 3},
		"small":   {rows: 3, size: 10, pages: 1},
		"one":     {rows: 5, size: 1, pages: 5},
		"none":    {rows: 0, size: 10, pages: 0},
	}

	for k := range uu {
		u := uu[k]
		t.Run(k, func(t *testing.T) {
			tb := newStudentTable(makeStudents(u.rows), Options[student]{PageSize: u.size})
			assert.Equal(t, u.pages, tb.PageCount())

			for i := 0; i < u.pages+2; i++ {
				tb.NextPage()
				assert.LessOrEqual(t, tb.Pagination().PageIndex, max(u.pages-1, 0))
			}
			assert.False(t, tb.CanNextPage())
			assert.Equal(t, max(u.pages-1, 0), tb.Pagination().PageIndex)
		})
	}
}

func TestDataTablePaging(t *testing.T) {
	tb := newStudentTable(makeStudents(25), Options[student]{})

	assert.False(t, tb.CanPreviousPage())
	assert.True(t, tb.CanNextPage())
	tb.PreviousPage()
	assert.Equal(t, 0, tb.Pagination().PageIndex)

	tb.NextPage()
	tb.NextPage()
	assert.Equal(t, []string{"s20", "s21", "s22", "s23", "s24"}, visibleIDs(tb))
	assert.True(t, tb.CanPreviousPage())

	tb.SetPageIndex(-4)
	assert.Equal(t, 0, tb.Pagination().PageIndex)
	tb.SetPageIndex(99)
	assert.Equal(t, 2, tb.Pagination().PageIndex)
}

func TestDataTableSetPageSize(t *testing.T) {
	tb := newStudentTable(makeStudents(45), Options[student]{})
	tb.SetPageIndex(3)
	require.Equal(t, "s30", visibleIDs(tb)[0])

	tb.SetPageSize(20)
	assert.Equal(t, model1.Pagination{PageIndex: 1, PageSize: 20}, tb.Pagination())
	assert.Contains(t, visibleIDs(tb), "s30")

	tb.SetPageSize(50)
	assert.Equal(t, model1.Pagination{PageIndex: 0, PageSize: 50}, tb.Pagination())
	assert.Len(t, tb.VisibleRows(), 45)

	tb.SetPageSize(0)
	tb.SetPageSize(-1)
	assert.Equal(t, 50, tb.Pagination().PageSize)
}

func TestDataTableEmpty(t *testing.T) {
	tb := newStudentTable(nil, Options[student]{})

	assert.NotNil(t, tb.VisibleRows())
	assert.Empty(t, tb.VisibleRows())
	assert.Empty(t, tb.PageRows())
	assert.Equal(t, 0, tb.PageCount())
	assert.False(t, tb.CanNextPage())
	assert.False(t, tb.CanPreviousPage())
	assert.False(t, tb.AllFilteredRowsSelected())

	tb.ToggleAllPageRowsSelected(true)
	tb.SetFilterText("x")
	tb.NextPage()
	tb.ToggleSort("name")
	assert.Empty(t, tb.VisibleRows())
	assert.Empty(t, tb.Selection())
}

func TestDataTableSetData(t *testing.T) {
	tb := newStudentTable(makeStudents(30), Options[student]{
		RowSelection: model1.NewRowSelection("s01"),
	})
	tb.ToggleSort("fees")
	tb.ToggleSort("fees")
	tb.SetPageIndex(2)

	tb.SetData(makeStudents(12))

	assert.Equal(t, 12, tb.RowCount())
	assert.Equal(t, 1, tb.Pagination().PageIndex)
	assert.Equal(t, model1.Descending, tb.SortDirection("fees"))
	assert.Equal(t, []string{"s01", "s00"}, visibleIDs(tb))
	assert.True(t, tb.PageRows()[0].Selected)
}

func TestDataTableListeners(t *testing.T) {
	tb := newStudentTable(makeStudents(12), Options[student]{})
	var rec stateRecorder
	tb.AddListener(&rec)

	tb.ToggleSort("name")
	tb.NextPage()
	tb.ToggleRowSelected("s00", true)
	tb.SetExternalSelection(model1.NewRowSelection("s03"))

	require.Len(t, rec.states, 4)
	assert.Equal(t, model1.SortState{{ID: "name"}}, rec.states[0].Sorting)
	assert.Equal(t, 1, rec.states[1].Pagination.PageIndex)
	assert.Equal(t, model1.NewRowSelection("s00"), rec.states[2].Selection)
	assert.Equal(t, model1.NewRowSelection("s03"), rec.states[3].Selection)

	tb.RemoveListener(&rec)
	tb.NextPage()
	tb.PreviousPage()
	assert.Len(t, rec.states, 4)
}

func TestDataTableFilteredRows(t *testing.T) {
	tb := newStudentTable(makeStudents(25), Options[student]{})
	tb.SetFilterText("student 2")

	rr := tb.FilteredRows()
	assert.Len(t, rr, 6)
	for _, r := range rr {
		assert.True(t, strings.HasPrefix(r.Original.Name, "Student 2"))
	}
}
