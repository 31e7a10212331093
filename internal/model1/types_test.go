package model1

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortDirectionNext(t *testing.T) {
	assert.Equal(t, Ascending, Unsorted.Next())
	assert.Equal(t, Descending, Ascending.Next())
	assert.Equal(t, Unsorted, Descending.Next())
}

func TestSortStateWith(t *testing.T) {
	s := SortState{{ID: "a"}, {ID: "b", Desc: true}}

	assert.Equal(t, SortState{{ID: "a", Desc: true}, {ID: "b", Desc: true}}, s.With("a", Descending))
	assert.Equal(t, SortState{{ID: "b", Desc: true}}, s.With("a", Unsorted))
	assert.Equal(t, SortState{{ID: "a"}, {ID: "b", Desc: true}, {ID: "c"}}, s.With("c", Ascending))
	assert.Equal(t, SortState{{ID: "a"}, {ID: "b", Desc: true}}, s)
	assert.Equal(t, Descending, s.Direction("b"))
	assert.Equal(t, Unsorted, s.Direction("c"))
}

func TestPagination(t *testing.T) {
	uu := map[string]struct {
		p          Pagination
		n          int
		count      int
		start, end int
		clamped    int
	}{
		"empty":    {p: Pagination{PageIndex: 2, PageSize: 10}, n: 0, count: 0, start: 0, end: 0, clamped: 0},
		"first":    {p: Pagination{PageSize: 10}, n: 25, count: 3, start: 0, end: 10},
		"last":     {p: Pagination{PageIndex: 2, PageSize: 10}, n: 25, count: 3, start: 20, end: 25, clamped: 2},
		"beyond":   {p: Pagination{PageIndex: 5, PageSize: 10}, n: 25, count: 3, start: 25, end: 25, clamped: 2},
		"exact":    {p: Pagination{PageIndex: 1, PageSize: 5}, n: 10, count: 2, start: 5, end: 10, clamped: 1},
		"negative": {p: Pagination{PageIndex: -1, PageSize: 5}, n: 10, count: 2, start: 0, end: 0, clamped: 0},
	}

	for k := range uu {
		u := uu[k]
		t.Run(k, func(t *testing.T) {
			assert.Equal(t, u.count, u.p.PageCount(u.n))
			s, e := u.p.Bounds(u.n)
			assert.Equal(t, u.start, s)
			assert.Equal(t, u.end, e)
			assert.Equal(t, u.clamped, u.p.Clamp(u.n).PageIndex)
		})
	}
}

func TestRowSelection(t *testing.T) {
	s := RowSelection{"b": true, "a": true, "c": false}

	assert.Equal(t, 2, s.Len())
	assert.Equal(t, []string{"a", "b"}, s.Keys())
	assert.True(t, s.Equal(NewRowSelection("a", "b")))
	assert.False(t, s.Equal(NewRowSelection("a")))
	assert.Equal(t, NewRowSelection("a", "b"), s.Normalize())
	assert.False(t, s.Has("c"))
}

func TestColumns(t *testing.T) {
	cc := Columns[map[string]any]{
		{ID: "select"},
		{ID: "name", Header: "Name", Accessor: func(r map[string]any) any { return r["name"] }},
		{ID: "phone", Attrs: Attrs{Wide: true}, Accessor: func(r map[string]any) any { return r["phone"] }},
	}

	assert.Equal(t, []string{"select", "name"}, cc.IDs(false))
	assert.Equal(t, []string{"select", "name", "phone"}, cc.IDs(true))
	assert.Len(t, cc.Narrow(), 2)

	_, ok := cc.IndexOf("phone", false)
	assert.False(t, ok)
	c, ok := cc.Find("phone")
	assert.True(t, ok)
	assert.True(t, c.CanSort())

	sel, _ := cc.Find("select")
	assert.False(t, sel.CanSort())
	assert.False(t, sel.CanFilter())
	assert.Nil(t, sel.Value(nil))
	assert.Equal(t, "select", sel.Label(Unsorted))
	assert.Equal(t, "Ada", cc[1].Render(map[string]any{"name": "Ada"}))
}
