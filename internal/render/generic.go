package render

import (
	"sort"
	"strings"

	"github.com/fundboard/fundboard/internal/dao"
	"github.com/fundboard/fundboard/internal/model1"
)

// Generic renders arbitrary records, one column per top level field.
type Generic struct {
	Base

	name   string
	fields []string
}

// NewGeneric returns a renderer for the fields of the given records.
func NewGeneric(name string, rr []dao.Record) *Generic {
	set := make(map[string]struct{})
	for _, r := range rr {
		for k := range r {
			set[k] = struct{}{}
		}
	}
	ff := make([]string, 0, len(set))
	for k := range set {
		ff = append(ff, k)
	}
	sort.Slice(ff, func(i, j int) bool {
		return fieldRank(ff[i]) < fieldRank(ff[j]) ||
			fieldRank(ff[i]) == fieldRank(ff[j]) && ff[i] < ff[j]
	})

	return &Generic{name: name, fields: ff}
}

// Name returns the view name.
func (g *Generic) Name() string { return g.name }

// Title returns the view title.
func (g *Generic) Title() string { return g.name }

// SearchColumn returns the first field.
func (g *Generic) SearchColumn() string {
	if len(g.fields) == 0 {
		return ""
	}
	return g.fields[0]
}

// Columns returns one column per field.
func (g *Generic) Columns() model1.Columns[dao.Record] {
	cc := make(model1.Columns[dao.Record], 0, len(g.fields)+1)
	cc = append(cc, SelectCol())
	for _, f := range g.fields {
		cc = append(cc, FieldCol(f, strings.ToUpper(strings.ReplaceAll(f, "_", " "))))
	}
	return cc
}

// fieldRank pushes identifiers to the end.
func fieldRank(f string) int {
	switch f {
	case "id", "_id", "ID":
		return 1
	default:
		return 0
	}
}
