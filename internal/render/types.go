package render

import (
	"fmt"
	"sort"

	"github.com/derailed/tcell/v2"
	"github.com/fundboard/fundboard/internal/dao"
	"github.com/fundboard/fundboard/internal/model1"
)

const (
	// Record states
	StateActive   = "active"
	StateInactive = "inactive"
	StatePending  = "pending"

	// Display values
	MissingValue = "<none>"
	NAValue      = "N/A"
	Blank        = ""

	// SelectColumn is the ID of the checkbox column.
	SelectColumn = "select"

	// Currency is appended to money amounts.
	Currency = "F"
)

// Renderer describes how a dashboard listing is fetched and drawn.
type Renderer interface {
	// Name returns the view name used on the command line.
	Name() string

	// Title returns the view title.
	Title() string

	// Endpoint returns the backend endpoint listing the records.
	Endpoint() string

	// SearchColumn returns the column the filter applies to.
	SearchColumn() string

	// FilterPlaceholder returns the filter prompt placeholder.
	FilterPlaceholder() string

	// Columns returns the view columns.
	Columns() model1.Columns[dao.Record]
}

// Colorer is implemented by renderers tinting rows by state.
type Colorer interface {
	// RowColor returns the text color of a record.
	RowColor(dao.Record) tcell.Color
}

// ColorerFor returns the renderer row colorer, the default one when it has none.
func ColorerFor(r Renderer) model1.ColorerFunc[dao.Record] {
	if c, ok := r.(Colorer); ok {
		return func(row model1.Row[dao.Record]) tcell.Color {
			return c.RowColor(row.Original)
		}
	}
	return model1.DefaultColorer[dao.Record]
}

var renderers = map[string]Renderer{
	"students": &Students{},
	"fees":     &Fees{},
	"payments": &Payments{},
	"classes":  &Classes{},
	"schools":  &Schools{},
	"parents":  &Parents{},
	"projects": &Projects{},
	"exports":  &Exports{},

	"notifications": &Notifications{},
	"offers":        &Offers{},
	"submissions":   &Submissions{},
}

// RendererFor returns the renderer of a named view.
func RendererFor(name string) (Renderer, error) {
	r, ok := renderers[name]
	if !ok {
		return nil, fmt.Errorf("no view named %q", name)
	}
	return r, nil
}

// Names returns the known view names.
func Names() []string {
	nn := make([]string, 0, len(renderers))
	for n := range renderers {
		nn = append(nn, n)
	}
	sort.Strings(nn)
	return nn
}
