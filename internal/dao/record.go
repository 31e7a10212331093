package dao

import (
	"strings"

	"github.com/fundboard/fundboard/internal/model1"
)

// Record represents a backend row.
type Record map[string]any

// Get returns the value at a dotted path, e.g. "student.first_name". A key
// holding the full path wins over a nested lookup.
func (r Record) Get(path string) any {
	if v, ok := r[path]; ok {
		return v
	}

	var cur any = map[string]any(r)
	for _, k := range strings.Split(path, ".") {
		switch m := cur.(type) {
		case map[string]any:
			cur = m[k]
		case Record:
			cur = m[k]
		default:
			return nil
		}
		if cur == nil {
			return nil
		}
	}

	return cur
}

// Text returns the display text of the value at path.
func (r Record) Text(path string) string {
	return model1.Text(r.Get(path))
}

// ID returns the record identifier, empty when the record has none.
func (r Record) ID() string {
	for _, k := range []string{"id", "_id", "ID"} {
		if s := r.Text(k); s != "" {
			return s
		}
	}
	return ""
}

// RecordID returns a record's ID, falling back to its index in the list.
func RecordID(r Record, index int) string {
	if id := r.ID(); id != "" {
		return id
	}
	return "#" + model1.Text(index)
}
