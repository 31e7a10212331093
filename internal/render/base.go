package render

import (
	"github.com/fundboard/fundboard/internal/dao"
	"github.com/fundboard/fundboard/internal/model1"
)

// Base provides a base renderer implementation.
type Base struct{}

// Endpoint returns no endpoint.
func (*Base) Endpoint() string {
	return ""
}

// FilterPlaceholder returns the default filter placeholder.
func (*Base) FilterPlaceholder() string {
	return "Filter..."
}

// SelectCol returns the checkbox column.
func SelectCol() model1.Column[dao.Record] {
	return model1.Column[dao.Record]{
		ID: SelectColumn,
		HeaderFn: func(model1.SortDirection) string {
			return "[ ]"
		},
		DisableSorting:   true,
		DisableFiltering: true,
	}
}

// FieldCol returns a column reading a record field.
func FieldCol(id, header string) model1.Column[dao.Record] {
	return model1.Column[dao.Record]{
		ID:       id,
		Header:   header,
		Accessor: Field(id),
	}
}

// MoneyCol returns a right aligned money column.
func MoneyCol(id, header string) model1.Column[dao.Record] {
	return model1.Column[dao.Record]{
		ID:       id,
		Header:   header,
		Accessor: Number(id),
		Cell:     func(r dao.Record) string { return Money(r.Get(id)) },
		Attrs:    model1.Attrs{Numeric: true},
	}
}

// DateCol returns a column showing dates.
func DateCol(id, header string) model1.Column[dao.Record] {
	return model1.Column[dao.Record]{
		ID:       id,
		Header:   header,
		Accessor: Time(id),
		Cell:     func(r dao.Record) string { return NA(Date(r.Get(id))) },
	}
}

// Field returns an accessor reading a record path.
func Field(path string) model1.Accessor[dao.Record] {
	return func(r dao.Record) any {
		return r.Get(path)
	}
}

// Number returns an accessor reading a numeric record path.
func Number(path string) model1.Accessor[dao.Record] {
	return func(r dao.Record) any {
		if f, ok := AsFloat(r.Get(path)); ok {
			return f
		}
		return nil
	}
}

// Time returns an accessor reading a date record path. Unparsable values are
// returned as is.
func Time(path string) model1.Accessor[dao.Record] {
	return func(r dao.Record) any {
		v := r.Get(path)
		if t, ok := AsTime(v); ok {
			return t
		}
		return v
	}
}
