package model

import (
	"context"

	"github.com/fundboard/fundboard/internal/model1"
)

// TableModel defines the interface for a table data model that fetches data.
type TableModel interface {
	// RowCount returns the number of loaded rows.
	RowCount() int

	// Watch starts watching/refreshing data periodically.
	Watch(context.Context) error

	// Refresh fetches data from the source immediately.
	Refresh(context.Context) error

	// AddListener registers a table listener.
	AddListener(TableListener)

	// RemoveListener unregisters a table listener.
	RemoveListener(TableListener)
}

// TableListener represents a table data loader listener.
type TableListener interface {
	// TableNoData notifies listener no data was found.
	TableNoData()

	// TableDataChanged notifies the loaded rows changed.
	TableDataChanged(rowCount int)

	// TableLoadFailed notifies the load failed.
	TableLoadFailed(error)
}

// State is a snapshot of a table's interactive state.
type State struct {
	Sorting    model1.SortState
	Filters    model1.ColumnFilters
	Selection  model1.RowSelection
	Pagination model1.Pagination
}

// StateListener is notified after every table state transition.
type StateListener interface {
	TableStateChanged(State)
}

// Origin tells who caused a selection change.
type Origin int

const (
	// OriginLocal denotes a change made through table interaction.
	OriginLocal Origin = iota

	// OriginExternal denotes a selection pushed by the owner.
	OriginExternal
)

func (o Origin) String() string {
	if o == OriginExternal {
		return "external"
	}
	return "local"
}

// SelectionChange describes a selection transition.
type SelectionChange struct {
	Prev   model1.RowSelection
	Next   model1.RowSelection
	Origin Origin
}

// SelectionListener is notified when the selection changes.
type SelectionListener interface {
	SelectionChanged(SelectionChange)
}

// SelectionListenerFunc adapts a function to a SelectionListener.
type SelectionListenerFunc func(SelectionChange)

// SelectionChanged implements SelectionListener.
func (f SelectionListenerFunc) SelectionChanged(c SelectionChange) {
	f(c)
}
