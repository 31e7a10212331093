package model1

import (
	"reflect"
	"sort"
)

// ResEvent represents a row change kind between two loads.
type ResEvent int

const (
	// EventUnchanged notes a row that did not change.
	EventUnchanged ResEvent = iota

	// EventAdd notes an added row.
	EventAdd

	// EventUpdate notes a modified row.
	EventUpdate

	// EventDelete notes a removed row.
	EventDelete
)

func (e ResEvent) String() string {
	switch e {
	case EventAdd:
		return "add"
	case EventUpdate:
		return "update"
	case EventDelete:
		return "delete"
	default:
		return "unchanged"
	}
}

// Delta tracks the rows that changed between two loads, by row ID.
type Delta map[string]ResEvent

// NewDelta compares two loads keyed by row ID.
func NewDelta[R any](prev, next map[string]R) Delta {
	d := make(Delta)
	for id, n := range next {
		o, ok := prev[id]
		switch {
		case !ok:
			d[id] = EventAdd
		case !reflect.DeepEqual(o, n):
			d[id] = EventUpdate
		}
	}
	for id := range prev {
		if _, ok := next[id]; !ok {
			d[id] = EventDelete
		}
	}

	return d
}

// Kind returns the change kind of a row.
func (d Delta) Kind(id string) ResEvent {
	return d[id]
}

// IsBlank returns true when nothing changed.
func (d Delta) IsBlank() bool {
	return len(d) == 0
}

// Count returns the number of rows of the given kind.
func (d Delta) Count(kind ResEvent) int {
	var n int
	for _, k := range d {
		if k == kind {
			n++
		}
	}
	return n
}

// IDs returns the sorted IDs of the rows of the given kind.
func (d Delta) IDs(kind ResEvent) []string {
	var ids []string
	for id, k := range d {
		if k == kind {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)

	return ids
}
