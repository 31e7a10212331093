package model

import (
	"sync"

	"github.com/fundboard/fundboard/internal/model1"
)

// IntentKind represents a requested selection mutation.
type IntentKind int

const (
	// IntentSelect adds rows to the selection.
	IntentSelect IntentKind = iota

	// IntentDeselect removes rows from the selection.
	IntentDeselect
)

// SelectionIntent is emitted by a table when the user asks to change the selection.
type SelectionIntent struct {
	Kind IntentKind
	IDs  []string
}

// SelectRows returns an intent selecting the given rows.
func SelectRows(ids ...string) SelectionIntent {
	return SelectionIntent{Kind: IntentSelect, IDs: ids}
}

// DeselectRows returns an intent deselecting the given rows.
func DeselectRows(ids ...string) SelectionIntent {
	return SelectionIntent{Kind: IntentDeselect, IDs: ids}
}

type selectionEntry struct {
	id int
	l  SelectionListener
}

// SelectionStore owns a row selection. Tables emit intents to it and read the
// selection back from it, so the store is the only copy.
type SelectionStore struct {
	selection model1.RowSelection
	listeners []selectionEntry
	nextID    int
	mx        sync.RWMutex
}

// NewSelectionStore returns a store seeded with the given selection.
func NewSelectionStore(initial model1.RowSelection) *SelectionStore {
	return &SelectionStore{
		selection: initial.Normalize(),
	}
}

// Selection returns a copy of the current selection.
func (s *SelectionStore) Selection() model1.RowSelection {
	s.mx.RLock()
	defer s.mx.RUnlock()
	return s.selection.Clone()
}

// IsSelected returns true if the row is selected.
func (s *SelectionStore) IsSelected(id string) bool {
	s.mx.RLock()
	defer s.mx.RUnlock()
	return s.selection[id]
}

// Len returns the number of selected rows.
func (s *SelectionStore) Len() int {
	s.mx.RLock()
	defer s.mx.RUnlock()
	return len(s.selection)
}

// AddListener registers a selection listener and returns its removal func.
func (s *SelectionStore) AddListener(l SelectionListener) func() {
	s.mx.Lock()
	defer s.mx.Unlock()

	s.nextID++
	id := s.nextID
	s.listeners = append(s.listeners, selectionEntry{id: id, l: l})

	return func() { s.removeListener(id) }
}

func (s *SelectionStore) removeListener(id int) {
	s.mx.Lock()
	defer s.mx.Unlock()

	for i, e := range s.listeners {
		if e.id == id {
			s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
			return
		}
	}
}

// Apply applies a selection intent. Listeners are only notified when the
// selection actually changed.
func (s *SelectionStore) Apply(intent SelectionIntent) bool {
	s.mx.Lock()
	prev := s.selection.Clone()
	changed := false
	for _, id := range intent.IDs {
		switch intent.Kind {
		case IntentSelect:
			if !s.selection[id] {
				s.selection[id] = true
				changed = true
			}
		case IntentDeselect:
			if s.selection[id] {
				delete(s.selection, id)
				changed = true
			}
		}
	}
	next := s.selection.Clone()
	s.mx.Unlock()

	if changed {
		s.notify(SelectionChange{Prev: prev, Next: next, Origin: OriginLocal})
	}
	return changed
}

// Replace adopts sel verbatim, overriding the current selection.
func (s *SelectionStore) Replace(sel model1.RowSelection) {
	s.mx.Lock()
	prev := s.selection
	s.selection = sel.Normalize()
	next := s.selection.Clone()
	s.mx.Unlock()

	s.notify(SelectionChange{Prev: prev, Next: next, Origin: OriginExternal})
}

// Clear deselects every row.
func (s *SelectionStore) Clear() {
	s.Replace(model1.RowSelection{})
}

func (s *SelectionStore) notify(c SelectionChange) {
	s.mx.RLock()
	listeners := make([]selectionEntry, len(s.listeners))
	copy(listeners, s.listeners)
	s.mx.RUnlock()

	for _, e := range listeners {
		e.l.SelectionChanged(c)
	}
}
