package model

import (
	"testing"

	"github.com/fundboard/fundboard/internal/model1"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectionStoreApply(t *testing.T) {
	s := NewSelectionStore(model1.RowSelection{"a": true, "b": false})
	var cc []SelectionChange
	s.AddListener(SelectionListenerFunc(func(c SelectionChange) { cc = append(cc, c) }))

	assert.True(t, s.Apply(SelectRows("b", "c")))
	assert.False(t, s.Apply(SelectRows("a", "c")))
	assert.True(t, s.Apply(DeselectRows("a", "zz")))
	assert.False(t, s.Apply(DeselectRows("a")))

	require.Len(t, cc, 2)
	assert.Equal(t, model1.NewRowSelection("a"), cc[0].Prev)
	assert.Equal(t, model1.NewRowSelection("a", "b", "c"), cc[0].Next)
	assert.Equal(t, OriginLocal, cc[0].Origin)
	assert.Equal(t, model1.NewRowSelection("b", "c"), cc[1].Next)
	assert.Equal(t, model1.NewRowSelection("b", "c"), s.Selection())
	assert.Equal(t, 2, s.Len())
}

func TestSelectionStoreReplace(t *testing.T) {
	s := NewSelectionStore(model1.NewRowSelection("a"))
	var cc []SelectionChange
	s.AddListener(SelectionListenerFunc(func(c SelectionChange) { cc = append(cc, c) }))

	s.Replace(model1.RowSelection{"b": true, "c": false})
	s.Replace(model1.RowSelection{"b": true})

	require.Len(t, cc, 2)
	assert.Equal(t, OriginExternal, cc[0].Origin)
	assert.Equal(t, "external", cc[0].Origin.String())
	assert.Equal(t, model1.NewRowSelection("a"), cc[0].Prev)
	assert.Equal(t, model1.NewRowSelection("b"), cc[0].Next)
	assert.True(t, s.IsSelected("b"))
	assert.False(t, s.IsSelected("a"))

	s.Clear()
	assert.Zero(t, s.Len())
}

func TestSelectionStoreCopies(t *testing.T) {
	in := model1.NewRowSelection("a")
	s := NewSelectionStore(in)
	in["b"] = true

	out := s.Selection()
	out["c"] = true

	assert.Equal(t, model1.NewRowSelection("a"), s.Selection())
}

func TestSelectionStoreRemoveListener(t *testing.T) {
	s := NewSelectionStore(nil)
	var n1, n2 int
	rm1 := s.AddListener(SelectionListenerFunc(func(SelectionChange) { n1++ }))
	s.AddListener(SelectionListenerFunc(func(SelectionChange) { n2++ }))

	s.Apply(SelectRows("a"))
	rm1()
	rm1()
	s.Apply(SelectRows("b"))

	assert.Equal(t, 1, n1)
	assert.Equal(t, 2, n2)
}
