// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of fundboard

package ui

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/derailed/tcell/v2"
	"github.com/derailed/tview"
	"github.com/fundboard/fundboard/internal/model"
)

const (
	menuIndexFmt = " [yellow::b]<%d>[white::-] %s "
	menuPlainFmt = " [yellow::b]<%s>[white::-] %s "
	maxRows      = 4
)

// Menu presents the key hints of the top component.
type Menu struct {
	*tview.Table
}

// NewMenu returns a new menu.
func NewMenu() *Menu {
	m := &Menu{
		Table: tview.NewTable(),
	}
	m.SetBackgroundColor(tcell.ColorDefault)
	m.SetBorderPadding(0, 0, 1, 1)

	return m
}

// HydrateMenu populate menu ui from hints.
func (m *Menu) HydrateMenu(hh MenuHints) {
	m.Clear()
	sort.Sort(hh)

	for row, cols := range Layout(hh, maxRows) {
		for col, h := range cols {
			c := tview.NewTableCell(formatHint(h))
			c.SetBackgroundColor(tcell.ColorDefault)
			m.SetCell(row, col, c)
		}
	}
}

// Layout arranges the visible hints column first into rows of at most maxRows.
func Layout(hh MenuHints, maxRows int) [][]MenuHint {
	visible := make(MenuHints, 0, len(hh))
	for _, h := range hh {
		if h.Visible {
			visible = append(visible, h)
		}
	}
	if len(visible) == 0 {
		return nil
	}

	rows := min(len(visible), maxRows)
	cols := (len(visible) + rows - 1) / rows
	out := make([][]MenuHint, rows)
	for r := range out {
		out[r] = make([]MenuHint, cols)
	}
	for i, h := range visible {
		out[i%rows][i/rows] = h
	}

	return out
}

func formatHint(h MenuHint) string {
	if h.Mnemonic == "" || h.Description == "" {
		return ""
	}
	if i, err := strconv.Atoi(h.Mnemonic); err == nil {
		return fmt.Sprintf(menuIndexFmt, i, h.Description)
	}

	return fmt.Sprintf(menuPlainFmt, h.Mnemonic, h.Description)
}

// StackPushed notifies a component was added.
func (m *Menu) StackPushed(c model.Component) {
	m.hydrateFrom(c)
}

// StackPopped notifies a component was removed.
func (m *Menu) StackPopped(_, top model.Component) {
	if top == nil {
		m.Clear()
		return
	}
	m.hydrateFrom(top)
}

// StackTop notifies the top component.
func (m *Menu) StackTop(c model.Component) {
	m.hydrateFrom(c)
}

func (m *Menu) hydrateFrom(c model.Component) {
	if h, ok := c.(Hinter); ok {
		m.HydrateMenu(h.Hints())
	}
}
