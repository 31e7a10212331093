// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of fundboard

package view

import (
	"context"

	"github.com/derailed/tcell/v2"
	"github.com/derailed/tview"
	"github.com/fundboard/fundboard/internal/render"
	"github.com/fundboard/fundboard/internal/ui"
)

const helpName = "help"

// HelpBind represents a single keybinding.
type HelpBind struct {
	Key  string
	Desc string
}

// Help displays the key bindings of the view below it.
type Help struct {
	*tview.Table

	hints ui.MenuHints
}

// NewHelp returns a help view listing hints.
func NewHelp(hints ui.MenuHints) *Help {
	return &Help{
		Table: tview.NewTable(),
		hints: hints,
	}
}

// Init builds the help table.
func (h *Help) Init(context.Context) error {
	h.SetBorder(true)
	h.SetTitle(" Help ")
	h.SetTitleAlign(tview.AlignCenter)
	h.SetBorderColor(tcell.ColorYellow)
	h.SetBackgroundColor(tcell.ColorDefault)
	h.SetSelectable(false, false)
	h.populate()

	return nil
}

// Name returns the view name.
func (*Help) Name() string { return helpName }

// Start starts the view.
func (*Help) Start() {}

// Stop stops the view.
func (*Help) Stop() {}

// Hints returns the help view hints.
func (*Help) Hints() ui.MenuHints {
	return ui.MenuHints{
		{Mnemonic: "esc", Description: "Back", Visible: true},
	}
}

// Columns returns the help sections and their bindings.
func (h *Help) Columns() ([]string, [][]HelpBind) {
	general := []HelpBind{
		{"<?>", "Help"},
		{"<esc>", "Back"},
		{"<q>", "Quit"},
		{"<ctrl-r>", "Reload"},
	}
	navigation := []HelpBind{
		{"<j>", "Down"},
		{"<k>", "Up"},
		{"<h>", "Column Left"},
		{"<l>", "Column Right"},
	}
	table := make([]HelpBind, 0, len(h.hints))
	for _, hh := range h.hints {
		if hh.Visible {
			table = append(table, HelpBind{"<" + hh.Mnemonic + ">", hh.Description})
		}
	}
	views := make([]HelpBind, 0, len(render.Names()))
	for _, n := range render.Names() {
		views = append(views, HelpBind{n, "--view " + n})
	}

	return []string{"GENERAL", "NAVIGATION", "TABLE", "VIEWS"},
		[][]HelpBind{general, navigation, table, views}
}

func (h *Help) populate() {
	h.Clear()
	headers, columns := h.Columns()

	const colWidth = 3
	for i, col := range columns {
		base := i * colWidth
		h.SetCell(0, base, tview.NewTableCell(headers[i]).
			SetTextColor(tcell.ColorAqua).
			SetAttributes(tcell.AttrBold).
			SetSelectable(false))

		for r, b := range col {
			h.SetCell(r+1, base, tview.NewTableCell(tview.Escape(b.Key)).
				SetTextColor(tcell.ColorYellow).
				SetSelectable(false))
			h.SetCell(r+1, base+1, tview.NewTableCell(b.Desc).
				SetTextColor(tcell.ColorWhite).
				SetSelectable(false).
				SetExpansion(1))
		}
	}
}
