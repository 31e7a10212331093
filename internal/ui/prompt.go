package ui

import (
	"github.com/derailed/tcell/v2"
	"github.com/derailed/tview"
)

// Prompt represents the filter input field.
type Prompt struct {
	*tview.InputField

	active   bool
	changeFn func(string)
	doneFn   func(text string, ok bool)
}

// NewPrompt returns a new prompt.
func NewPrompt(icon rune) *Prompt {
	p := &Prompt{
		InputField: tview.NewInputField(),
	}
	p.SetLabel(string(icon) + " ")
	p.SetLabelColor(tcell.ColorAqua)
	p.SetFieldBackgroundColor(tcell.ColorDefault)
	p.SetBackgroundColor(tcell.ColorDefault)
	p.SetChangedFunc(p.changed)
	p.SetDoneFunc(p.done)

	return p
}

// SetChangeFn sets the callback receiving every edit.
func (p *Prompt) SetChangeFn(fn func(string)) {
	p.changeFn = fn
}

// SetDoneFn sets the callback run on enter (ok) or escape.
func (p *Prompt) SetDoneFn(fn func(text string, ok bool)) {
	p.doneFn = fn
}

// Activate opens the prompt on text, showing placeholder while empty.
func (p *Prompt) Activate(text, placeholder string) {
	p.active = true
	p.SetPlaceholder(placeholder)
	p.SetText(text)
}

// Deactivate closes the prompt.
func (p *Prompt) Deactivate() {
	p.active = false
}

// IsActive reports whether the prompt is open.
func (p *Prompt) IsActive() bool {
	return p.active
}

func (p *Prompt) changed(text string) {
	if p.active && p.changeFn != nil {
		p.changeFn(text)
	}
}

func (p *Prompt) done(k tcell.Key) {
	if !p.active {
		return
	}
	p.active = false
	if p.doneFn != nil {
		p.doneFn(p.GetText(), k == tcell.KeyEnter)
	}
}
