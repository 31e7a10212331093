// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of fundboard

package view

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/derailed/tcell/v2"
	"github.com/derailed/tview"
	"github.com/fundboard/fundboard/internal/model"
	"github.com/fundboard/fundboard/internal/ui"
)

// App represents the main application container.
type App struct {
	*tview.Application

	version string
	content *tview.Pages
	stack   *model.Stack
	info    *Info
	menu    *ui.Menu
	crumbs  *ui.Crumbs
	prompt  *ui.Prompt
	flash   *Flash
	log     *slog.Logger
	running bool
	mx      sync.RWMutex
}

// NewApp creates a new application instance.
func NewApp(version string, log *slog.Logger) *App {
	if log == nil {
		log = slog.Default()
	}
	a := App{
		Application: tview.NewApplication(),
		version:     version,
		content:     tview.NewPages(),
		stack:       model.NewStack(),
		info:        NewInfo(),
		menu:        ui.NewMenu(),
		prompt:      ui.NewPrompt('🔍'),
		log:         log,
	}
	a.crumbs = ui.NewCrumbs(a.stack)
	a.flash = NewFlash(a.QueueUpdateDraw)

	return &a
}

// Init builds the application layout.
func (a *App) Init() {
	a.stack.AddListener(a)
	a.stack.AddListener(a.menu)
	a.stack.AddListener(a.crumbs)
	a.SetInputCapture(a.keyboard)
	a.SetRoot(a.layout(), true)
}

// Flash returns the flash line.
func (a *App) Flash() *Flash {
	return a.flash
}

// Info returns the header.
func (a *App) Info() *Info {
	return a.info
}

// Stack returns the view stack.
func (a *App) Stack() *model.Stack {
	return a.stack
}

// Push initializes a component and shows it on top of the stack.
func (a *App) Push(c ui.Component) error {
	if err := c.Init(context.Background()); err != nil {
		return fmt.Errorf("failed to init view %q: %w", c.Name(), err)
	}
	a.stack.Push(c)

	return nil
}

// PushTable shows a table view wired to the app prompt and flash line.
func (a *App) PushTable(tv *TableView) error {
	tv.SetFlash(a.flash)
	tv.SetQueueFn(a.QueueUpdateDraw)
	tv.SetFilterFn(func() { a.activateFilter(tv) })

	return a.Push(tv)
}

// Run starts the application.
func (a *App) Run() error {
	a.mx.Lock()
	a.running = true
	a.mx.Unlock()

	return a.Application.Run()
}

// Stop stops the views and the application.
func (a *App) Stop() {
	a.stack.Clear()

	a.mx.Lock()
	a.running = false
	a.mx.Unlock()
	a.Application.Stop()
}

// IsRunning returns whether the application is currently running.
func (a *App) IsRunning() bool {
	a.mx.RLock()
	defer a.mx.RUnlock()

	return a.running
}

// QueueUpdateDraw queues a function to be executed on the UI thread.
func (a *App) QueueUpdateDraw(fn func()) {
	if !a.IsRunning() {
		fn()
		return
	}
	go a.Application.QueueUpdateDraw(fn)
}

// StackPushed implements model.StackListener.
func (a *App) StackPushed(c model.Component) {
	p, ok := c.(ui.Primitive)
	if !ok {
		return
	}
	a.content.AddPage(c.Name(), p, true, true)
	a.SetFocus(p)
}

// StackPopped implements model.StackListener.
func (a *App) StackPopped(old, _ model.Component) {
	a.content.RemovePage(old.Name())
}

// StackTop implements model.StackListener.
func (a *App) StackTop(c model.Component) {
	if c == nil {
		return
	}
	p, ok := c.(ui.Primitive)
	if !ok {
		return
	}
	a.content.SwitchToPage(c.Name())
	a.SetFocus(p)
}

func (a *App) layout() *tview.Flex {
	header := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(a.info, 50, 1, false).
		AddItem(a.menu, 0, 1, false)

	return tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(header, 4, 0, false).
		AddItem(a.prompt, 1, 0, false).
		AddItem(a.content, 0, 1, true).
		AddItem(a.crumbs, 1, 0, false).
		AddItem(a.flash, 1, 0, false)
}

func (a *App) keyboard(evt *tcell.EventKey) *tcell.EventKey {
	if a.prompt.IsActive() {
		return evt
	}

	switch ui.AsKey(evt) {
	case tcell.KeyCtrlC, ui.KeyQ:
		a.Stop()
		return nil
	case ui.KeyQuestion:
		a.showHelp()
		return nil
	case tcell.KeyEscape:
		if top := a.stack.Top(); top != nil && top.Name() == helpName {
			a.stack.Pop()
			return nil
		}
	}

	return evt
}

func (a *App) showHelp() {
	top := a.stack.Top()
	if top == nil || top.Name() == helpName {
		return
	}
	var hints ui.MenuHints
	if h, ok := top.(ui.Hinter); ok {
		hints = h.Hints()
	}
	if err := a.Push(NewHelp(hints)); err != nil {
		a.flash.Err(err)
	}
}

func (a *App) activateFilter(tv *TableView) {
	m := tv.Model()
	prev := m.FilterText()
	a.prompt.SetChangeFn(m.SetFilterText)
	a.prompt.SetDoneFn(func(text string, ok bool) {
		if !ok {
			m.SetFilterText(prev)
		}
		a.log.Debug("filter", "view", tv.Name(), "text", m.FilterText())
		a.SetFocus(tv)
	})
	a.prompt.Activate(prev, m.FilterPlaceholder())
	a.SetFocus(a.prompt)
}
