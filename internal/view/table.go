// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of fundboard

package view

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/derailed/tcell/v2"
	"github.com/derailed/tview"
	"github.com/fundboard/fundboard/internal/dao"
	"github.com/fundboard/fundboard/internal/model"
	"github.com/fundboard/fundboard/internal/model1"
	"github.com/fundboard/fundboard/internal/render"
	"github.com/fundboard/fundboard/internal/ui"
)

// TableView shows one dashboard listing with its footer.
type TableView struct {
	*tview.Flex

	name     string
	table    *ui.Table[dao.Record]
	data     *model.TableData
	flash    *Flash
	unlog    func()
	cancelFn context.CancelFunc
	log      *slog.Logger
	mx       sync.Mutex
}

// NewTableView returns a view rendering the rows loaded by data.
func NewTableView(r render.Renderer, data *model.TableData, pageSizes []int, log *slog.Logger) *TableView {
	t := TableView{
		Flex:  tview.NewFlex(),
		name:  r.Name(),
		table: ui.NewTable(r.Title(), data.Table(), pageSizes),
		data:  data,
		flash: NewFlash(nil),
		log:   log.With("view", r.Name()),
	}
	t.table.SetColorer(t.colorer(render.ColorerFor(r)))

	return &t
}

// Init initializes the view.
func (t *TableView) Init(ctx context.Context) error {
	if err := t.table.Init(ctx); err != nil {
		return err
	}
	t.table.Actions().Add(tcell.KeyCtrlR, ui.NewKeyAction("Reload", t.reloadCmd, true))

	t.SetDirection(tview.FlexRow)
	t.AddItem(t.table, 0, 1, true)
	t.AddItem(t.table.Footer(), 1, 0, false)

	t.data.AddListener(t)
	t.unlog = t.Model().SelectionStore().AddListener(newSelectionLogger(t.name, t.log))

	return nil
}

// Name returns the view name.
func (t *TableView) Name() string {
	return t.name
}

// Table returns the table widget.
func (t *TableView) Table() *ui.Table[dao.Record] {
	return t.table
}

// Model returns the table model.
func (t *TableView) Model() *model.DataTable[dao.Record] {
	return t.data.Table()
}

// Hints returns the view key hints.
func (t *TableView) Hints() ui.MenuHints {
	return t.table.Hints()
}

// SetFlash sets the flash line reporting load failures.
func (t *TableView) SetFlash(f *Flash) {
	t.flash = f
}

// SetQueueFn sets how redraws are scheduled on the ui goroutine.
func (t *TableView) SetQueueFn(fn func(func())) {
	t.table.SetQueueFn(fn)
}

// SetFilterFn sets the callback opening the filter prompt.
func (t *TableView) SetFilterFn(fn func()) {
	t.table.SetFilterFn(fn)
}

// Start starts watching the row source.
func (t *TableView) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	t.mx.Lock()
	if t.cancelFn != nil {
		t.cancelFn()
	}
	t.cancelFn = cancel
	t.mx.Unlock()

	go func() {
		if err := t.data.Watch(ctx); err != nil && !errors.Is(err, context.Canceled) {
			t.log.Debug("watch ended", "error", err)
		}
	}()
}

// Stop stops watching the row source.
func (t *TableView) Stop() {
	t.mx.Lock()
	if t.cancelFn != nil {
		t.cancelFn()
		t.cancelFn = nil
	}
	t.mx.Unlock()

	t.data.Stop()
}

// Close releases the view listeners.
func (t *TableView) Close() {
	t.Stop()
	t.data.RemoveListener(t)
	if t.unlog != nil {
		t.unlog()
	}
	t.table.Close()
}

// TableNoData implements model.TableListener.
func (t *TableView) TableNoData() {
	t.table.SetLoadError(nil)
}

// TableDataChanged implements model.TableListener.
func (t *TableView) TableDataChanged(int) {
	t.table.SetLoadError(nil)
}

// TableLoadFailed implements model.TableListener.
func (t *TableView) TableLoadFailed(err error) {
	t.table.SetLoadError(err)
	if dao.IsSessionExpired(err) {
		t.flash.Warn("Session expired. Sign in again or pass --token.")
		return
	}
	t.flash.Err(err)
}

// colorer tints the rows changed by the last refresh, else defers to base.
func (t *TableView) colorer(base model1.ColorerFunc[dao.Record]) model1.ColorerFunc[dao.Record] {
	return func(r model1.Row[dao.Record]) tcell.Color {
		switch t.data.Delta().Kind(r.ID) {
		case model1.EventAdd:
			return model1.AddColor
		case model1.EventUpdate:
			return model1.ModColor
		default:
			return base(r)
		}
	}
}

func (t *TableView) reloadCmd(*tcell.EventKey) *tcell.EventKey {
	t.flash.Infof("Reloading %s...", t.name)
	go func() {
		if err := t.data.Reload(context.Background()); err != nil {
			t.log.Debug("reload failed", "error", err)
		}
	}()

	return nil
}
