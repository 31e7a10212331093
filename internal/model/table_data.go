package model

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/fundboard/fundboard/internal/dao"
	"github.com/fundboard/fundboard/internal/model1"
)

// DefaultRefreshRate is used when no refresh rate is configured.
const DefaultRefreshRate = 5 * time.Second

// TableData fetches records from a row source into a data table.
type TableData struct {
	accessor    dao.Accessor
	table       *DataTable[dao.Record]
	cache       *dao.ResourceCache
	keep        dao.Predicate
	refreshRate time.Duration
	rowCount    int
	loaded      map[string]dao.Record
	delta       model1.Delta
	listeners   []TableListener
	cancelFn    context.CancelFunc
	log         *slog.Logger
	mx          sync.RWMutex
}

// NewTableData returns a loader feeding table from accessor.
func NewTableData(accessor dao.Accessor, table *DataTable[dao.Record], refreshRate time.Duration, log *slog.Logger) *TableData {
	if log == nil {
		log = slog.Default()
	}
	if refreshRate <= 0 {
		refreshRate = DefaultRefreshRate
	}

	return &TableData{
		accessor:    accessor,
		table:       table,
		refreshRate: refreshRate,
		listeners:   make([]TableListener, 0, 2),
		log:         log.With("source", accessor.SourceID().String()),
	}
}

// SetCache sets the cache reloads and periodic refreshes invalidate.
func (t *TableData) SetCache(c *dao.ResourceCache) {
	t.mx.Lock()
	defer t.mx.Unlock()
	t.cache = c
}

// SetPredicate narrows the listed records before they reach the table.
func (t *TableData) SetPredicate(p dao.Predicate) {
	t.mx.Lock()
	defer t.mx.Unlock()
	t.keep = p
}

// Table returns the fed table.
func (t *TableData) Table() *DataTable[dao.Record] {
	return t.table
}

// SourceID returns the row source identifier.
func (t *TableData) SourceID() *dao.SourceID {
	return t.accessor.SourceID()
}

// RowCount returns the number of loaded rows.
func (t *TableData) RowCount() int {
	t.mx.RLock()
	defer t.mx.RUnlock()
	return t.rowCount
}

// Delta returns the rows changed by the last refresh, blank after the first load.
func (t *TableData) Delta() model1.Delta {
	t.mx.RLock()
	defer t.mx.RUnlock()
	return t.delta
}

// AddListener registers a table listener.
func (t *TableData) AddListener(l TableListener) {
	t.mx.Lock()
	defer t.mx.Unlock()
	t.listeners = append(t.listeners, l)
}

// RemoveListener unregisters a table listener.
func (t *TableData) RemoveListener(l TableListener) {
	t.mx.Lock()
	defer t.mx.Unlock()

	for i, listener := range t.listeners {
		if listener == l {
			t.listeners = append(t.listeners[:i], t.listeners[i+1:]...)
			return
		}
	}
}

// Watch loads the rows and keeps refreshing them until ctx is done or Stop is called.
func (t *TableData) Watch(ctx context.Context) error {
	t.mx.Lock()
	if t.cancelFn != nil {
		t.cancelFn()
	}
	watchCtx, cancel := context.WithCancel(ctx)
	t.cancelFn = cancel
	t.mx.Unlock()

	if err := t.Refresh(watchCtx); err != nil {
		return err
	}
	go t.watchLoop(watchCtx)

	return nil
}

func (t *TableData) watchLoop(ctx context.Context) {
	ticker := time.NewTicker(t.refreshRate)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			_ = t.Reload(ctx)
		}
	}
}

// Reload drops cached records and refreshes.
func (t *TableData) Reload(ctx context.Context) error {
	t.mx.RLock()
	cache := t.cache
	t.mx.RUnlock()
	if cache != nil {
		cache.Invalidate(t.SourceID().String())
	}

	return t.Refresh(ctx)
}

// Refresh fetches the rows once and pushes them into the table.
func (t *TableData) Refresh(ctx context.Context) error {
	rr, err := t.accessor.List(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		err = fmt.Errorf("failed to list %s: %w", t.SourceID(), err)
		t.log.Error("Load failed", "error", err)
		t.notifyLoadFailed(err)
		return err
	}
	t.mx.RLock()
	keep := t.keep
	t.mx.RUnlock()
	if keep != nil {
		n := len(rr)
		rr = dao.Keep(rr, keep)
		t.log.Debug("Rows narrowed", "listed", n, "kept", len(rr))
	}

	t.table.SetData(rr)

	ids := t.table.IDs()
	loaded := make(map[string]dao.Record, len(rr))
	for i, r := range rr {
		if i < len(ids) {
			loaded[ids[i]] = r
		}
	}
	t.mx.Lock()
	t.delta = model1.Delta{}
	if t.loaded != nil {
		t.delta = model1.NewDelta(t.loaded, loaded)
	}
	t.loaded, t.rowCount = loaded, len(rr)
	delta := t.delta
	t.mx.Unlock()

	t.log.Debug("Rows loaded", "rows", len(rr))
	if !delta.IsBlank() {
		t.log.Debug("Rows changed",
			"added", delta.Count(model1.EventAdd),
			"updated", delta.Count(model1.EventUpdate),
			"deleted", delta.Count(model1.EventDelete),
		)
	}

	if len(rr) == 0 {
		t.notifyNoData()
		return nil
	}
	t.notifyDataChanged(len(rr))

	return nil
}

// Stop stops the watch loop.
func (t *TableData) Stop() {
	t.mx.Lock()
	defer t.mx.Unlock()

	if t.cancelFn != nil {
		t.cancelFn()
		t.cancelFn = nil
	}
}

func (t *TableData) copyListeners() []TableListener {
	t.mx.RLock()
	defer t.mx.RUnlock()

	listeners := make([]TableListener, len(t.listeners))
	copy(listeners, t.listeners)
	return listeners
}

func (t *TableData) notifyNoData() {
	for _, l := range t.copyListeners() {
		l.TableNoData()
	}
}

func (t *TableData) notifyDataChanged(n int) {
	for _, l := range t.copyListeners() {
		l.TableDataChanged(n)
	}
}

func (t *TableData) notifyLoadFailed(err error) {
	for _, l := range t.copyListeners() {
		l.TableLoadFailed(err)
	}
}
