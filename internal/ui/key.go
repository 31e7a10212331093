package ui

import (
	"sort"
	"sync"

	"github.com/derailed/tcell/v2"
)

// Rune keys bound by the table views.
const (
	KeyA            tcell.Key = 'a'
	KeyG            tcell.Key = 'g'
	KeyH            tcell.Key = 'h'
	KeyJ            tcell.Key = 'j'
	KeyK            tcell.Key = 'k'
	KeyL            tcell.Key = 'l'
	KeyP            tcell.Key = 'p'
	KeyQ            tcell.Key = 'q'
	KeyR            tcell.Key = 'r'
	KeyS            tcell.Key = 's'
	KeyW            tcell.Key = 'w'
	KeyShiftG       tcell.Key = 'G'
	KeyShiftS       tcell.Key = 'S'
	KeySpace        tcell.Key = ' '
	KeySlash        tcell.Key = '/'
	KeyLeftBracket  tcell.Key = '['
	KeyRightBracket tcell.Key = ']'
	KeyQuestion     tcell.Key = '?'
)

// ActionHandler handles a keyboard command.
type ActionHandler func(*tcell.EventKey) *tcell.EventKey

// KeyAction represents a keyboard action.
type KeyAction struct {
	Description string
	Action      ActionHandler
	Visible     bool
}

// KeyMap tracks key to action mappings.
type KeyMap map[tcell.Key]KeyAction

// NewKeyAction returns a new keyboard action.
func NewKeyAction(d string, a ActionHandler, visible bool) KeyAction {
	return KeyAction{Description: d, Action: a, Visible: visible}
}

// KeyActions tracks the actions bound to a component.
type KeyActions struct {
	actions KeyMap
	mx      sync.RWMutex
}

// NewKeyActions returns an empty action set.
func NewKeyActions() *KeyActions {
	return &KeyActions{actions: make(KeyMap)}
}

// Add binds an action.
func (a *KeyActions) Add(k tcell.Key, action KeyAction) {
	a.mx.Lock()
	defer a.mx.Unlock()

	a.actions[k] = action
}

// Bulk binds several actions.
func (a *KeyActions) Bulk(km KeyMap) {
	a.mx.Lock()
	defer a.mx.Unlock()

	for k, v := range km {
		a.actions[k] = v
	}
}

// Delete unbinds keys.
func (a *KeyActions) Delete(kk ...tcell.Key) {
	a.mx.Lock()
	defer a.mx.Unlock()

	for _, k := range kk {
		delete(a.actions, k)
	}
}

// Get returns the action bound to a key.
func (a *KeyActions) Get(k tcell.Key) (KeyAction, bool) {
	a.mx.RLock()
	defer a.mx.RUnlock()

	v, ok := a.actions[k]
	return v, ok
}

// Len returns the number of bound keys.
func (a *KeyActions) Len() int {
	a.mx.RLock()
	defer a.mx.RUnlock()

	return len(a.actions)
}

// Hints returns the menu hints of the bound actions.
func (a *KeyActions) Hints() MenuHints {
	a.mx.RLock()
	defer a.mx.RUnlock()

	hh := make(MenuHints, 0, len(a.actions))
	for k, v := range a.actions {
		hh = append(hh, MenuHint{
			Mnemonic:    KeyName(k),
			Description: v.Description,
			Visible:     v.Visible,
		})
	}
	sort.Sort(hh)

	return hh
}

// AsKey maps rune events onto the rune keys above.
func AsKey(evt *tcell.EventKey) tcell.Key {
	if evt.Key() != tcell.KeyRune {
		return evt.Key()
	}
	return tcell.Key(evt.Rune())
}

// KeyName returns a key's display name.
func KeyName(k tcell.Key) string {
	if n, ok := tcell.KeyNames[k]; ok {
		return n
	}
	switch k {
	case KeySpace:
		return "space"
	default:
		return string(rune(k))
	}
}
