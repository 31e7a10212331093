package model

import "sync"

// Component represents a stackable view.
type Component interface {
	Name() string
	Start()
	Stop()
}

// StackListener listens to stack events.
type StackListener interface {
	StackPushed(Component)
	StackPopped(old, new Component)
	StackTop(Component)
}

// Stack keeps the views the user navigated through. Only the top one runs.
type Stack struct {
	components []Component
	listeners  []StackListener
	mx         sync.RWMutex
}

// NewStack returns a new stack.
func NewStack() *Stack {
	return &Stack{}
}

// AddListener adds a stack listener and reports the current top to it.
func (s *Stack) AddListener(l StackListener) {
	s.mx.Lock()
	s.listeners = append(s.listeners, l)
	s.mx.Unlock()

	if top := s.Top(); top != nil {
		l.StackTop(top)
	}
}

// RemoveListener removes a stack listener.
func (s *Stack) RemoveListener(l StackListener) {
	s.mx.Lock()
	defer s.mx.Unlock()

	for i, lis := range s.listeners {
		if lis == l {
			s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
			return
		}
	}
}

// Push stops the current top and starts c on top of it.
func (s *Stack) Push(c Component) {
	if top := s.Top(); top != nil {
		top.Stop()
	}

	s.mx.Lock()
	s.components = append(s.components, c)
	s.mx.Unlock()
	c.Start()

	for _, l := range s.copyListeners() {
		l.StackPushed(c)
		l.StackTop(c)
	}
}

// Pop stops and removes the top component, restarting the one below.
// The last component is never popped.
func (s *Stack) Pop() (Component, bool) {
	s.mx.Lock()
	if len(s.components) < 2 {
		s.mx.Unlock()
		return nil, false
	}
	c := s.components[len(s.components)-1]
	s.components = s.components[:len(s.components)-1]
	top := s.components[len(s.components)-1]
	s.mx.Unlock()

	c.Stop()
	top.Start()
	for _, l := range s.copyListeners() {
		l.StackPopped(c, top)
		l.StackTop(top)
	}

	return c, true
}

// Top returns the top component.
func (s *Stack) Top() Component {
	s.mx.RLock()
	defer s.mx.RUnlock()

	if len(s.components) == 0 {
		return nil
	}
	return s.components[len(s.components)-1]
}

// Empty checks if the stack is empty.
func (s *Stack) Empty() bool {
	s.mx.RLock()
	defer s.mx.RUnlock()
	return len(s.components) == 0
}

// Clear stops and removes every component.
func (s *Stack) Clear() {
	s.mx.Lock()
	cc := s.components
	s.components = nil
	s.mx.Unlock()

	for i := len(cc) - 1; i >= 0; i-- {
		cc[i].Stop()
	}
}

// Flatten returns all component names, bottom first.
func (s *Stack) Flatten() []string {
	s.mx.RLock()
	defer s.mx.RUnlock()

	ss := make([]string, len(s.components))
	for i, c := range s.components {
		ss[i] = c.Name()
	}
	return ss
}

func (s *Stack) copyListeners() []StackListener {
	s.mx.RLock()
	defer s.mx.RUnlock()

	ll := make([]StackListener, len(s.listeners))
	copy(ll, s.listeners)
	return ll
}
