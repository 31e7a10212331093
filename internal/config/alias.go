package config

import (
	"fmt"
	"sort"
	"sync"

	"github.com/fundboard/fundboard/internal/config/data"
)

// Aliases represents the view alias configuration.
type Aliases struct {
	Alias map[string]string `yaml:"aliases"`
	mx    sync.RWMutex
}

// DefaultAliases are the built-in view aliases.
var DefaultAliases = map[string]string{
	"stu":   "students",
	"st":    "students",
	"fee":   "fees",
	"bal":   "fees",
	"pay":   "payments",
	"pmt":   "payments",
	"cls":   "classes",
	"sch":   "schools",
	"par":   "parents",
	"prj":   "projects",
	"proj":  "projects",
	"not":   "notifications",
	"inbox": "notifications",
	"off":   "offers",
	"sub":   "submissions",
}

// NewAliases creates an Aliases with default aliases loaded.
func NewAliases() *Aliases {
	a := Aliases{Alias: make(map[string]string, len(DefaultAliases))}
	for k, v := range DefaultAliases {
		a.Alias[k] = v
	}

	return &a
}

// Load loads aliases from the default aliases file.
func (a *Aliases) Load() error {
	return a.LoadFrom(AppAliasesFile)
}

// LoadFrom merges aliases from a file, file aliases taking precedence.
func (a *Aliases) LoadFrom(path string) error {
	var loaded struct {
		Alias map[string]string `yaml:"aliases"`
	}
	if _, err := data.LoadYAMLIfExists(path, &loaded); err != nil {
		return fmt.Errorf("failed to load aliases: %w", err)
	}

	a.mx.Lock()
	defer a.mx.Unlock()
	for k, v := range loaded.Alias {
		a.Alias[k] = v
	}

	return nil
}

// SaveTo saves aliases to a specific file path.
func (a *Aliases) SaveTo(path string) error {
	a.mx.RLock()
	defer a.mx.RUnlock()

	return data.SaveYAML(path, a)
}

// Get returns the view for an alias, or the alias itself if not found.
func (a *Aliases) Get(alias string) string {
	a.mx.RLock()
	defer a.mx.RUnlock()

	if view, ok := a.Alias[alias]; ok {
		return view
	}
	return alias
}

// Set sets an alias.
func (a *Aliases) Set(alias, view string) {
	a.mx.Lock()
	defer a.mx.Unlock()

	a.Alias[alias] = view
}

// For returns the sorted aliases of a view.
func (a *Aliases) For(view string) []string {
	a.mx.RLock()
	defer a.mx.RUnlock()

	var aa []string
	for k, v := range a.Alias {
		if v == view {
			aa = append(aa, k)
		}
	}
	sort.Strings(aa)

	return aa
}
