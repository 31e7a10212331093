package config

import (
	"fmt"
	"sync"

	"github.com/fundboard/fundboard/internal/config/data"
)

// Config is the root configuration for the application.
type Config struct {
	Fundboard *Fundboard `yaml:"fundboard"`

	mx sync.RWMutex
}

// NewConfig creates a Config with default settings.
func NewConfig() *Config {
	return &Config{
		Fundboard: NewFundboard(),
	}
}

// Load loads the configuration from the given path.
// If the file doesn't exist, the current config is kept.
func (c *Config) Load(path string) error {
	c.mx.Lock()
	defer c.mx.Unlock()

	ok, err := data.LoadYAMLIfExists(path, c)
	if err != nil {
		return fmt.Errorf("failed to load config from %s: %w", path, err)
	}
	if !ok {
		return nil
	}
	if c.Fundboard == nil {
		c.Fundboard = NewFundboard()
	}

	if err := c.Fundboard.Validate(); err != nil {
		return fmt.Errorf("invalid config %s: %w", path, err)
	}

	return nil
}

// Save writes the configuration to the given path.
func (c *Config) Save(path string) error {
	c.mx.RLock()
	defer c.mx.RUnlock()

	if err := data.SaveYAML(path, c); err != nil {
		return fmt.Errorf("failed to save config to %s: %w", path, err)
	}

	return nil
}

// Refine applies CLI flags on top of the loaded configuration.
func (c *Config) Refine(flags *data.Flags) error {
	c.mx.Lock()
	defer c.mx.Unlock()

	if c.Fundboard == nil {
		return fmt.Errorf("config.Fundboard is nil")
	}
	c.Fundboard.Override(flags)

	return c.Fundboard.Validate()
}
