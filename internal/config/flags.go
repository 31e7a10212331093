package config

import (
	"github.com/fundboard/fundboard/internal/config/data"
)

// DefaultRefreshRate is the default data refresh interval in seconds.
const DefaultRefreshRate = 5.0

// DefaultLogLevel is the default logging level.
const DefaultLogLevel = "info"

// NewFlags creates a new Flags instance with default values set. Settings
// also held in the config file start unset so the file wins over flag defaults.
func NewFlags() *data.Flags {
	f := data.NewFlags()
	*f.LogLevel = DefaultLogLevel
	*f.LogFile = AppLogFile

	return f
}

// IsBoolSet returns true if a bool pointer is non-nil and true.
func IsBoolSet(b *bool) bool {
	return b != nil && *b
}

// IsStringSet returns true if a string pointer is non-nil and non-empty.
func IsStringSet(s *string) bool {
	return s != nil && *s != ""
}
