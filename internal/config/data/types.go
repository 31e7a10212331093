// Package data provides configuration data types for the fundboard application.
package data

// Flags represents CLI command-line flags for the fundboard application.
type Flags struct {
	RefreshRate *float32           // Refresh rate in seconds
	LogLevel    *string            // Log level (e.g., debug, info, warn, error)
	LogFile     *string            // Path to log file
	Headless    *bool              // Print the first page and exit
	View        *string            // View to open
	Search      *string            // Search column override
	Filter      *string            // Initial filter text
	PageSize    *int               // Initial page size
	APIURL      *string            // Backend base URL
	Token       *string            // Bearer token override
	SchoolID    *string            // School override
	YearID      *string            // Academic year override
	Params      *map[string]string // Extra endpoint placeholders
	Status      *string            // Keep records with this status
	Class       *string            // Keep records of this class
	Profile     *string            // AWS profile to use
	Region      *string            // AWS region to use
}

// UI represents user interface configuration settings.
type UI struct {
	EnableMouse bool `yaml:"enableMouse"`
}

// AWS represents the AWS settings used by s3:// sources.
type AWS struct {
	Profile string `yaml:"profile"`
	Region  string `yaml:"region"`
}

// NewFlags creates a new Flags instance with all pointer fields initialized.
// All pointers are allocated but their values are not set.
func NewFlags() *Flags {
	return &Flags{
		RefreshRate: new(float32),
		LogLevel:    new(string),
		LogFile:     new(string),
		Headless:    new(bool),
		View:        new(string),
		Search:      new(string),
		Filter:      new(string),
		PageSize:    new(int),
		APIURL:      new(string),
		Token:       new(string),
		SchoolID:    new(string),
		YearID:      new(string),
		Params:      new(map[string]string),
		Status:      new(string),
		Class:       new(string),
		Profile:     new(string),
		Region:      new(string),
	}
}
