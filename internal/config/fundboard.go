package config

import (
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/fundboard/fundboard/internal/config/data"
)

// Default values
const (
	DefaultAPIURL   = "http://localhost:5000/api"
	DefaultView     = "students"
	DefaultPageSize = 10
)

// DefaultPageSizes lists the page sizes offered by the page size selector.
var DefaultPageSizes = []int{10, 20, 50}

// Fundboard represents the fundboard global configuration.
type Fundboard struct {
	APIURL      string   `yaml:"apiURL"`
	RefreshRate float32  `yaml:"refreshRate"`
	PageSize    int      `yaml:"pageSize"`
	PageSizes   []int    `yaml:"pageSizes"`
	DefaultView string   `yaml:"defaultView"`
	UI          data.UI  `yaml:"ui"`
	AWS         data.AWS `yaml:"aws"`

	mx sync.RWMutex
}

// NewFundboard creates a Fundboard with default settings. The page size stays
// unset until Validate picks the first page size.
func NewFundboard() *Fundboard {
	return &Fundboard{
		APIURL:      DefaultAPIURL,
		RefreshRate: DefaultRefreshRate,
		PageSizes:   slices.Clone(DefaultPageSizes),
		DefaultView: DefaultView,
	}
}

// Validate fills unset settings and checks the page size against the page sizes.
func (f *Fundboard) Validate() error {
	f.mx.Lock()
	defer f.mx.Unlock()

	if f.APIURL == "" {
		f.APIURL = DefaultAPIURL
	}
	f.APIURL = strings.TrimSuffix(f.APIURL, "/")
	if f.RefreshRate <= 0 {
		f.RefreshRate = DefaultRefreshRate
	}
	if f.DefaultView == "" {
		f.DefaultView = DefaultView
	}
	if len(f.PageSizes) == 0 {
		f.PageSizes = slices.Clone(DefaultPageSizes)
	}
	for _, s := range f.PageSizes {
		if s <= 0 {
			return fmt.Errorf("invalid page size %d in pageSizes", s)
		}
	}
	slices.Sort(f.PageSizes)
	f.PageSizes = slices.Compact(f.PageSizes)

	if f.PageSize == 0 {
		f.PageSize = f.PageSizes[0]
	}
	if !slices.Contains(f.PageSizes, f.PageSize) {
		return fmt.Errorf("page size %d must be one of %v", f.PageSize, f.PageSizes)
	}

	return nil
}

// Override applies CLI flag overrides to the configuration.
func (f *Fundboard) Override(flags *data.Flags) {
	if flags == nil {
		return
	}

	f.mx.Lock()
	defer f.mx.Unlock()

	if flags.RefreshRate != nil && *flags.RefreshRate > 0 {
		f.RefreshRate = *flags.RefreshRate
	}
	if flags.PageSize != nil && *flags.PageSize > 0 {
		f.PageSize = *flags.PageSize
		if !slices.Contains(f.PageSizes, f.PageSize) {
			f.PageSizes = append(f.PageSizes, f.PageSize)
			slices.Sort(f.PageSizes)
		}
	}
	if IsStringSet(flags.APIURL) {
		f.APIURL = strings.TrimSuffix(*flags.APIURL, "/")
	}
	if IsStringSet(flags.View) {
		f.DefaultView = *flags.View
	}
	if IsStringSet(flags.Profile) {
		f.AWS.Profile = *flags.Profile
	}
	if IsStringSet(flags.Region) {
		f.AWS.Region = *flags.Region
	}
}

// RefreshInterval returns the refresh rate as a duration.
func (f *Fundboard) RefreshInterval() time.Duration {
	f.mx.RLock()
	defer f.mx.RUnlock()

	return time.Duration(float64(f.RefreshRate) * float64(time.Second))
}
