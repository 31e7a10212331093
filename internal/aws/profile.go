package aws

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/ini.v1"
)

const (
	defaultProfile = "default"
	profilePrefix  = "profile "
)

// ConfigPath returns the shared AWS config file location.
func ConfigPath() string {
	if p := os.Getenv("AWS_CONFIG_FILE"); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".aws", "config")
	}

	return filepath.Join(home, ".aws", "config")
}

// ProfileRegion returns the region key of a profile in the shared config file.
// A missing file yields an empty region.
func ProfileRegion(path, profile string) (string, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return "", nil
	} else if err != nil {
		return "", fmt.Errorf("failed to access config file: %w", err)
	}

	f, err := ini.Load(path)
	if err != nil {
		return "", fmt.Errorf("failed to load config file: %w", err)
	}

	section, err := f.GetSection(sectionName(profile))
	if err != nil && (profile == "" || profile == defaultProfile) {
		section, err = f.GetSection(ini.DefaultSection)
	}
	if err != nil {
		return "", fmt.Errorf("profile %q not found in %s: %w", profile, path, err)
	}
	if !section.HasKey("region") {
		return "", nil
	}

	return section.Key("region").String(), nil
}

// ProfileNames lists the profiles declared in the shared config file.
func ProfileNames(path string) ([]string, error) {
	f, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	names := make([]string, 0, len(f.Sections()))
	for _, s := range f.Sections() {
		switch name := s.Name(); {
		case name == ini.DefaultSection:
			if len(s.Keys()) > 0 {
				names = append(names, defaultProfile)
			}
		case name == defaultProfile:
			names = append(names, defaultProfile)
		case strings.HasPrefix(name, profilePrefix):
			names = append(names, strings.TrimPrefix(name, profilePrefix))
		}
	}
	sort.Strings(names)

	return names, nil
}

func sectionName(profile string) string {
	if profile == "" || profile == defaultProfile {
		return defaultProfile
	}
	return profilePrefix + profile
}
