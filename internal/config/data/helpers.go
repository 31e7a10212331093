package data

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	dirPerm  = 0o700
	filePerm = 0o600
)

// SaveYAML writes v as YAML, creating parent directories as needed.
func SaveYAML(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return fmt.Errorf("failed to create directory for %q: %w", path, err)
	}

	raw, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal %q: %w", path, err)
	}

	return os.WriteFile(path, raw, filePerm)
}

// LoadYAML reads a YAML file into v.
func LoadYAML(path string, v any) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("invalid yaml in %q: %w", path, err)
	}

	return nil
}

// LoadYAMLIfExists reads a YAML file into v, reporting false when the file is missing.
func LoadYAMLIfExists(path string, v any) (bool, error) {
	err := LoadYAML(path, v)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	case err != nil:
		return false, err
	default:
		return true, nil
	}
}
