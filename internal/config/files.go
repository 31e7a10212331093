package config

import (
	"os"
	"path/filepath"
)

// AppName names the application directories.
const AppName = "fundboard"

var (
	// AppConfigDir is ~/.config/fundboard
	AppConfigDir string

	// AppStateDir is ~/.local/state/fundboard
	AppStateDir string

	// AppConfigFile is ~/.config/fundboard/fundboard.yaml
	AppConfigFile string

	// AppAliasesFile is ~/.config/fundboard/aliases.yaml
	AppAliasesFile string

	// AppSessionFile is ~/.local/state/fundboard/session.yaml
	AppSessionFile string

	// AppLogFile is ~/.local/state/fundboard/fundboard.log
	AppLogFile string
)

// InitLocs initializes the application paths, honoring XDG variables, and
// creates the directories.
func InitLocs() error {
	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}

	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		configHome = filepath.Join(home, ".config")
	}
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		stateHome = filepath.Join(home, ".local", "state")
	}

	AppConfigDir = filepath.Join(configHome, AppName)
	AppStateDir = filepath.Join(stateHome, AppName)

	AppConfigFile = filepath.Join(AppConfigDir, AppName+".yaml")
	AppAliasesFile = filepath.Join(AppConfigDir, "aliases.yaml")
	AppSessionFile = filepath.Join(AppStateDir, "session.yaml")
	AppLogFile = filepath.Join(AppStateDir, AppName+".log")

	for _, dir := range []string{AppConfigDir, AppStateDir} {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return err
		}
	}

	return nil
}
