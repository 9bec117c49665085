// Package paths resolves where drawer keeps its config, log and journal.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

const appDirName = "drawer"

// AppDataDir returns the config directory (os.UserConfigDir()/drawer),
// creating it owner-only. It falls back to "." when no home is known.
func AppDataDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}
	path := filepath.Join(dir, appDirName)
	_ = os.MkdirAll(path, 0700)
	return path
}

// AppLocalDataDir returns the per-machine data directory:
//   - macOS: ~/Library/Application Support/drawer
//   - Linux: $XDG_DATA_HOME/drawer or ~/.local/share/drawer
//   - Windows: %LOCALAPPDATA%\drawer
func AppLocalDataDir() string {
	var base string

	switch runtime.GOOS {
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "."
		}
		base = filepath.Join(home, "Library", "Application Support")

	case "windows":
		base = os.Getenv("LOCALAPPDATA")
		if base == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "."
			}
			base = filepath.Join(home, "AppData", "Local")
		}

	default:
		base = os.Getenv("XDG_DATA_HOME")
		if base == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "."
			}
			base = filepath.Join(home, ".local", "share")
		}
	}

	return filepath.Join(base, appDirName)
}

// ConfigFilePath returns ~/.drawerrc.
func ConfigFilePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".drawerrc"), nil
}

// LogFilePath returns the log file inside AppDataDir.
func LogFilePath() string {
	return filepath.Join(AppDataDir(), "drawer.log")
}

// JournalPath returns the notification journal database.
func JournalPath() string {
	return filepath.Join(AppLocalDataDir(), "journal.db")
}
