package paths

import (
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfigFilePath_InHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)

	path, err := ConfigFilePath()
	require.NoError(t, err)
	require.Equal(t, filepath.Join(home, ".drawerrc"), path)
}

func TestAppLocalDataDir_XDG(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG_DATA_HOME only applies on linux")
	}
	data := t.TempDir()
	t.Setenv("XDG_DATA_HOME", data)

	require.Equal(t, filepath.Join(data, "drawer"), AppLocalDataDir())
	require.Equal(t, filepath.Join(data, "drawer", "journal.db"), JournalPath())
}

func TestAppDataDir_HoldsLog(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG_CONFIG_HOME only applies on linux")
	}
	cfg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", cfg)

	dir := AppDataDir()
	require.Equal(t, filepath.Join(cfg, "drawer"), dir)
	require.DirExists(t, dir)
	require.True(t, strings.HasSuffix(LogFilePath(), "drawer.log"))
}
