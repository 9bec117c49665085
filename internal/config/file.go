package config

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/footprint-tools/drawer/internal/domain"
	"github.com/footprint-tools/drawer/internal/log"
	"github.com/footprint-tools/drawer/internal/paths"
)

// ReadLines returns the raw lines of ~/.drawerrc. A missing or empty file is
// created with every visible key at its default.
func ReadLines() ([]string, error) {
	configPath, err := paths.ConfigFilePath()
	if err != nil {
		return nil, err
	}

	info, statErr := os.Stat(configPath)
	isNew := os.IsNotExist(statErr) || (statErr == nil && info.Size() == 0)

	file, err := os.OpenFile(configPath, os.O_CREATE|os.O_RDONLY, 0600)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer func() { _ = file.Close() }()

	if err := os.Chmod(configPath, 0600); err != nil {
		log.Warn("config: could not set permissions on config file: %v", err)
	}

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	if isNew && len(lines) == 0 {
		lines = defaultLines()
		if err := WriteLines(lines); err != nil {
			log.Warn("config: could not write default config: %v", err)
		}
	}
	return lines, nil
}

func defaultLines() []string {
	lines := []string{
		"# drawer configuration",
		"# Edit values below or use: drawer config set <key> <value>",
		"",
	}
	section := ""
	for _, key := range domain.ConfigKeys {
		if key.Hidden {
			continue
		}
		if key.Section != section {
			if section != "" {
				lines = append(lines, "")
			}
			section = key.Section
			lines = append(lines, "# "+section)
		}
		if key.HideIfEmpty {
			lines = append(lines, "# "+key.Name+"=")
			continue
		}
		lines = append(lines, key.Name+"="+quote(key.Default))
	}
	return lines
}

// WriteLines replaces ~/.drawerrc atomically.
func WriteLines(lines []string) error {
	configPath, err := paths.ConfigFilePath()
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(configPath), ".drawerrc.tmp.*")
	if err != nil {
		return fmt.Errorf("create temp config: %w", err)
	}
	tmpPath := tmp.Name()

	done := false
	defer func() {
		if !done {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if err := tmp.Chmod(0600); err != nil {
		return err
	}
	w := bufio.NewWriter(tmp)
	for _, line := range lines {
		if _, err := w.WriteString(line + "\n"); err != nil {
			return err
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmpPath, configPath); err != nil {
		return fmt.Errorf("replace config: %w", err)
	}
	done = true
	return nil
}
