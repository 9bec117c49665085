package config

import (
	"fmt"
	"strings"
)

// Parse reads key=value lines. Blank lines and lines starting with # are
// skipped, a " #" starts an inline comment, and values may be wrapped in
// double quotes. Later duplicates win.
func Parse(lines []string) (map[string]string, error) {
	out := make(map[string]string, len(lines))
	for i, line := range lines {
		if i == 0 {
			line = strings.TrimPrefix(line, "\uFEFF")
		}
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		key, value, ok := splitEntry(trimmed)
		if !ok {
			return nil, fmt.Errorf("config: line %d: expected key=value", i+1)
		}
		if key == "" {
			return nil, fmt.Errorf("config: line %d: empty key", i+1)
		}
		out[key] = unquote(stripComment(value))
	}
	return out, nil
}

func splitEntry(line string) (key, value string, ok bool) {
	key, value, ok = strings.Cut(line, "=")
	return strings.TrimSpace(key), strings.TrimSpace(value), ok
}

func stripComment(value string) string {
	if strings.HasPrefix(value, `"`) {
		if end := strings.Index(value[1:], `"`); end >= 0 {
			return value[:end+2]
		}
		return value
	}
	if idx := strings.Index(value, " #"); idx >= 0 {
		return strings.TrimSpace(value[:idx])
	}
	return value
}

func unquote(value string) string {
	if len(value) >= 2 && strings.HasPrefix(value, `"`) && strings.HasSuffix(value, `"`) {
		return value[1 : len(value)-1]
	}
	return value
}

func quote(value string) string {
	if strings.ContainsAny(value, " #") {
		return `"` + value + `"`
	}
	return value
}
