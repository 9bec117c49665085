package config

import "strings"

// Set rewrites the line holding key, keeping any inline comment, or appends
// a new line. It reports whether key already existed.
func Set(lines []string, key, value string) ([]string, bool) {
	for i, line := range lines {
		k, old, ok := entryOf(line)
		if !ok || k != key {
			continue
		}
		entry := key + "=" + quote(value)
		if idx := strings.Index(old, " #"); idx >= 0 && !strings.HasPrefix(old, `"`) {
			entry += " " + strings.TrimSpace(old[idx:])
		}
		lines[i] = entry
		return lines, true
	}
	return append(lines, key+"="+quote(value)), false
}

// Unset drops every line holding key. It reports whether any was removed.
func Unset(lines []string, key string) ([]string, bool) {
	out := lines[:0:0]
	removed := false
	for _, line := range lines {
		if k, _, ok := entryOf(line); ok && k == key {
			removed = true
			continue
		}
		out = append(out, line)
	}
	return out, removed
}

func entryOf(line string) (key, value string, ok bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return "", "", false
	}
	return splitEntry(trimmed)
}
