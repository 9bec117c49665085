package config

import "github.com/footprint-tools/drawer/internal/domain"

// Get returns the effective value of key: the file's value if set, else the
// key's default. ok is false for unknown keys that are not in the file.
func Get(key string) (string, bool) {
	if lines, err := ReadLines(); err == nil {
		if cfg, err := Parse(lines); err == nil {
			if v, exists := cfg[key]; exists {
				return v, true
			}
		}
	}
	return domain.GetDefaultValue(key)
}

// GetAll returns every known key at its default, overlaid with the file.
// A missing or unreadable file yields the defaults.
func GetAll() (map[string]string, error) {
	result := make(map[string]string, len(domain.ConfigKeys))
	for _, key := range domain.ConfigKeys {
		result[key.Name] = key.Default
	}

	lines, err := ReadLines()
	if err != nil {
		return result, nil
	}
	cfg, err := Parse(lines)
	if err != nil {
		return result, nil
	}
	for k, v := range cfg {
		result[k] = v
	}
	return result, nil
}
