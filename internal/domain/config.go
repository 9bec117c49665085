package domain

// ConfigKey describes one setting in ~/.drawerrc.
type ConfigKey struct {
	Name        string
	Default     string
	Description string
	Section     string // groups keys in `drawer config list`
	Hidden      bool
	HideIfEmpty bool
}

// ConfigKeys is the single list of known settings, in display order.
var ConfigKeys = []ConfigKey{
	// Drawer
	{
		Name:        "side",
		Default:     "left",
		Description: "Edge the demo drawer is anchored to: left, right",
		Section:     "Drawer",
	},
	{
		Name:        "animation_ms",
		Default:     "1000",
		Description: "Milliseconds each open/close transition takes",
		Section:     "Drawer",
	},
	{
		Name:        "drawer_width_percent",
		Default:     "40",
		Description: "Drawer width as a percentage of the terminal (10-90)",
		Section:     "Drawer",
	},
	{
		Name:        "refocus_blocklist",
		Default:     "vscode",
		Description: "Comma separated TERM_PROGRAM values where focus is not restored on close",
		Section:     "Drawer",
	},
	// Swipe
	{
		Name:        "swipe_commit_fraction",
		Default:     "0.5",
		Description: "Fraction of the drawer width a drag must cover to dismiss it",
		Section:     "Swipe",
	},
	{
		Name:        "swipe_commit_velocity",
		Default:     "40",
		Description: "Release speed in cells per second that dismisses regardless of distance",
		Section:     "Swipe",
	},
	{
		Name:        "settle_fps",
		Default:     "60",
		Description: "Frame rate of the snap-back animation after an aborted drag",
		Section:     "Swipe",
	},
	// Display
	{
		Name:        "theme",
		Default:     "default",
		Description: "Color theme: default, neon, aurora, mono, ocean, sunset, candy, contrast",
		Section:     "Display",
	},
	{
		Name:        "display_date",
		Default:     "yyyy-mm-dd",
		Description: "Date format in `drawer events`: yyyy-mm-dd, dd/mm/yyyy, mm/dd/yyyy or a Go layout",
		Section:     "Display",
	},
	{
		Name:        "display_time",
		Default:     "24h",
		Description: "Clock format in `drawer events`: 24h, 12h",
		Section:     "Display",
	},
	// Logging
	{
		Name:        "enable_log",
		Default:     "true",
		Description: "Enable logging to file (true/false)",
		Section:     "Logging",
	},
	{
		Name:        "log_level",
		Default:     "warn",
		Description: "Minimum log level: debug, info, warn, error",
		Section:     "Logging",
	},
	{
		Name:        "journal",
		Default:     "true",
		Description: "Record open/close notifications in the event journal (true/false)",
		Section:     "Logging",
	},
	// Color Overrides
	{
		Name:        "color_ui_active",
		Description: "Override the drawer border color from the current theme (ANSI 0-255)",
		Section:     "Color Overrides",
		HideIfEmpty: true,
	},
	{
		Name:        "color_ui_dim",
		Description: "Override the mask color from the current theme (ANSI 0-255)",
		Section:     "Color Overrides",
		HideIfEmpty: true,
	},
}

var configKeyMap map[string]ConfigKey

func init() {
	configKeyMap = make(map[string]ConfigKey, len(ConfigKeys))
	for _, key := range ConfigKeys {
		configKeyMap[key.Name] = key
	}
}

// GetConfigKey returns the ConfigKey for a given name.
func GetConfigKey(name string) (ConfigKey, bool) {
	key, ok := configKeyMap[name]
	return key, ok
}

// IsValidConfigKey checks if a key name is valid.
func IsValidConfigKey(name string) bool {
	_, ok := configKeyMap[name]
	return ok
}

// GetDefaultValue returns the default value for a config key.
func GetDefaultValue(name string) (string, bool) {
	if key, ok := configKeyMap[name]; ok {
		return key.Default, true
	}
	return "", false
}

// VisibleConfigKeys returns all non-hidden configuration keys.
func VisibleConfigKeys() []ConfigKey {
	var visible []ConfigKey
	for _, key := range ConfigKeys {
		if !key.Hidden {
			visible = append(visible, key)
		}
	}
	return visible
}

// ConfigSections returns the section names in display order.
func ConfigSections() []string {
	return []string{"Drawer", "Swipe", "Display", "Logging", "Color Overrides"}
}

// ConfigKeysBySection returns visible config keys grouped by section.
func ConfigKeysBySection() map[string][]ConfigKey {
	result := make(map[string][]ConfigKey)
	for _, key := range ConfigKeys {
		if !key.Hidden {
			result[key.Section] = append(result[key.Section], key)
		}
	}
	return result
}
