package style

import (
	"os"
	"strings"

	"github.com/muesli/termenv"
)

// ColorConfig holds the colors of one theme. Values are ANSI numbers
// (0-255) or "bold".
type ColorConfig struct {
	Success  string
	Warning  string
	Error    string
	Info     string
	Muted    string
	Header   string
	UIActive string // drawer border, focused pane
	UIDim    string // unfocused pane, mask tint
	Open     string // "open" notifications
	Close    string // "close" notifications
}

// BaseThemeNames lists theme bases; each has -dark and -light variants.
var BaseThemeNames = []string{
	"default", "neon", "aurora", "mono", "ocean", "sunset", "candy", "contrast",
}

// Themes holds every built-in variant. Dark variants use bright colors,
// light variants dark ones.
var Themes = map[string]ColorConfig{
	"default-dark":   {Success: "10", Warning: "11", Error: "9", Info: "14", Muted: "245", Header: "bold", UIActive: "14", UIDim: "240", Open: "10", Close: "13"},
	"default-light":  {Success: "28", Warning: "130", Error: "124", Info: "27", Muted: "243", Header: "bold", UIActive: "27", UIDim: "250", Open: "28", Close: "90"},
	"neon-dark":      {Success: "48", Warning: "220", Error: "197", Info: "51", Muted: "244", Header: "bold", UIActive: "201", UIDim: "238", Open: "48", Close: "201"},
	"neon-light":     {Success: "29", Warning: "166", Error: "161", Info: "31", Muted: "242", Header: "bold", UIActive: "127", UIDim: "252", Open: "29", Close: "127"},
	"aurora-dark":    {Success: "114", Warning: "222", Error: "204", Info: "117", Muted: "246", Header: "bold", UIActive: "141", UIDim: "239", Open: "114", Close: "141"},
	"aurora-light":   {Success: "65", Warning: "136", Error: "125", Info: "67", Muted: "244", Header: "bold", UIActive: "97", UIDim: "251", Open: "65", Close: "97"},
	"mono-dark":      {Success: "255", Warning: "250", Error: "255", Info: "252", Muted: "243", Header: "bold", UIActive: "255", UIDim: "238", Open: "255", Close: "248"},
	"mono-light":     {Success: "232", Warning: "238", Error: "232", Info: "236", Muted: "245", Header: "bold", UIActive: "232", UIDim: "252", Open: "232", Close: "240"},
	"ocean-dark":     {Success: "79", Warning: "186", Error: "210", Info: "39", Muted: "245", Header: "bold", UIActive: "39", UIDim: "24", Open: "79", Close: "75"},
	"ocean-light":    {Success: "30", Warning: "94", Error: "131", Info: "25", Muted: "244", Header: "bold", UIActive: "25", UIDim: "153", Open: "30", Close: "61"},
	"sunset-dark":    {Success: "150", Warning: "214", Error: "203", Info: "216", Muted: "245", Header: "bold", UIActive: "209", UIDim: "237", Open: "150", Close: "209"},
	"sunset-light":   {Success: "64", Warning: "172", Error: "160", Info: "166", Muted: "243", Header: "bold", UIActive: "166", UIDim: "254", Open: "64", Close: "166"},
	"candy-dark":     {Success: "121", Warning: "229", Error: "211", Info: "159", Muted: "246", Header: "bold", UIActive: "219", UIDim: "239", Open: "121", Close: "219"},
	"candy-light":    {Success: "35", Warning: "172", Error: "168", Info: "38", Muted: "244", Header: "bold", UIActive: "170", UIDim: "253", Open: "35", Close: "170"},
	"contrast-dark":  {Success: "46", Warning: "226", Error: "196", Info: "51", Muted: "250", Header: "bold", UIActive: "231", UIDim: "236", Open: "46", Close: "201"},
	"contrast-light": {Success: "22", Warning: "94", Error: "88", Info: "18", Muted: "238", Header: "bold", UIActive: "16", UIDim: "254", Open: "22", Close: "53"},
}

// colorConfigKeys maps config keys to ColorConfig fields.
var colorConfigKeys = map[string]func(*ColorConfig) *string{
	"color_ui_active": func(c *ColorConfig) *string { return &c.UIActive },
	"color_ui_dim":    func(c *ColorConfig) *string { return &c.UIDim },
}

// IsDarkBackground asks the terminal; it reports true when unsure.
func IsDarkBackground() bool {
	return termenv.HasDarkBackground()
}

// ResolveThemeName appends -dark or -light to a base name by asking the
// terminal. Names that already carry a variant are returned unchanged.
func ResolveThemeName(name string) string {
	if strings.HasSuffix(name, "-dark") || strings.HasSuffix(name, "-light") {
		return name
	}
	if IsDarkBackground() {
		return name + "-dark"
	}
	return name + "-light"
}

// LoadColorConfig picks the theme named by DRAWER_THEME or cfg["theme"],
// then applies overrides. DRAWER_COLOR_* variables beat config values.
func LoadColorConfig(cfg map[string]string) ColorConfig {
	name := "default"
	if env := os.Getenv("DRAWER_THEME"); env != "" {
		name = env
	} else if v := cfg["theme"]; v != "" {
		name = v
	}

	theme, ok := Themes[ResolveThemeName(name)]
	if !ok {
		theme = Themes["default-dark"]
	}

	for key, field := range colorConfigKeys {
		if v := os.Getenv("DRAWER_" + strings.ToUpper(key)); v != "" {
			*field(&theme) = v
			continue
		}
		if v := cfg[key]; v != "" {
			*field(&theme) = v
		}
	}
	return theme
}
