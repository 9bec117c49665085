// Package style provides semantic terminal styling using lipgloss.
//
// All styling is semantic (Success, Warning, Error...) rather than visual.
// When disabled every helper returns its input unchanged.
package style

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	enabled bool
	colors  ColorConfig

	successStyle lipgloss.Style
	warningStyle lipgloss.Style
	errorStyle   lipgloss.Style
	infoStyle    lipgloss.Style
	headerStyle  lipgloss.Style
	mutedStyle   lipgloss.Style
	openStyle    lipgloss.Style
	closeStyle   lipgloss.Style
)

// Init turns styling on or off and loads the theme from cfg. NO_COLOR and
// DRAWER_NO_COLOR force it off. cfg may be nil.
func Init(enable bool, cfg map[string]string) {
	colors = LoadColorConfig(cfg)
	if os.Getenv("NO_COLOR") != "" || os.Getenv("DRAWER_NO_COLOR") != "" {
		enabled = false
		return
	}
	enabled = enable
	if enabled {
		initStyles(colors)
	}
}

// GetColors returns the loaded theme, whether or not styling is enabled.
func GetColors() ColorConfig {
	return colors
}

func initStyles(c ColorConfig) {
	// 256 colors regardless of TTY detection so tests see escape codes
	lipgloss.SetColorProfile(termenv.ANSI256)

	successStyle = makeStyle(c.Success)
	warningStyle = makeStyle(c.Warning)
	errorStyle = makeStyle(c.Error)
	infoStyle = makeStyle(c.Info)
	mutedStyle = makeStyle(c.Muted)
	headerStyle = makeStyle(c.Header)
	openStyle = makeStyle(c.Open)
	closeStyle = makeStyle(c.Close)
}

func makeStyle(value string) lipgloss.Style {
	if value == "bold" {
		return lipgloss.NewStyle().Bold(true)
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(value))
}

func render(s lipgloss.Style, text string) string {
	if !enabled {
		return text
	}
	return s.Render(text)
}

// Enabled reports whether styling is on.
func Enabled() bool { return enabled }

func Success(text string) string { return render(successStyle, text) }
func Warning(text string) string { return render(warningStyle, text) }
func Error(text string) string   { return render(errorStyle, text) }
func Info(text string) string    { return render(infoStyle, text) }
func Header(text string) string  { return render(headerStyle, text) }
func Muted(text string) string   { return render(mutedStyle, text) }

// Notification colors a notification name: open and close get their theme
// colors, anything else is muted.
func Notification(name string) string {
	switch name {
	case "open":
		return render(openStyle, name)
	case "close":
		return render(closeStyle, name)
	default:
		return Muted(name)
	}
}
