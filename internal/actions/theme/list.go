package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/footprint-tools/drawer/internal/dispatchers"
	"github.com/footprint-tools/drawer/internal/ui/style"
)

func List(args []string, flags *dispatchers.ParsedFlags) error {
	return list(args, flags, DefaultDeps())
}

func list(_ []string, _ *dispatchers.ParsedFlags, deps Deps) error {
	current, _ := deps.Get("theme")
	if current == "" {
		current = "default"
	}
	current = style.ResolveThemeName(current)

	_, _ = deps.Println("Available themes (* = current)")
	_, _ = deps.Println("")

	for _, name := range deps.ThemeNames {
		marker := "  "
		if name == current {
			marker = style.Success("* ")
		}
		_, _ = deps.Printf("%s%-16s  %s\n", marker, name, renderColorPreview(deps.Themes[name]))
	}

	_, _ = deps.Println("")
	_, _ = deps.Println("Use 'drawer theme set <name>' to change")
	return nil
}

// renderColorPreview returns colored samples of a theme's drawer colors.
func renderColorPreview(cfg style.ColorConfig) string {
	colorize := func(text, color string) string {
		if color == "" || color == "bold" {
			return lipgloss.NewStyle().Bold(true).Render(text)
		}
		return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(text)
	}

	return colorize("open ", cfg.Open) +
		colorize("close ", cfg.Close) +
		colorize("drawer ", cfg.UIActive) +
		colorize("mask ", cfg.UIDim) +
		colorize("info", cfg.Info)
}
