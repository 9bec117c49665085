package theme

import (
	"fmt"

	"github.com/footprint-tools/drawer/internal/dispatchers"
	"github.com/footprint-tools/drawer/internal/ui/style"
	"github.com/footprint-tools/drawer/internal/usage"
)

func Set(args []string, flags *dispatchers.ParsedFlags) error {
	return setTheme(args, flags, DefaultDeps())
}

// setTheme accepts a full variant name or a base name, which then follows
// the terminal background.
func setTheme(args []string, _ *dispatchers.ParsedFlags, deps Deps) error {
	if len(args) < 1 {
		return usage.MissingArgument("name")
	}

	themeName := args[0]
	if _, ok := deps.Themes[themeName]; !ok {
		if _, ok := deps.Themes[themeName+"-dark"]; !ok {
			_, _ = deps.Printf("%s unknown theme: %s\n", style.Error("error:"), themeName)
			_, _ = deps.Println("")
			_, _ = deps.Println("available themes:")
			for _, name := range deps.ThemeNames {
				_, _ = deps.Printf("  %s\n", name)
			}
			return fmt.Errorf("unknown theme: %s", themeName)
		}
	}

	err := deps.WithLock(func() error {
		lines, err := deps.ReadLines()
		if err != nil {
			return err
		}
		lines, _ = deps.Set(lines, "theme", themeName)
		return deps.WriteLines(lines)
	})
	if err != nil {
		return err
	}

	_, _ = deps.Printf("theme set to %s\n", style.Success(themeName))
	return nil
}
