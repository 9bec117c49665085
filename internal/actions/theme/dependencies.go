package theme

import (
	"fmt"

	"github.com/footprint-tools/drawer/internal/config"
	"github.com/footprint-tools/drawer/internal/ui/style"
)

type Deps struct {
	ReadLines  func() ([]string, error)
	WriteLines func([]string) error
	Set        func([]string, string, string) ([]string, bool)
	Get        func(string) (string, bool)
	WithLock   func(func() error) error
	Printf     func(string, ...any) (int, error)
	Println    func(...any) (int, error)
	ThemeNames []string
	Themes     map[string]style.ColorConfig
}

func DefaultDeps() Deps {
	return Deps{
		ReadLines:  config.ReadLines,
		WriteLines: config.WriteLines,
		Set:        config.Set,
		Get:        config.Get,
		WithLock:   config.WithLock,
		Printf:     fmt.Printf,
		Println:    fmt.Println,
		ThemeNames: variantNames(style.BaseThemeNames),
		Themes:     style.Themes,
	}
}

// variantNames expands base names into their -dark and -light variants.
func variantNames(bases []string) []string {
	out := make([]string, 0, 2*len(bases))
	for _, b := range bases {
		out = append(out, b+"-dark", b+"-light")
	}
	return out
}
