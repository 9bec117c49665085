package theme

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/drawer/internal/config"
	"github.com/footprint-tools/drawer/internal/ui/style"
)

func init() {
	style.Init(false, nil)
}

type recorder struct {
	lines   []string
	written []string
}

func (r *recorder) deps(current string) Deps {
	return Deps{
		ReadLines:  func() ([]string, error) { return []string{"side=left"}, nil },
		WriteLines: func(lines []string) error { r.written = lines; return nil },
		Set:        config.Set,
		Get:        func(string) (string, bool) { return current, current != "" },
		WithLock:   func(fn func() error) error { return fn() },
		Printf: func(format string, a ...any) (int, error) {
			r.lines = append(r.lines, fmt.Sprintf(format, a...))
			return 0, nil
		},
		Println: func(a ...any) (int, error) {
			r.lines = append(r.lines, fmt.Sprintln(a...))
			return 0, nil
		},
		ThemeNames: []string{"default-dark", "default-light", "neon-dark", "neon-light"},
		Themes: map[string]style.ColorConfig{
			"default-dark":  {Open: "10"},
			"default-light": {Open: "28"},
			"neon-dark":     {Open: "48"},
			"neon-light":    {Open: "29"},
		},
	}
}

func TestList_MarksCurrent(t *testing.T) {
	r := &recorder{}
	require.NoError(t, list(nil, nil, r.deps("neon-light")))

	out := strings.Join(r.lines, "")
	require.Contains(t, out, "* neon-light")
	require.Contains(t, out, "  default-dark")
	require.Contains(t, out, "drawer theme set")
}

func TestSet(t *testing.T) {
	tests := []struct {
		name  string
		theme string
	}{
		{"variant", "neon-dark"},
		{"base name", "neon"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &recorder{}
			require.NoError(t, setTheme([]string{tt.theme}, nil, r.deps("")))
			require.Equal(t, []string{"side=left", "theme=" + tt.theme}, r.written)
			require.Equal(t, "theme set to "+tt.theme+"\n", r.lines[len(r.lines)-1])
		})
	}
}

func TestSet_Unknown(t *testing.T) {
	r := &recorder{}
	err := setTheme([]string{"plaid"}, nil, r.deps(""))

	require.EqualError(t, err, "unknown theme: plaid")
	require.Nil(t, r.written)
	require.Contains(t, strings.Join(r.lines, ""), "  neon-light\n")
}

func TestSet_MissingName(t *testing.T) {
	r := &recorder{}
	require.ErrorContains(t, setTheme(nil, nil, r.deps("")), "'name'")
}

func TestSet_WriteFailure(t *testing.T) {
	r := &recorder{}
	deps := r.deps("")
	deps.WriteLines = func([]string) error { return errors.New("read-only") }

	require.ErrorContains(t, setTheme([]string{"neon"}, nil, deps), "read-only")
}

func TestVariantNames(t *testing.T) {
	require.Equal(t, []string{"a-dark", "a-light", "b-dark", "b-light"}, variantNames([]string{"a", "b"}))
	require.Len(t, DefaultDeps().ThemeNames, 2*len(style.BaseThemeNames))
}
