package dispatchers

import (
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/footprint-tools/drawer/internal/usage"
)

// ParsedFlags provides typed access to command-line flags. Value flags are
// expected in --flag=value form; main rewrites "--flag value" beforehand.
type ParsedFlags struct {
	raw []string
}

func NewParsedFlags(flags []string) *ParsedFlags {
	return &ParsedFlags{raw: flags}
}

func (f *ParsedFlags) Raw() []string {
	return f.raw
}

// Has reports whether a boolean flag is present.
func (f *ParsedFlags) Has(name string) bool {
	return slices.Contains(f.raw, name)
}

// String returns the value of the last --name=value, or defaultVal.
func (f *ParsedFlags) String(name, defaultVal string) string {
	prefix := name + "="
	value := defaultVal
	for _, flag := range f.raw {
		if v, ok := strings.CutPrefix(flag, prefix); ok {
			value = v
		}
	}
	return value
}

// Int returns the integer value of a flag, or defaultVal if not present or invalid.
func (f *ParsedFlags) Int(name string, defaultVal int) int {
	n, err := strconv.Atoi(f.String(name, ""))
	if err != nil {
		return defaultVal
	}
	return n
}

// Date returns the YYYY-MM-DD value of a flag as local midnight, or nil.
func (f *ParsedFlags) Date(name string) *time.Time {
	str := f.String(name, "")
	if str == "" {
		return nil
	}
	t, err := time.ParseInLocation("2006-01-02", str, time.Local)
	if err != nil {
		return nil
	}
	return &t
}

// Choice returns the flag's value when it is one of allowed, defaultVal
// when the flag is absent, and a usage error otherwise.
func (f *ParsedFlags) Choice(name, defaultVal string, allowed ...string) (string, error) {
	value := f.String(name, defaultVal)
	if !slices.Contains(allowed, value) {
		return "", usage.InvalidValue(name, value, strings.Join(allowed, " or "))
	}
	return value, nil
}
