package config

import (
	"github.com/footprint-tools/drawer/internal/dispatchers"
	"github.com/footprint-tools/drawer/internal/domain"
	"github.com/footprint-tools/drawer/internal/usage"
)

func Get(args []string, flags *dispatchers.ParsedFlags) error {
	return get(args, flags, DefaultDeps())
}

// get prints the effective value, which is the default when the file does
// not set the key.
func get(args []string, _ *dispatchers.ParsedFlags, deps Deps) error {
	if len(args) < 1 {
		return usage.MissingArgument("key")
	}

	key := args[0]
	if !domain.IsValidConfigKey(key) {
		return usage.InvalidConfigKey(key)
	}

	value, _ := deps.Get(key)
	_, _ = deps.Println(value)
	return nil
}
