package cli

import "github.com/footprint-tools/drawer/internal/dispatchers"

var (
	ConfigKeyArg = []dispatchers.ArgSpec{
		{
			Name:        "key",
			Description: "Configuration key",
			Required:    true,
		},
	}

	OptionalConfigKeyArg = []dispatchers.ArgSpec{
		{
			Name:        "key",
			Description: "Configuration key (omit with --all)",
			Required:    false,
		},
	}

	ConfigKeyValueArgs = []dispatchers.ArgSpec{
		{
			Name:        "key",
			Description: "Configuration key",
			Required:    true,
		},
		{
			Name:        "value",
			Description: "Value to assign",
			Required:    true,
		},
	}

	OptionalShellArg = []dispatchers.ArgSpec{
		{
			Name:        "shell",
			Description: "bash, zsh or fish (defaults to $SHELL)",
			Required:    false,
		},
	}

	ThemeNameArg = []dispatchers.ArgSpec{
		{
			Name:        "name",
			Description: "Theme name (e.g., default, ocean-light)",
			Required:    true,
		},
	}
)
