package cli

import "github.com/footprint-tools/drawer/internal/dispatchers"

var (
	RootFlags = []dispatchers.FlagDescriptor{
		{
			Names:       []string{"--help", "-h"},
			Description: "Show help",
			Scope:       dispatchers.FlagScopeGlobal,
		},
		{
			Names:       []string{"--version", "-v"},
			Description: "Show version",
			Scope:       dispatchers.FlagScopeGlobal,
		},
		{
			Names:       []string{"--no-color"},
			Description: "Disable colored output",
			Scope:       dispatchers.FlagScopeGlobal,
		},
		{
			Names:       []string{"--no-pager"},
			Description: "Do not use pager for output",
			Scope:       dispatchers.FlagScopeGlobal,
		},
		{
			Names:       []string{"--pager"},
			ValueHint:   "<cmd>",
			Description: "Use specified pager for this command",
			Scope:       dispatchers.FlagScopeGlobal,
		},
	}

	DemoFlags = []dispatchers.FlagDescriptor{
		{
			Names:       []string{"--side"},
			ValueHint:   "<left|right>",
			Description: "Edge the drawer slides in from (overrides config side)",
			Scope:       dispatchers.FlagScopeLocal,
		},
		{
			Names:       []string{"--no-journal"},
			Description: "Do not record notifications for this session",
			Scope:       dispatchers.FlagScopeLocal,
		},
	}

	EventsFlags = []dispatchers.FlagDescriptor{
		{
			Names:       []string{"--limit", "-n"},
			ValueHint:   "<n>",
			Description: "Show at most n notifications (default 20)",
			Scope:       dispatchers.FlagScopeLocal,
		},
		{
			Names:       []string{"--name"},
			ValueHint:   "<open|close>",
			Description: "Only show notifications with this name",
			Scope:       dispatchers.FlagScopeLocal,
		},
		{
			Names:       []string{"--source"},
			ValueHint:   "<id>",
			Description: "Only show notifications from this drawer",
			Scope:       dispatchers.FlagScopeLocal,
		},
		{
			Names:       []string{"--since"},
			ValueHint:   "<date>",
			Description: "Show notifications on or after date (YYYY-MM-DD)",
			Scope:       dispatchers.FlagScopeLocal,
		},
	}

	CompletionsFlags = []dispatchers.FlagDescriptor{
		{
			Names:       []string{"--script"},
			Description: "Print the completion script instead of instructions",
			Scope:       dispatchers.FlagScopeLocal,
		},
	}

	ConfigUnsetFlags = []dispatchers.FlagDescriptor{
		{
			Names:       []string{"--all"},
			Description: "Delete all the config key=value pairs",
			Scope:       dispatchers.FlagScopeLocal,
		},
	}
)

// ValueFlags take the following token as their value when written without
// "=", as in "--side right".
var ValueFlags = valueFlags(RootFlags, DemoFlags, EventsFlags)

func valueFlags(groups ...[]dispatchers.FlagDescriptor) map[string]bool {
	out := make(map[string]bool)
	for _, group := range groups {
		for _, f := range group {
			if f.ValueHint == "" {
				continue
			}
			for _, name := range f.Names {
				out[name] = true
			}
		}
	}
	return out
}
