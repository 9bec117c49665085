package cli

import (
	"github.com/footprint-tools/drawer/internal/actions"
	completionsactions "github.com/footprint-tools/drawer/internal/actions/completions"
	configactions "github.com/footprint-tools/drawer/internal/actions/config"
	"github.com/footprint-tools/drawer/internal/actions/demo"
	eventsactions "github.com/footprint-tools/drawer/internal/actions/events"
	themeactions "github.com/footprint-tools/drawer/internal/actions/theme"
	"github.com/footprint-tools/drawer/internal/dispatchers"
)

func BuildTree() *dispatchers.DispatchNode {
	root := dispatchers.Root(dispatchers.RootSpec{
		Name:    "drawer",
		Summary: "Swipeable navigation drawer for the terminal",
		Usage:   "drawer <command> [flags]",
		Flags:   RootFlags,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:    "demo",
		Parent:  root,
		Summary: "Open an interactive page with a navigation drawer",
		Description: `Opens a full-screen page with a menu button. The drawer slides in
from the configured side, masks the page and stops it from scrolling.
Close it by clicking the mask, pressing esc, picking an item, or
dragging it back toward its edge.

Every open and close notification is recorded in the journal unless
--no-journal is given or journal is set to false.`,
		Usage:    "drawer demo [--side=<left|right>] [--no-journal]",
		Flags:    DemoFlags,
		Action:   demo.Run,
		Category: dispatchers.CategoryGetStarted,
	})

	events := dispatchers.Command(dispatchers.CommandSpec{
		Name:    "events",
		Parent:  root,
		Summary: "List recorded open and close notifications",
		Description: `Lists the notifications drawers have dispatched, newest first.
Each row shows when it happened, the drawer that sent it, its name
and its trust level.`,
		Usage:    "drawer events [-n <n>] [--name=<name>] [--source=<id>] [--since=<date>]",
		Flags:    EventsFlags,
		Action:   eventsactions.List,
		Category: dispatchers.CategoryInspect,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "clear",
		Parent:   events,
		Summary:  "Delete every recorded notification",
		Usage:    "drawer events clear",
		Action:   eventsactions.Clear,
		Category: dispatchers.CategoryInspect,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "version",
		Parent:   root,
		Summary:  "Show drawer version",
		Usage:    "drawer version",
		Action:   actions.ShowVersion,
		Category: dispatchers.CategoryInspect,
	})

	config := dispatchers.Group(dispatchers.GroupSpec{
		Name:    "config",
		Parent:  root,
		Summary: "Manage configuration",
		Usage:   "drawer config <command>",
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "get",
		Parent:   config,
		Summary:  "Print the effective value of a config key",
		Usage:    "drawer config get <key>",
		Args:     ConfigKeyArg,
		Action:   configactions.Get,
		Category: dispatchers.CategoryConfig,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "set",
		Parent:   config,
		Summary:  "Set a config value",
		Usage:    "drawer config set <key> <value>",
		Args:     ConfigKeyValueArgs,
		Action:   configactions.Set,
		Category: dispatchers.CategoryConfig,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "unset",
		Parent:   config,
		Summary:  "Remove a config value",
		Usage:    "drawer config unset <key> | --all",
		Flags:    ConfigUnsetFlags,
		Args:     OptionalConfigKeyArg,
		Action:   configactions.Unset,
		Category: dispatchers.CategoryConfig,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "list",
		Parent:   config,
		Summary:  "List every config key with its effective value",
		Usage:    "drawer config list",
		Action:   configactions.List,
		Category: dispatchers.CategoryConfig,
	})

	theme := dispatchers.Group(dispatchers.GroupSpec{
		Name:    "theme",
		Parent:  root,
		Summary: "Manage color themes",
		Usage:   "drawer theme <command>",
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "list",
		Parent:   theme,
		Summary:  "List available themes with a color preview",
		Usage:    "drawer theme list",
		Action:   themeactions.List,
		Category: dispatchers.CategoryConfig,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "set",
		Parent:   theme,
		Summary:  "Set the color theme",
		Usage:    "drawer theme set <name>",
		Args:     ThemeNameArg,
		Action:   themeactions.Set,
		Category: dispatchers.CategoryConfig,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "completions",
		Parent:   root,
		Summary:  "Set up shell completions",
		Usage:    "drawer completions [bash|zsh|fish] [--script]",
		Flags:    CompletionsFlags,
		Args:     OptionalShellArg,
		Action:   completionsactions.Completions,
		Category: dispatchers.CategoryConfig,
	})

	return root
}
