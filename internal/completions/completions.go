// Package completions generates shell completion scripts from the
// dispatch tree.
package completions

import (
	"slices"
	"sort"

	"github.com/footprint-tools/drawer/internal/dispatchers"
)

// CommandInfo represents a command extracted from the dispatch tree
type CommandInfo struct {
	Name        string
	Path        []string // full path from root, e.g. ["drawer", "config", "set"]
	Summary     string
	Subcommands []string
	Flags       []FlagInfo
}

// FlagInfo represents a flag for a command
type FlagInfo struct {
	Names       []string
	Description string
	HasValue    bool
}

// ExtractCommands walks the dispatch tree depth first, children in name
// order.
func ExtractCommands(root *dispatchers.DispatchNode) []CommandInfo {
	var commands []CommandInfo
	extractNode(root, &commands)
	return commands
}

func extractNode(node *dispatchers.DispatchNode, commands *[]CommandInfo) {
	if node == nil {
		return
	}

	subcommands := make([]string, 0, len(node.Children))
	for name := range node.Children {
		subcommands = append(subcommands, name)
	}
	sort.Strings(subcommands)

	var flags []FlagInfo
	for _, f := range node.Flags {
		flags = append(flags, FlagInfo{
			Names:       f.Names,
			Description: f.Description,
			HasValue:    f.ValueHint != "",
		})
	}

	*commands = append(*commands, CommandInfo{
		Name:        node.Name,
		Path:        node.Path,
		Summary:     node.Summary,
		Subcommands: subcommands,
		Flags:       flags,
	})

	for _, name := range subcommands {
		extractNode(node.Children[name], commands)
	}
}

// FindCommand finds a command by its path
func FindCommand(commands []CommandInfo, path []string) *CommandInfo {
	for i := range commands {
		if slices.Equal(commands[i].Path, path) {
			return &commands[i]
		}
	}
	return nil
}

// globalFlags returns the root's flags, which every command accepts.
func globalFlags(commands []CommandInfo) []FlagInfo {
	for _, c := range commands {
		if len(c.Path) == 1 {
			return c.Flags
		}
	}
	return nil
}

func binaryName(commands []CommandInfo) string {
	for _, c := range commands {
		if len(c.Path) == 1 {
			return c.Path[0]
		}
	}
	return "drawer"
}
