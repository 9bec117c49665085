package dispatchers

import (
	"strings"

	"github.com/footprint-tools/drawer/internal/usage"
)

const defaultSuggestionsCount = 3

func handleHelpCommand(root *DispatchNode, tokens []string, flags *ParsedFlags) (Resolution, error, bool) {
	for i, tok := range tokens {
		if tok != "help" {
			continue
		}

		targetPath := tokens[:i]
		if len(tokens[i+1:]) > 0 {
			targetPath = tokens[i+1:]
		}

		target := resolveNode(root, targetPath)
		if target != nil {
			return Resolution{Node: target, Flags: flags, Execute: HelpAction(target, root)}, nil, true
		}

		suggestions := FindSimilarCommands(targetPath[len(targetPath)-1], root, defaultSuggestionsCount)
		return Resolution{}, usage.UnknownCommand(strings.Join(targetPath, " "), suggestions...), true
	}
	return Resolution{}, nil, false
}

// Dispatch walks tokens down the tree from root and returns what to run.
// Tokens past the deepest matching node become arguments.
func Dispatch(root *DispatchNode, tokens []string, flags *ParsedFlags) (Resolution, error) {
	if res, err, handled := handleHelpCommand(root, tokens, flags); handled {
		return res, err
	}

	current := root
	pathLen := 0

	for i, tok := range tokens {
		child, ok := current.Children[tok]
		if !ok {
			if i == 0 && len(current.Children) > 0 {
				suggestions := FindSimilarCommands(tok, current, defaultSuggestionsCount)
				return Resolution{}, usage.UnknownCommand(tok, suggestions...)
			}
			// a group without an action takes no arguments
			if current.Action == nil && len(current.Children) > 0 {
				suggestions := FindSimilarCommands(tok, current, defaultSuggestionsCount)
				cmdPath := strings.Join(append(current.Path[1:], tok), " ")
				return Resolution{}, usage.UnknownCommand(cmdPath, suggestions...)
			}
			break
		}
		current = child
		pathLen++
	}

	args := tokens[pathLen:]

	if hasHelpFlag(flags) {
		return Resolution{Node: current, Flags: flags, Execute: HelpAction(current, root)}, nil
	}

	if err := validateFlags(flags, validFlagsForNode(current, root)); err != nil {
		return Resolution{}, err
	}

	if err := validateArgs(current.Args, args); err != nil {
		return Resolution{}, err
	}

	if current.Action == nil {
		// bare "drawer" shows help but exits 1, like git
		exitCode := 0
		if current == root && len(tokens) == 0 {
			exitCode = 1
		}
		return Resolution{
			Node:     current,
			Flags:    flags,
			Execute:  HelpAction(current, root),
			ExitCode: exitCode,
		}, nil
	}

	return Resolution{
		Node:    current,
		Args:    args,
		Flags:   flags,
		Execute: current.Action,
	}, nil
}

func hasHelpFlag(flags *ParsedFlags) bool {
	return flags.Has("--help") || flags.Has("-h")
}

func validFlagsForNode(node *DispatchNode, root *DispatchNode) map[string]bool {
	valid := make(map[string]bool)
	for _, f := range append(append([]FlagDescriptor{}, root.Flags...), node.Flags...) {
		for _, name := range f.Names {
			valid[name] = true
		}
	}
	return valid
}

func validateFlags(flags *ParsedFlags, valid map[string]bool) error {
	for _, f := range flags.Raw() {
		name, _, _ := strings.Cut(f, "=")
		if !valid[name] {
			return usage.InvalidFlag(f)
		}
	}
	return nil
}

func validateArgs(spec []ArgSpec, args []string) error {
	for i, a := range spec {
		if a.Required && i >= len(args) {
			return usage.MissingArgument(a.Name)
		}
	}
	return nil
}

func resolveNode(root *DispatchNode, path []string) *DispatchNode {
	current := root
	for _, p := range path {
		child, ok := current.Children[p]
		if !ok {
			return nil
		}
		current = child
	}
	return current
}
