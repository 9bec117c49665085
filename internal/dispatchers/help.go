package dispatchers

import (
	"fmt"
	"sort"
	"strings"

	"github.com/footprint-tools/drawer/internal/ui"
	"github.com/footprint-tools/drawer/internal/ui/style"
)

// commandDisplayOrder orders commands within a category. Commands not
// listed follow alphabetically.
var commandDisplayOrder = map[string]int{
	"demo":         1,
	"events":       1,
	"events clear": 2,
	"version":      3,
	"config get":   1,
	"config set":   2,
	"config unset": 3,
	"config list":  4,
	"theme list":   5,
	"theme set":    6,
	"completions":  7,
}

// formatUsage styles the usage line with the command in Info color and the rest muted.
func formatUsage(usage string) string {
	cmdEnd := strings.IndexAny(usage, "[<")
	if cmdEnd < 0 {
		return style.Info(strings.TrimSpace(usage))
	}
	return style.Info(strings.TrimSpace(usage[:cmdEnd])) + " " + style.Muted(usage[cmdEnd:])
}

// collectLeafCommands gathers runnable nodes. A node with both an action
// and children is listed along with its children.
func collectLeafCommands(node *DispatchNode, out *[]*DispatchNode) {
	if node.Action != nil {
		*out = append(*out, node)
	}
	for _, child := range node.Children {
		collectLeafCommands(child, out)
	}
}

func displayName(n *DispatchNode) string {
	return strings.Join(n.Path[1:], " ")
}

func sortForDisplay(nodes []*DispatchNode) {
	sort.Slice(nodes, func(i, j int) bool {
		nameI, nameJ := displayName(nodes[i]), displayName(nodes[j])
		orderI, hasI := commandDisplayOrder[nameI]
		orderJ, hasJ := commandDisplayOrder[nameJ]
		switch {
		case hasI && hasJ && orderI != orderJ:
			return orderI < orderJ
		case hasI != hasJ:
			return hasI
		}
		return nameI < nameJ
	})
}

// HelpAction shows help for node through the pager.
func HelpAction(node *DispatchNode, root *DispatchNode) CommandFunc {
	return func(_ []string, _ *ParsedFlags) error {
		ui.Pager(renderHelp(node, root))
		return nil
	}
}

func renderHelp(node *DispatchNode, root *DispatchNode) string {
	var out strings.Builder

	if node == root {
		fmt.Fprintf(&out, "%s - %s\n\n", root.Name, root.Summary)
		fmt.Fprintf(&out, "USAGE\n   %s\n\n", formatUsage(node.Usage))

		var leaves []*DispatchNode
		for _, child := range root.Children {
			collectLeafCommands(child, &leaves)
		}
		grouped := make(map[CommandCategory][]*DispatchNode)
		for _, cmd := range leaves {
			grouped[cmd.Category] = append(grouped[cmd.Category], cmd)
		}

		for _, cat := range categoryOrder {
			cmds := grouped[cat]
			if len(cmds) == 0 {
				continue
			}
			out.WriteString(cat.String())
			out.WriteString("\n")
			sortForDisplay(cmds)
			for _, cmd := range cmds {
				fmt.Fprintf(&out, "   %s  %s\n", style.Info(fmt.Sprintf("%-16s", displayName(cmd))), cmd.Summary)
			}
			out.WriteString("\n")
		}

		if len(root.Flags) > 0 {
			writeFlags(&out, root.Flags)
		}
		fmt.Fprintf(&out, "See '%s help <command>' for detailed help on a specific command.\n", root.Name)
		return out.String()
	}

	out.WriteString(strings.Join(node.Path, " "))
	if node.Summary != "" {
		out.WriteString(" - ")
		out.WriteString(node.Summary)
	}
	out.WriteString("\n\n")
	fmt.Fprintf(&out, "USAGE\n   %s\n\n", formatUsage(node.Usage))

	if node.Description != "" {
		out.WriteString(node.Description)
		out.WriteString("\n\n")
	}

	if len(node.Children) > 0 {
		out.WriteString("COMMANDS\n")
		children := make([]*DispatchNode, 0, len(node.Children))
		for _, child := range node.Children {
			children = append(children, child)
		}
		sortForDisplay(children)
		for _, child := range children {
			fmt.Fprintf(&out, "   %s  %s\n", style.Info(fmt.Sprintf("%-12s", child.Name)), child.Summary)
		}
		out.WriteString("\n")
	}

	if len(node.Args) > 0 {
		out.WriteString("ARGUMENTS\n")
		for _, a := range node.Args {
			name := "<" + a.Name + ">"
			if !a.Required {
				name = "[" + a.Name + "]"
			}
			fmt.Fprintf(&out, "   %s  %s\n", style.Info(fmt.Sprintf("%-24s", name)), a.Description)
		}
		out.WriteString("\n")
	}

	if len(node.Flags) > 0 {
		writeFlags(&out, node.Flags)
	}

	fmt.Fprintf(&out, "See '%s help <command>' to read about a specific command.\n", root.Name)
	return out.String()
}

func writeFlags(out *strings.Builder, flags []FlagDescriptor) {
	out.WriteString("FLAGS\n")
	for _, f := range flags {
		name := strings.Join(f.Names, ", ")
		if f.ValueHint != "" {
			name = name + " " + f.ValueHint
		}
		fmt.Fprintf(out, "   %s  %s\n", style.Info(fmt.Sprintf("%-24s", name)), f.Description)
	}
	out.WriteString("\n")
}
