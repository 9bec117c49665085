package dispatchers

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

const maxSuggestionDistance = 3

type suggestion struct {
	name     string
	distance int
}

// FindSimilarCommands returns up to maxResults children of node whose
// names are within a small edit distance of input, closest first.
func FindSimilarCommands(input string, node *DispatchNode, maxResults int) []string {
	if node == nil || node.Children == nil {
		return nil
	}

	var suggestions []suggestion
	for name := range node.Children {
		dist := levenshtein.ComputeDistance(strings.ToLower(input), strings.ToLower(name))
		if dist <= maxSuggestionDistance && dist > 0 {
			suggestions = append(suggestions, suggestion{name: name, distance: dist})
		}
	}

	sort.Slice(suggestions, func(i, j int) bool {
		if suggestions[i].distance != suggestions[j].distance {
			return suggestions[i].distance < suggestions[j].distance
		}
		return suggestions[i].name < suggestions[j].name
	})

	if len(suggestions) > maxResults {
		suggestions = suggestions[:maxResults]
	}

	result := make([]string, len(suggestions))
	for i, s := range suggestions {
		result[i] = s.name
	}
	return result
}

// CollectAllCommands recursively collects all command paths below node.
func CollectAllCommands(node *DispatchNode, prefix string) []string {
	if node == nil {
		return nil
	}

	var commands []string
	for name, child := range node.Children {
		fullPath := name
		if prefix != "" {
			fullPath = prefix + " " + name
		}
		commands = append(commands, fullPath)
		commands = append(commands, CollectAllCommands(child, fullPath)...)
	}
	sort.Strings(commands)
	return commands
}
