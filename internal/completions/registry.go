package completions

import (
	"fmt"
	"io"
	"sync"

	"github.com/footprint-tools/drawer/internal/dispatchers"
)

var (
	treeMu      sync.RWMutex
	commandTree *dispatchers.DispatchNode
)

// RegisterCommandTree stores the tree the completions command describes.
// main calls it after building the tree.
func RegisterCommandTree(root *dispatchers.DispatchNode) {
	treeMu.Lock()
	defer treeMu.Unlock()
	commandTree = root
}

// GetCommandTree returns the registered command tree
func GetCommandTree() *dispatchers.DispatchNode {
	treeMu.RLock()
	defer treeMu.RUnlock()
	return commandTree
}

// PrintCompletions writes the completion script for the given shell to w
func PrintCompletions(w io.Writer, root *dispatchers.DispatchNode, shell Shell) error {
	if root == nil {
		return fmt.Errorf("command tree not registered")
	}

	script := generateScript(shell, ExtractCommands(root))
	if script == "" {
		return fmt.Errorf("unsupported shell: %s", shell)
	}

	_, err := fmt.Fprint(w, script)
	return err
}

func generateScript(shell Shell, commands []CommandInfo) string {
	switch shell {
	case ShellBash:
		return GenerateBash(commands)
	case ShellZsh:
		return GenerateZsh(commands)
	case ShellFish:
		return GenerateFish(commands)
	default:
		return ""
	}
}
