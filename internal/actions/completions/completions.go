package completions

import (
	"fmt"
	"io"
	"os"

	"github.com/footprint-tools/drawer/internal/completions"
	"github.com/footprint-tools/drawer/internal/dispatchers"
	"github.com/footprint-tools/drawer/internal/usage"
)

type Deps struct {
	Tree    func() *dispatchers.DispatchNode
	Stdout  io.Writer
	Getenv  func(string) string
	Printf  func(string, ...any) (int, error)
	Println func(...any) (int, error)
}

func DefaultDeps() Deps {
	return Deps{
		Tree:    completions.GetCommandTree,
		Stdout:  os.Stdout,
		Getenv:  os.Getenv,
		Printf:  fmt.Printf,
		Println: fmt.Println,
	}
}

// Completions prints how to enable completions, or the script itself
// with --script.
func Completions(args []string, flags *dispatchers.ParsedFlags) error {
	return completionsCmd(args, flags, DefaultDeps())
}

func completionsCmd(args []string, flags *dispatchers.ParsedFlags, deps Deps) error {
	var (
		shell completions.Shell
		ok    bool
	)
	if len(args) > 0 {
		shell, ok = completions.ParseShell(args[0])
		if !ok {
			return usage.InvalidValue("shell", args[0], "bash, zsh or fish")
		}
	} else if shell, ok = completions.DetectShell(deps.Getenv); !ok {
		return usage.MissingArgument("shell")
	}

	root := deps.Tree()
	if flags.Has("--script") {
		return completions.PrintCompletions(deps.Stdout, root, shell)
	}

	bin := "drawer"
	if root != nil {
		bin = root.Name
	}
	_, _ = deps.Printf("To enable %s completions, add this line to %s:\n", shell, completions.RcFile(shell))
	_, _ = deps.Println()
	_, _ = deps.Printf("   %s\n", completions.SourceInstructions(bin, shell))
	_, _ = deps.Println()
	_, _ = deps.Println("Then restart your shell or run: exec $SHELL")
	return nil
}
