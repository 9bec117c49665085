package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/footprint-tools/drawer/internal/cli"
	"github.com/footprint-tools/drawer/internal/completions"
	"github.com/footprint-tools/drawer/internal/config"
	"github.com/footprint-tools/drawer/internal/dispatchers"
	"github.com/footprint-tools/drawer/internal/ui"
	"github.com/footprint-tools/drawer/internal/ui/style"
	"github.com/footprint-tools/drawer/internal/usage"
)

func main() {
	rawFlags, commands := extractFlagsAndCommands(os.Args[1:])
	flags := dispatchers.NewParsedFlags(rawFlags)

	// Enable styling if stdout is a terminal and --no-color is not set
	enableColor := term.IsTerminal(int(os.Stdout.Fd())) && !flags.Has("--no-color")
	cfg, err := config.GetAll()
	if err != nil {
		cfg = nil
	}
	style.Init(enableColor, cfg)

	if flags.Has("--no-pager") {
		ui.DisablePager()
	}
	if pager := flags.String("--pager", ""); pager != "" {
		ui.SetPager(pager)
	}

	root := cli.BuildTree()
	completions.RegisterCommandTree(root)

	res, err := dispatchers.Dispatch(root, commands, flags)
	if err != nil {
		exit(err)
	}

	if err := res.Execute(res.Args, res.Flags); err != nil {
		exit(err)
	}

	// bare "drawer" prints help and still exits non-zero
	if res.ExitCode != 0 {
		os.Exit(res.ExitCode)
	}
}

func exit(err error) {
	fmt.Fprintln(os.Stderr, err.Error())
	os.Exit(exitCode(err))
}

// exitCode maps usage errors, wrapped or not, to their kind's code.
func exitCode(err error) int {
	var ue *usage.Error
	if errors.As(err, &ue) {
		return ue.GetExitCode()
	}
	return 1
}

// extractFlagsAndCommands splits args into flags and command tokens.
// "-N" is shorthand for --limit=N, "-n" is an alias of --limit, and value
// flags written as "--flag value" become "--flag=value".
func extractFlagsAndCommands(args []string) ([]string, []string) {
	flags := []string{}
	commands := []string{}

	for i := 0; i < len(args); i++ {
		a := args[i]
		if a == "" || a[0] != '-' {
			commands = append(commands, a)
			continue
		}

		if n, ok := numericShorthand(a); ok {
			flags = append(flags, "--limit="+n)
			continue
		}

		name, value, hasValue := strings.Cut(a, "=")
		if name == "-n" {
			name = "--limit"
		}
		switch {
		case hasValue:
			flags = append(flags, name+"="+value)
		case cli.ValueFlags[name] && i+1 < len(args) && !strings.HasPrefix(args[i+1], "-"):
			flags = append(flags, name+"="+args[i+1])
			i++
		default:
			flags = append(flags, name)
		}
	}

	return flags, commands
}

// numericShorthand reports whether a is "-N" with N a positive integer.
func numericShorthand(a string) (string, bool) {
	digits := a[1:]
	if digits == "" || digits[0] == '0' {
		return "", false
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return "", false
		}
	}
	return digits, true
}
