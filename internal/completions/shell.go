package completions

import (
	"fmt"
	"path/filepath"
	"strings"
)

type Shell string

const (
	ShellBash Shell = "bash"
	ShellZsh  Shell = "zsh"
	ShellFish Shell = "fish"
)

var Shells = []Shell{ShellBash, ShellZsh, ShellFish}

// ParseShell accepts a shell name or path, e.g. "zsh" or "/bin/zsh".
func ParseShell(s string) (Shell, bool) {
	name := Shell(strings.ToLower(filepath.Base(strings.TrimSpace(s))))
	for _, sh := range Shells {
		if sh == name {
			return sh, true
		}
	}
	return "", false
}

// DetectShell guesses the user's shell from $SHELL.
func DetectShell(getenv func(string) string) (Shell, bool) {
	return ParseShell(getenv("SHELL"))
}

// SourceInstructions returns the line that loads completions in shell's
// rc file.
func SourceInstructions(bin string, shell Shell) string {
	switch shell {
	case ShellBash, ShellZsh:
		return fmt.Sprintf(`eval "$(%s completions %s --script)"`, bin, shell)
	case ShellFish:
		return fmt.Sprintf(`%s completions fish --script | source`, bin)
	default:
		return ""
	}
}

// RcFile returns the rc file path for the given shell
func RcFile(shell Shell) string {
	switch shell {
	case ShellBash:
		return "~/.bashrc"
	case ShellZsh:
		return "~/.zshrc"
	case ShellFish:
		return "~/.config/fish/config.fish"
	default:
		return ""
	}
}
