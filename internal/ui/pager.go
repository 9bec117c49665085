// Package ui holds output helpers shared by the CLI commands.
package ui

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"sync"

	"golang.org/x/term"
)

var (
	pagerDisabled bool
	pagerOverride string
	pagerMu       sync.RWMutex

	stdout     io.Writer = os.Stdout
	isTerminal           = func() bool { return term.IsTerminal(int(os.Stdout.Fd())) }
)

// DisablePager disables the pager globally (used by --no-pager flag).
func DisablePager() {
	pagerMu.Lock()
	pagerDisabled = true
	pagerMu.Unlock()
}

// SetPager sets a pager override for this invocation (used by --pager flag).
func SetPager(cmd string) {
	pagerMu.Lock()
	pagerOverride = cmd
	pagerMu.Unlock()
}

func pagerSettings() (bool, string) {
	pagerMu.RLock()
	defer pagerMu.RUnlock()
	return pagerDisabled, pagerOverride
}

// Pager displays content through a pager if appropriate.
//
// Precedence:
//  1. --no-pager flag: direct output
//  2. stdout not a TTY: direct output
//  3. --pager=<cmd> flag
//  4. $DRAWER_PAGER, then $PAGER
//  5. "less -FRSX"
//
// A pager of "cat" always means direct output.
func Pager(content string) {
	disabled, override := pagerSettings()
	if disabled || !isTerminal() {
		fmt.Fprint(stdout, content)
		return
	}

	cmd := override
	for _, env := range []string{"DRAWER_PAGER", "PAGER"} {
		if cmd != "" {
			break
		}
		cmd = os.Getenv(env)
	}
	if cmd == "" {
		cmd = "less -FRSX"
	}

	parts := strings.Fields(cmd)
	if len(parts) == 0 || parts[0] == "cat" {
		fmt.Fprint(stdout, content)
		return
	}
	runPager(parts[0], parts[1:], content)
}

// runPager falls back to direct output when the pager fails to run.
func runPager(pager string, args []string, content string) {
	cmd := exec.Command(pager, args...)
	cmd.Stdin = strings.NewReader(content)
	cmd.Stdout = stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		fmt.Fprint(stdout, content)
	}
}
