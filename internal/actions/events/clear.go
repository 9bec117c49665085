package events

import (
	"fmt"

	"github.com/footprint-tools/drawer/internal/dispatchers"
)

func Clear(args []string, flags *dispatchers.ParsedFlags) error {
	return clearJournal(args, flags, DefaultDeps())
}

func clearJournal(_ []string, _ *dispatchers.ParsedFlags, deps Deps) error {
	journal, err := deps.OpenJournal()
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}
	defer func() { _ = journal.Close() }()

	n, err := journal.Clear()
	if err != nil {
		return err
	}
	noun := "notifications"
	if n == 1 {
		noun = "notification"
	}
	_, _ = deps.Printf("removed %d %s\n", n, noun)
	return nil
}
