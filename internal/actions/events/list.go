package events

import (
	"fmt"
	"strings"

	"github.com/footprint-tools/drawer/internal/dispatchers"
	"github.com/footprint-tools/drawer/internal/store"
	"github.com/footprint-tools/drawer/internal/ui/style"
	"github.com/footprint-tools/drawer/internal/usage"
)

const defaultLimit = 20

func List(args []string, flags *dispatchers.ParsedFlags) error {
	return list(args, flags, DefaultDeps())
}

// list prints recorded notifications, newest first.
func list(_ []string, flags *dispatchers.ParsedFlags, deps Deps) error {
	filter, err := filterFromFlags(flags)
	if err != nil {
		return err
	}

	journal, err := deps.OpenJournal()
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}
	defer func() { _ = journal.Close() }()

	evs, err := journal.List(filter)
	if err != nil {
		return err
	}
	if len(evs) == 0 {
		_, _ = deps.Println(style.Muted("no notifications recorded"))
		return nil
	}

	for _, e := range evs {
		_, _ = deps.Printf("%s  %-12s %-6s %s\n",
			style.Muted(deps.FormatTime(e.At.In(deps.Now().Location()))),
			e.Source,
			style.Notification(e.Name),
			style.Muted("("+e.Trust.String()+")"),
		)
	}

	unlimited := filter
	unlimited.Limit = 0
	total, err := journal.Count(unlimited)
	if err != nil {
		return err
	}
	if total > len(evs) {
		_, _ = deps.Printf("%s\n", style.Muted(fmt.Sprintf("showing %d of %d, use --limit=N for more", len(evs), total)))
	}
	return nil
}

func filterFromFlags(flags *dispatchers.ParsedFlags) (store.Filter, error) {
	if flags == nil {
		flags = dispatchers.NewParsedFlags(nil)
	}
	name, err := flags.Choice("--name", "", "", "open", "close")
	if err != nil {
		return store.Filter{}, err
	}

	limit := flags.Int("--limit", defaultLimit)
	if limit <= 0 {
		return store.Filter{}, usage.InvalidValue("--limit", flags.String("--limit", ""), "a positive number")
	}

	f := store.Filter{
		Name:   name,
		Source: strings.TrimSpace(flags.String("--source", "")),
		Limit:  limit,
	}
	if raw := flags.String("--since", ""); raw != "" {
		since := flags.Date("--since")
		if since == nil {
			return store.Filter{}, usage.InvalidValue("--since", raw, "YYYY-MM-DD")
		}
		f.Since = *since
	}
	return f, nil
}
