// Package demo runs an interactive page with a swipeable navigation
// drawer.
package demo

import (
	"github.com/footprint-tools/drawer/internal/app"
	"github.com/footprint-tools/drawer/internal/dispatchers"
	"github.com/footprint-tools/drawer/internal/drawer"
	"github.com/footprint-tools/drawer/internal/events"
	"github.com/footprint-tools/drawer/internal/usage"
)

func Run(args []string, flags *dispatchers.ParsedFlags) error {
	return run(args, flags, DefaultDeps())
}

func run(_ []string, flags *dispatchers.ParsedFlags, deps Deps) error {
	opts := deps.Options()

	sideName, err := flags.Choice("--side", opts.Settings.Side, "left", "right")
	if err != nil {
		return err
	}
	side, err := drawer.ParseSide(sideName)
	if err != nil {
		return err
	}
	if flags.Has("--no-journal") {
		opts.JournalEnabled = false
	}

	if !deps.IsTerminal() {
		return usage.NotATerminal("demo")
	}

	application, err := deps.NewApp(opts)
	if err != nil {
		return err
	}
	defer func() { _ = app.Close(application) }()

	busOpts := []events.Option{events.WithLogger(application.Logger)}
	if application.Journal != nil {
		busOpts = append(busOpts, events.WithSink(application.Journal))
	}

	m, err := newModel(modelOptions{
		Settings: application.Settings,
		Side:     side,
		Bus:      events.NewBus(busOpts...),
		Logger:   application.Logger,
		Platform: deps.Platform(),
	})
	if err != nil {
		return err
	}

	application.Logger.Info("demo: %s drawer, journal=%t", side, application.Journal != nil)
	return deps.RunProgram(m)
}
