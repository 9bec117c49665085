// Package app wires the process-wide collaborators the commands share.
package app

import (
	"github.com/footprint-tools/drawer/internal/config"
	"github.com/footprint-tools/drawer/internal/domain"
	"github.com/footprint-tools/drawer/internal/log"
	"github.com/footprint-tools/drawer/internal/paths"
	"github.com/footprint-tools/drawer/internal/store"
	"github.com/footprint-tools/drawer/internal/ui/style"
)

// Version is stamped at build time with -ldflags "-X .../app.Version=...".
var Version = "dev"

// Application holds the collaborators of one invocation.
type Application struct {
	Config   domain.ConfigProvider
	Settings config.DrawerSettings
	Logger   domain.Logger
	Styler   domain.Styler
	Journal  *store.Store // nil when the journal is off
}

// Options configures the application factory.
type Options struct {
	Settings config.DrawerSettings

	LogEnabled bool
	LogPath    string

	JournalEnabled bool
	JournalPath    string

	StyleEnabled bool
	StyleConfig  map[string]string
}

// DefaultOptions derives options from the config file.
func DefaultOptions() Options {
	values, err := config.GetAll()
	if err != nil {
		values = map[string]string{}
	}
	settings := config.SettingsFrom(values)

	return Options{
		Settings:       settings,
		LogEnabled:     settings.EnableLog,
		LogPath:        paths.LogFilePath(),
		JournalEnabled: settings.Journal,
		JournalPath:    paths.JournalPath(),
		StyleEnabled:   true,
		StyleConfig:    values,
	}
}

// New creates an Application with all dependencies wired up. A log file
// that cannot be opened falls back to a NopLogger; a journal that cannot
// be opened is an error.
func New(opts Options) (*Application, error) {
	var logger domain.Logger = log.NopLogger{}
	if opts.LogEnabled && opts.LogPath != "" {
		if l, err := log.New(opts.LogPath, log.ParseLevel(opts.Settings.LogLevel)); err == nil {
			logger = l
		}
	}

	var journal *store.Store
	if opts.JournalEnabled && opts.JournalPath != "" {
		s, err := store.New(opts.JournalPath)
		if err != nil {
			_ = logger.Close()
			return nil, err
		}
		journal = s
	}

	style.Init(opts.StyleEnabled, opts.StyleConfig)

	return &Application{
		Config:   config.NewProvider(),
		Settings: opts.Settings,
		Logger:   logger,
		Styler:   style.NewStyler(),
		Journal:  journal,
	}, nil
}

// NewForTesting creates an Application with defaults, no journal, a
// NopLogger and no styling.
func NewForTesting() *Application {
	return &Application{
		Config:   config.NewProvider(),
		Settings: config.SettingsFrom(nil),
		Logger:   log.NopLogger{},
		Styler:   style.NopStyler{},
	}
}

// Close cleans up application resources.
func Close(app *Application) error {
	if app.Logger != nil {
		_ = app.Logger.Close()
	}
	if app.Journal != nil {
		return app.Journal.Close()
	}
	return nil
}
