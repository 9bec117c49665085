package domain

// ConfigProvider reads and writes persisted settings.
type ConfigProvider interface {
	// Get returns the value for a configuration key.
	Get(key string) (string, bool)

	// GetAll returns every effective value, defaults included.
	GetAll() (map[string]string, error)

	// Set stores a value.
	Set(key, value string) error

	// Unset removes a value so its default applies again.
	Unset(key string) error
}

// Logger is the leveled logger components receive.
type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)

	// Close releases the log file, if any.
	Close() error
}

// Styler applies the semantic colors of the active theme.
type Styler interface {
	Enabled() bool
	Success(text string) string
	Warning(text string) string
	Error(text string) string
	Info(text string) string
	Muted(text string) string
	Header(text string) string
}
