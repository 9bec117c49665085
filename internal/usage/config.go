package usage

import "fmt"

// InvalidConfigKey is returned for a key that is not a known config key.
func InvalidConfigKey(key string) *Error {
	return &Error{
		Kind:    ErrInvalidConfigKey,
		Message: fmt.Sprintf("drawer: '%s' is not a config key. See 'drawer config list'.", key),
	}
}

// NotATerminal is returned by commands that need an interactive terminal.
func NotATerminal(command string) *Error {
	return &Error{
		Kind:    ErrNotATerminal,
		Message: fmt.Sprintf("drawer: '%s' needs an interactive terminal", command),
	}
}
