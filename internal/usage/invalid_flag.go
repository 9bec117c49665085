package usage

import "fmt"

// InvalidFlag is returned when a flag is not valid in the current context.
func InvalidFlag(flag string) *Error {
	return &Error{
		Kind:    ErrInvalidFlag,
		Message: fmt.Sprintf("drawer: invalid flag '%s'", flag),
	}
}

// InvalidValue is returned when a flag or argument has a value that cannot
// be used.
func InvalidValue(name, value, want string) *Error {
	return &Error{
		Kind:    ErrInvalidValue,
		Message: fmt.Sprintf("drawer: invalid value '%s' for %s (want %s)", value, name, want),
	}
}
