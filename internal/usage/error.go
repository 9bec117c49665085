package usage

// ErrorKind represents the type of usage error.
type ErrorKind int

const (
	ErrUnknown ErrorKind = iota
	ErrInvalidFlag
	ErrMissingArgument
	ErrUnknownCommand
	ErrInvalidConfigKey
	ErrInvalidValue
	ErrNotATerminal
)

// Exit codes:
//
//	Exit 1: environment errors (unknown command, unknown config key,
//	        no terminal)
//	Exit 2: input errors (invalid flag, missing argument, bad value)
var exitCodes = map[ErrorKind]int{
	ErrUnknown:          1,
	ErrInvalidFlag:      2,
	ErrMissingArgument:  2,
	ErrUnknownCommand:   1,
	ErrInvalidConfigKey: 1,
	ErrInvalidValue:     2,
	ErrNotATerminal:     1,
}

// Error represents a user-facing usage error with semantic type information.
type Error struct {
	Kind    ErrorKind
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// GetExitCode returns the exit code derived from Kind.
func (e *Error) GetExitCode() int {
	if code, ok := exitCodes[e.Kind]; ok {
		return code
	}
	return 1
}

var _ error = (*Error)(nil)
