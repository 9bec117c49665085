package usage

import (
	"fmt"
	"strings"
)

// UnknownCommand is returned for a command that does not exist, with the
// closest names as hints.
func UnknownCommand(command string, suggestions ...string) *Error {
	var b strings.Builder
	fmt.Fprintf(&b, "drawer: '%s' is not a drawer command. See 'drawer --help'.", command)
	switch len(suggestions) {
	case 0:
	case 1:
		fmt.Fprintf(&b, "\n\nThe most similar command is\n\t%s", suggestions[0])
	default:
		b.WriteString("\n\nThe most similar commands are")
		for _, s := range suggestions {
			fmt.Fprintf(&b, "\n\t%s", s)
		}
	}
	return &Error{Kind: ErrUnknownCommand, Message: b.String()}
}
