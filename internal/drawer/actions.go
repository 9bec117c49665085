package drawer

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/footprint-tools/drawer/internal/surface"
)

// ErrUnknownAction is returned by Execute for names other than open, close
// and toggle.
var ErrUnknownAction = errors.New("drawer: unknown action")

// Execute runs a named action, so a panel can be registered as a binding
// target on a surface.Document.
func (p *Panel) Execute(action string, trigger *surface.Element) (tea.Cmd, error) {
	switch action {
	case "open":
		return p.RequestOpen(trigger), nil
	case "close":
		return p.RequestClose(), nil
	case "toggle":
		return p.RequestToggle(trigger), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAction, action)
	}
}
