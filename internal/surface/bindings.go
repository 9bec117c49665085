package surface

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// BindingAttr is the attribute carrying markup-declared action bindings,
// e.g. on="tap:nav.toggle".
const BindingAttr = "on"

var (
	// ErrUnknownTarget is returned when a binding names an unregistered target.
	ErrUnknownTarget = errors.New("surface: unknown action target")
	// ErrMalformedBinding is returned for bindings not shaped event:target.action.
	ErrMalformedBinding = errors.New("surface: malformed binding")
)

// ActionTarget is anything that exposes named actions to markup bindings.
type ActionTarget interface {
	Execute(action string, trigger *Element) (tea.Cmd, error)
}

// Binding is one parsed event:target.action entry.
type Binding struct {
	Event  string
	Target string
	Action string
}

// ParseBindings parses a semicolon separated binding list.
func ParseBindings(s string) ([]Binding, error) {
	var out []Binding
	for _, part := range strings.Split(s, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		event, rest, ok := strings.Cut(part, ":")
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrMalformedBinding, part)
		}
		dot := strings.LastIndex(rest, ".")
		if dot <= 0 || dot == len(rest)-1 {
			return nil, fmt.Errorf("%w: %q", ErrMalformedBinding, part)
		}
		out = append(out, Binding{
			Event:  strings.TrimSpace(event),
			Target: strings.TrimSpace(rest[:dot]),
			Action: strings.TrimSpace(rest[dot+1:]),
		})
	}
	return out, nil
}

// Register exposes target's actions under id.
func (d *Document) Register(id string, target ActionTarget) {
	d.targets[id] = target
}

// Invoke runs every binding on el declared for event.
func (d *Document) Invoke(el *Element, event string) (tea.Cmd, error) {
	raw, ok := el.Attr(BindingAttr)
	if !ok {
		return nil, nil
	}
	bindings, err := ParseBindings(raw)
	if err != nil {
		return nil, err
	}

	var cmds []tea.Cmd
	for _, b := range bindings {
		if b.Event != event {
			continue
		}
		target, ok := d.targets[b.Target]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownTarget, b.Target)
		}
		cmd, err := target.Execute(b.Action, el)
		if err != nil {
			return nil, fmt.Errorf("invoke %s.%s: %w", b.Target, b.Action, err)
		}
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...), nil
}
