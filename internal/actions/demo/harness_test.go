package demo

import (
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/drawer/internal/config"
	"github.com/footprint-tools/drawer/internal/drawer"
	"github.com/footprint-tools/drawer/internal/events"
	"github.com/footprint-tools/drawer/internal/ui/style"
)

func init() {
	style.Init(false, nil)
}

// immediate delivers every scheduled message right away.
type immediate struct{}

func (immediate) After(_ time.Duration, msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

type fixture struct {
	m     *model
	notes []events.Event
	ticks int
}

func newFixture(t *testing.T, side drawer.Side) *fixture {
	t.Helper()
	f := &fixture{}
	bus := events.NewBus()
	bus.Subscribe(func(e events.Event) { f.notes = append(f.notes, e) })

	clock := time.Date(2026, 4, 29, 12, 0, 0, 0, time.UTC)
	m, err := newModel(modelOptions{
		Settings:  config.SettingsFrom(nil),
		Side:      side,
		Bus:       bus,
		Scheduler: immediate{},
		Now:       func() time.Time { return clock },
	})
	require.NoError(t, err)
	f.m = m
	f.send(tea.WindowSizeMsg{Width: 80, Height: 16})
	return f
}

// send feeds msg to the model and runs every command it leads to.
// Spinner ticks are delivered once; the follow-up tick timers are dropped.
func (f *fixture) send(msg tea.Msg) {
	queue := []tea.Msg{msg}
	for steps := 0; len(queue) > 0 && steps < 10_000; steps++ {
		next := queue[0]
		queue = queue[1:]
		_, cmd := f.m.Update(next)
		if _, ok := next.(spinner.TickMsg); ok {
			f.ticks++
			continue
		}
		queue = append(queue, collect(cmd)...)
	}
}

func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	switch msg := cmd().(type) {
	case nil:
		return nil
	case tea.BatchMsg:
		var out []tea.Msg
		for _, c := range msg {
			out = append(out, collect(c)...)
		}
		return out
	default:
		return []tea.Msg{msg}
	}
}

func (f *fixture) key(s string) {
	switch s {
	case "esc":
		f.send(tea.KeyMsg{Type: tea.KeyEsc})
	case "enter":
		f.send(tea.KeyMsg{Type: tea.KeyEnter})
	default:
		f.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	}
}

func (f *fixture) mouse(action tea.MouseAction, button tea.MouseButton, x, y int) {
	f.send(tea.MouseMsg{X: x, Y: y, Action: action, Button: button})
}

func (f *fixture) tap(x, y int) {
	f.mouse(tea.MouseActionPress, tea.MouseButtonLeft, x, y)
	f.mouse(tea.MouseActionRelease, tea.MouseButtonNone, x, y)
}

// drag presses at (x, y), moves through each column in xs and releases
// at the last one.
func (f *fixture) drag(x, y int, xs ...int) {
	f.mouse(tea.MouseActionPress, tea.MouseButtonLeft, x, y)
	for _, nx := range xs {
		f.mouse(tea.MouseActionMotion, tea.MouseButtonLeft, nx, y)
	}
	f.mouse(tea.MouseActionRelease, tea.MouseButtonNone, xs[len(xs)-1], y)
}

func (f *fixture) open(t *testing.T) {
	t.Helper()
	f.key("m")
	require.Equal(t, drawer.Opened, f.m.panel.State())
}

func (f *fixture) names() []string {
	var out []string
	for _, e := range f.notes {
		out = append(out, e.Name)
	}
	return out
}
