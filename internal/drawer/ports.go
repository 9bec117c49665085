package drawer

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/footprint-tools/drawer/internal/events"
	"github.com/footprint-tools/drawer/internal/gesture"
	"github.com/footprint-tools/drawer/internal/history"
	"github.com/footprint-tools/drawer/internal/surface"
)

// Document is the viewport service of the host surface.
type Document interface {
	EnterOverlayMode()
	LeaveOverlayMode()
	ScrollTop() int
	AddToFixedLayer(el *surface.Element, forceTransfer bool)
	Query(selector string) []*surface.Element
	FocusedWithin(el *surface.Element) bool
	Focus(el *surface.Element) bool
	Nudge(el *surface.Element)
	RevealFocused(el *surface.Element)
	CreateScrim(id string) *surface.Element
}

// History pushes reversible markers. Push may block and is called from a
// tea.Cmd; Pop is called from Update.
type History interface {
	Push(undo func() tea.Cmd) (history.MarkerID, error)
	Pop(id history.MarkerID) bool
}

// Owner drives the lifecycle of the panel's children.
type Owner interface {
	ScheduleLayout(parent *surface.Element)
	ScheduleResume(parent *surface.Element) tea.Cmd
	SchedulePause(parent *surface.Element)
}

// Notifier tells the embedding program about open and close.
type Notifier interface {
	Trigger(name string, trust events.Trust)
}

// GestureSource accepts regions a swipe may start in.
type GestureSource interface {
	Attach(reg gesture.Region)
}

// Scheduler delivers msg back to Update after delay.
type Scheduler interface {
	After(delay time.Duration, msg tea.Msg) tea.Cmd
}

// TickScheduler schedules with tea.Tick.
type TickScheduler struct{}

// After implements Scheduler.
func (TickScheduler) After(delay time.Duration, msg tea.Msg) tea.Cmd {
	if delay <= 0 {
		return func() tea.Msg { return msg }
	}
	return tea.Tick(delay, func(time.Time) tea.Msg { return msg })
}
