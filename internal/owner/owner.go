// Package owner drives the lifecycle of content nested in a container:
// children are laid out and resumed when the container becomes visible and
// paused when it hides, so hidden content does not keep ticking.
package owner

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/footprint-tools/drawer/internal/surface"
)

// Phase is a child's lifecycle phase.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLaidOut
	PhaseRunning
	PhasePaused
)

func (p Phase) String() string {
	switch p {
	case PhaseLaidOut:
		return "laid-out"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	default:
		return "idle"
	}
}

// Child is content owned by a container element.
type Child interface {
	Layout(width int)
	Resume() tea.Cmd
	Pause()
}

// Service tracks children per container.
type Service struct {
	children map[*surface.Element][]Child
	phases   map[Child]Phase
}

// New creates an empty service.
func New() *Service {
	return &Service{
		children: make(map[*surface.Element][]Child),
		phases:   make(map[Child]Phase),
	}
}

// Register adds child under parent.
func (s *Service) Register(parent *surface.Element, child Child) {
	s.children[parent] = append(s.children[parent], child)
	s.phases[child] = PhaseIdle
}

// Children returns the children registered under parent.
func (s *Service) Children(parent *surface.Element) []Child {
	return s.children[parent]
}

// Phase returns a child's current phase.
func (s *Service) Phase(child Child) Phase {
	return s.phases[child]
}

// ScheduleLayout lays out every child at the parent's width.
func (s *Service) ScheduleLayout(parent *surface.Element) {
	for _, c := range s.children[parent] {
		c.Layout(parent.Width())
		if s.phases[c] == PhaseIdle {
			s.phases[c] = PhaseLaidOut
		}
	}
}

// ScheduleResume resumes children that are not already running and
// returns their start commands.
func (s *Service) ScheduleResume(parent *surface.Element) tea.Cmd {
	var cmds []tea.Cmd
	for _, c := range s.children[parent] {
		if s.phases[c] == PhaseRunning {
			continue
		}
		cmds = append(cmds, c.Resume())
		s.phases[c] = PhaseRunning
	}
	return tea.Batch(cmds...)
}

// SchedulePause pauses running children.
func (s *Service) SchedulePause(parent *surface.Element) {
	for _, c := range s.children[parent] {
		if s.phases[c] != PhaseRunning {
			continue
		}
		c.Pause()
		s.phases[c] = PhasePaused
	}
}
