package owner

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/drawer/internal/surface"
)

type countingChild struct {
	width   int
	resumes int
	pauses  int
}

func (c *countingChild) Layout(width int) { c.width = width }

func (c *countingChild) Resume() tea.Cmd {
	c.resumes++
	return func() tea.Msg { return "started" }
}

func (c *countingChild) Pause() { c.pauses++ }

func TestLifecycle(t *testing.T) {
	s := New()
	parent := surface.NewElement("aside", "panel")
	parent.SetWidth(32)
	child := &countingChild{}
	s.Register(parent, child)
	require.Equal(t, PhaseIdle, s.Phase(child))

	s.ScheduleLayout(parent)
	require.Equal(t, 32, child.width)
	require.Equal(t, PhaseLaidOut, s.Phase(child))

	cmd := s.ScheduleResume(parent)
	require.NotNil(t, cmd)
	require.Equal(t, 1, child.resumes)
	require.Equal(t, PhaseRunning, s.Phase(child))

	require.Nil(t, s.ScheduleResume(parent), "running children are not resumed twice")
	require.Equal(t, 1, child.resumes)

	s.SchedulePause(parent)
	s.SchedulePause(parent)
	require.Equal(t, 1, child.pauses)
	require.Equal(t, PhasePaused, s.Phase(child))

	s.ScheduleLayout(parent)
	require.Equal(t, PhasePaused, s.Phase(child), "layout does not revive a paused child")
}

func TestUnknownParent(t *testing.T) {
	s := New()
	parent := surface.NewElement("aside", "panel")

	require.NotPanics(t, func() {
		s.ScheduleLayout(parent)
		s.SchedulePause(parent)
	})
	require.Nil(t, s.ScheduleResume(parent))
	require.Empty(t, s.Children(parent))
}

func TestPhaseString(t *testing.T) {
	require.Equal(t, "running", PhaseRunning.String())
	require.Equal(t, "idle", Phase(99).String())
}
