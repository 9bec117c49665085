package demo

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/footprint-tools/drawer/internal/ui/style"
)

// menuContent is the live content inside the drawer. It only ticks while
// the drawer is open.
type menuContent struct {
	spinner spinner.Model
	running bool
	width   int
}

func newMenuContent() *menuContent {
	return &menuContent{spinner: spinner.New(spinner.WithSpinner(spinner.Dot))}
}

func (c *menuContent) Layout(width int) { c.width = width }

func (c *menuContent) Resume() tea.Cmd {
	c.running = true
	return c.spinner.Tick
}

func (c *menuContent) Pause() { c.running = false }

// Update advances the spinner. Ticks that arrive while paused end the
// tick chain.
func (c *menuContent) Update(msg spinner.TickMsg) tea.Cmd {
	if !c.running {
		return nil
	}
	var cmd tea.Cmd
	c.spinner, cmd = c.spinner.Update(msg)
	return cmd
}

func (c *menuContent) View() string {
	if !c.running {
		return style.Muted("  paused")
	}
	return c.spinner.View() + " live"
}
