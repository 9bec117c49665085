package drawer

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/footprint-tools/drawer/internal/surface"
)

// Mask is the scrim behind an open panel. It is created on first open and
// lives as long as the document; Show and Hide only toggle visibility.
type Mask struct {
	el *surface.Element
}

func newMask(doc Document, panelID string, onClose func() tea.Cmd) *Mask {
	el := doc.CreateScrim(panelID + "-mask")
	el.OnClick(onClose)
	// swallow wheel events so the document under the mask stays put
	el.OnWheel(func(int) bool { return true })
	return &Mask{el: el}
}

// Show makes the mask visible.
func (m *Mask) Show() { m.el.SetHidden(false) }

// Hide makes the mask invisible.
func (m *Mask) Hide() { m.el.SetHidden(true) }

// Visible reports whether the mask is shown.
func (m *Mask) Visible() bool { return !m.el.Hidden() }

// Element returns the scrim element.
func (m *Mask) Element() *surface.Element { return m.el }
