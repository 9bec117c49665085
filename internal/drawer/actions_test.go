package drawer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/drawer/internal/surface"
)

func TestExecute(t *testing.T) {
	h := newHarness(t)

	cmd, err := h.panel.Execute("open", h.button)
	require.NoError(t, err)
	h.do(cmd)
	h.flush()
	require.Equal(t, Opened, h.panel.State())

	cmd, err = h.panel.Execute("toggle", nil)
	require.NoError(t, err)
	h.do(cmd)
	h.flush()
	require.Equal(t, Closed, h.panel.State())

	_, err = h.panel.Execute("explode", nil)
	require.ErrorIs(t, err, ErrUnknownAction)
}

func TestExecute_FromMarkupBinding(t *testing.T) {
	h := newHarness(t)
	h.doc.Register("nav", h.panel)
	h.button.SetAttr(surface.BindingAttr, "tap:nav.toggle")
	h.button.SetBounds(surface.Rect{X: 70, Y: 0, W: 6, H: 1})

	cmd, err := h.doc.Click(72, 0)
	require.NoError(t, err)
	h.do(cmd)
	h.flush()
	require.Equal(t, Opened, h.panel.State())
	require.Same(t, h.button, h.doc.Focused())

	h.doc.Focus(h.link)
	cmd, err = h.panel.Execute("close", nil)
	require.NoError(t, err)
	h.do(cmd)
	require.Same(t, h.button, h.doc.Focused(), "the binding's element is the trigger")
}
