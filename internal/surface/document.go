package surface

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// Document owns the element tree and the viewport services drawers use.
type Document struct {
	root    *Element
	focused *Element
	pane    viewport.Model
	overlay int
	fixed   []*Element
	targets map[string]ActionTarget
	ticks   int
}

// New creates a document whose scrolling pane is width x height cells.
func New(width, height int) *Document {
	return &Document{
		root:    NewElement("body", ""),
		pane:    viewport.New(width, height),
		targets: make(map[string]ActionTarget),
	}
}

// Root returns the body element.
func (d *Document) Root() *Element { return d.root }

// ByID returns the first element with the id, or nil.
func (d *Document) ByID(id string) *Element {
	var found *Element
	d.root.walk(func(el *Element) bool {
		if el.ID == id {
			found = el
			return false
		}
		return true
	})
	return found
}

// Query returns the elements matching selector in document order.
func (d *Document) Query(selector string) []*Element {
	return Query(d.root, selector)
}

// SetContent replaces the text shown in the scrolling pane.
func (d *Document) SetContent(s string) { d.pane.SetContent(s) }

// SetSize resizes the scrolling pane.
func (d *Document) SetSize(width, height int) {
	d.pane.Width = width
	d.pane.Height = height
}

// PaneView renders the scrolling pane.
func (d *Document) PaneView() string { return d.pane.View() }

// ScrollTop returns the pane's current scroll offset.
func (d *Document) ScrollTop() int { return d.pane.YOffset }

// ScrollBy scrolls the pane by n rows. Scrolling is suspended in overlay
// mode; the return value reports whether the pane moved.
func (d *Document) ScrollBy(n int) bool {
	if d.InOverlayMode() {
		return false
	}
	before := d.pane.YOffset
	d.pane.SetYOffset(before + n)
	return d.pane.YOffset != before
}

// SetScrollTop moves the pane programmatically, ignoring overlay mode.
func (d *Document) SetScrollTop(n int) { d.pane.SetYOffset(n) }

// EnterOverlayMode suspends document scrolling. Calls nest.
func (d *Document) EnterOverlayMode() { d.overlay++ }

// LeaveOverlayMode undoes one EnterOverlayMode.
func (d *Document) LeaveOverlayMode() {
	if d.overlay > 0 {
		d.overlay--
	}
}

// InOverlayMode reports whether any overlay is active.
func (d *Document) InOverlayMode() bool { return d.overlay > 0 }

// AddToFixedLayer moves el into the fixed layer that renders above normal
// flow. Without forceTransfer only elements declaring the "fixed"
// attribute are transferred.
func (d *Document) AddToFixedLayer(el *Element, forceTransfer bool) {
	if !forceTransfer && !el.HasAttr("fixed") {
		return
	}
	for _, f := range d.fixed {
		if f == el {
			return
		}
	}
	d.fixed = append(d.fixed, el)
}

// FixedLayer returns the fixed layer, bottom first.
func (d *Document) FixedLayer() []*Element { return d.fixed }

// Nudge forces a layout tick on el so a following transition starts from a
// known position.
func (d *Document) Nudge(el *Element) {
	el.SetScroll(1)
	el.SetScroll(0)
	d.ticks++
}

// LayoutTicks counts forced layout ticks.
func (d *Document) LayoutTicks() int { return d.ticks }

// Focus moves focus to el. Hidden elements cannot take focus.
func (d *Document) Focus(el *Element) bool {
	if el == nil || !el.Visible() {
		return false
	}
	d.focused = el
	return true
}

// Blur clears focus.
func (d *Document) Blur() { d.focused = nil }

// Focused returns the focused element, or nil.
func (d *Document) Focused() *Element { return d.focused }

// FocusedWithin reports whether focus is on el or inside it.
func (d *Document) FocusedWithin(el *Element) bool {
	return d.focused != nil && el.Contains(d.focused)
}

// RevealFocused scrolls el so a focused descendant is inside its bounds.
func (d *Document) RevealFocused(el *Element) {
	if !d.FocusedWithin(el) || d.focused == el {
		return
	}
	rel := d.focused.Bounds().Y - el.Bounds().Y
	h := el.Bounds().H
	switch {
	case h <= 0:
	case rel < el.Scroll():
		el.SetScroll(rel)
	case rel >= el.Scroll()+h:
		el.SetScroll(rel - h + 1)
	}
}

// CreateScrim appends a hidden full-surface scrim element to the body.
func (d *Document) CreateScrim(id string) *Element {
	el := NewElement("scrim", id, "drawer-mask")
	el.SetHidden(true)
	d.root.Append(el)
	return el
}

// ElementAt returns the topmost visible element drawn at (x, y).
func (d *Document) ElementAt(x, y int) *Element {
	for i := len(d.fixed) - 1; i >= 0; i-- {
		if hit := deepest(d.fixed[i], x, y); hit != nil {
			return hit
		}
	}
	return deepest(d.root, x, y)
}

func deepest(el *Element, x, y int) *Element {
	if !el.Visible() {
		return nil
	}
	for i := len(el.children) - 1; i >= 0; i-- {
		if hit := deepest(el.children[i], x, y); hit != nil {
			return hit
		}
	}
	if el.bounds.Contains(x, y) {
		return el
	}
	return nil
}

// Click dispatches a click at (x, y): the nearest focusable ancestor takes
// focus, then the nearest click handler or "tap" binding runs.
func (d *Document) Click(x, y int) (tea.Cmd, error) {
	hit := d.ElementAt(x, y)
	if hit == nil {
		return nil, nil
	}
	for n := hit; n != nil; n = n.parent {
		if n.Focusable() {
			d.Focus(n)
			break
		}
	}
	for n := hit; n != nil; n = n.parent {
		if n.onClick != nil {
			return n.onClick(), nil
		}
		if n.HasAttr(BindingAttr) {
			return d.Invoke(n, "tap")
		}
	}
	return nil, nil
}

// Wheel dispatches a wheel event at (x, y). Handlers may prevent the
// document from scrolling.
func (d *Document) Wheel(x, y, delta int) bool {
	for n := d.ElementAt(x, y); n != nil; n = n.parent {
		if n.onWheel != nil && n.onWheel(delta) {
			return false
		}
	}
	return d.ScrollBy(delta)
}
