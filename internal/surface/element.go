// Package surface is the host document a drawer lives in: a tree of
// elements laid out by the renderer, with focus, overlay mode, a fixed
// layer and a scrolling document pane.
//
// Everything here runs on the bubbletea Update goroutine; nothing is
// synchronized.
package surface

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Rect is a cell rectangle in screen coordinates.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) is inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Element is a node of the document tree.
type Element struct {
	ID  string
	Tag string

	classes  []string
	attrs    map[string]string
	hidden   bool
	width    int
	offset   int
	scroll   int
	bounds   Rect
	lines    []string
	parent   *Element
	children []*Element

	onClick func() tea.Cmd
	onWheel func(delta int) bool
}

// NewElement creates a detached element.
func NewElement(tag, id string, classes ...string) *Element {
	return &Element{
		ID:      id,
		Tag:     tag,
		classes: classes,
		attrs:   make(map[string]string),
	}
}

// Append adds child as the last child of e and returns the child.
// A child attached elsewhere is moved.
func (e *Element) Append(child *Element) *Element {
	if child.parent != nil {
		child.parent.remove(child)
	}
	child.parent = e
	e.children = append(e.children, child)
	return child
}

func (e *Element) remove(child *Element) {
	for i, c := range e.children {
		if c == child {
			e.children = append(e.children[:i], e.children[i+1:]...)
			child.parent = nil
			return
		}
	}
}

// Parent returns the parent element, or nil for a root or detached element.
func (e *Element) Parent() *Element { return e.parent }

// Children returns the element's children in document order.
func (e *Element) Children() []*Element { return e.children }

// HasClass reports whether the element carries the class name.
func (e *Element) HasClass(name string) bool {
	for _, c := range e.classes {
		if c == name {
			return true
		}
	}
	return false
}

// SetAttr sets an attribute value.
func (e *Element) SetAttr(key, value string) {
	e.attrs[key] = value
}

// RemoveAttr deletes an attribute.
func (e *Element) RemoveAttr(key string) {
	delete(e.attrs, key)
}

// Attr returns an attribute value and whether it is present.
func (e *Element) Attr(key string) (string, bool) {
	v, ok := e.attrs[key]
	return v, ok
}

// HasAttr reports whether the attribute is present.
func (e *Element) HasAttr(key string) bool {
	_, ok := e.attrs[key]
	return ok
}

// SetHidden toggles the element's own visibility.
func (e *Element) SetHidden(hidden bool) { e.hidden = hidden }

// Hidden reports the element's own visibility flag.
func (e *Element) Hidden() bool { return e.hidden }

// Visible reports whether the element and all its ancestors are shown.
func (e *Element) Visible() bool {
	for n := e; n != nil; n = n.parent {
		if n.hidden {
			return false
		}
	}
	return true
}

// SetWidth sets the measured width in cells.
func (e *Element) SetWidth(w int) { e.width = max(w, 0) }

// Width returns the measured width in cells.
func (e *Element) Width() int { return e.width }

// SetOffset sets the horizontal translation applied when rendering.
func (e *Element) SetOffset(x int) { e.offset = x }

// Offset returns the horizontal translation.
func (e *Element) Offset() int { return e.offset }

// SetScroll sets the element's own content scroll position.
func (e *Element) SetScroll(n int) { e.scroll = max(n, 0) }

// Scroll returns the element's own content scroll position.
func (e *Element) Scroll() int { return e.scroll }

// SetBounds records where the renderer drew the element.
func (e *Element) SetBounds(r Rect) { e.bounds = r }

// Bounds returns where the renderer last drew the element.
func (e *Element) Bounds() Rect { return e.bounds }

// InBounds reports whether (x, y) hits the element. Hidden elements are
// never hit.
func (e *Element) InBounds(x, y int) bool {
	return e.Visible() && e.bounds.Contains(x, y)
}

// SetLines sets the element's text content, one entry per row.
func (e *Element) SetLines(lines []string) { e.lines = lines }

// Lines returns the element's text content.
func (e *Element) Lines() []string { return e.lines }

// Contains reports whether other is e or one of its descendants.
func (e *Element) Contains(other *Element) bool {
	for n := other; n != nil; n = n.parent {
		if n == e {
			return true
		}
	}
	return false
}

// OnClick registers the click handler. Registering again replaces it.
func (e *Element) OnClick(fn func() tea.Cmd) { e.onClick = fn }

// OnWheel registers a wheel handler. Returning true prevents the document
// from scrolling.
func (e *Element) OnWheel(fn func(delta int) bool) { e.onWheel = fn }

// Focusable reports whether the element can take focus.
func (e *Element) Focusable() bool {
	if e.Tag == "button" || e.Tag == "a" || e.Tag == "input" {
		return true
	}
	return e.HasAttr("tabindex")
}

func (e *Element) walk(fn func(*Element) bool) bool {
	if !fn(e) {
		return false
	}
	for _, c := range e.children {
		if !c.walk(fn) {
			return false
		}
	}
	return true
}
