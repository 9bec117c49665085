// Package splitpanel composes the page pane and the drawer overlay into
// one frame.
package splitpanel

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/wordwrap"

	"github.com/footprint-tools/drawer/internal/ui/style"
)

// MinDrawerWidth keeps room for the border, padding and scrollbar.
const MinDrawerWidth = 12

// Panel is the content of one box.
type Panel struct {
	Lines      []string // visible lines, already scrolled
	ScrollPos  int      // for the scrollbar
	TotalItems int      // total scrollable lines; 0 means len(Lines)
}

// Overlay describes the drawer as it should appear this frame.
type Overlay struct {
	Panel   Panel
	Right   bool // anchored to the right edge
	Offset  int  // horizontal swipe offset in cells
	Visible bool
	Masked  bool // dim the page underneath
}

// Config holds layout configuration.
type Config struct {
	DrawerWidthPercent int // share of the frame the drawer takes
}

// Layout holds computed dimensions and renders frames.
type Layout struct {
	Width       int
	Height      int
	DrawerWidth int
	Colors      style.ColorConfig
	config      Config
}

// NewLayout computes the drawer width for a width x height frame.
func NewLayout(width, height int, cfg Config, colors style.ColorConfig) *Layout {
	l := &Layout{Colors: colors, config: cfg}
	l.Resize(width, height)
	return l
}

// Resize recomputes the drawer width for a new frame size.
func (l *Layout) Resize(width, height int) {
	l.Width = max(width, 1)
	l.Height = max(height, 3)
	dw := l.Width * l.config.DrawerWidthPercent / 100
	dw = max(dw, MinDrawerWidth)
	l.DrawerWidth = min(dw, l.Width)
}

// DrawerX returns the column of the drawer's left edge. It may be
// negative or past the frame while a swipe drags the drawer out.
func (l *Layout) DrawerX(right bool, offset int) int {
	if right {
		return l.Width - l.DrawerWidth + offset
	}
	return offset
}

// Render draws the page and, when visible, the drawer on top of it.
func (l *Layout) Render(page Panel, drawer *Overlay) string {
	active := lipgloss.Color(l.Colors.UIActive)
	dim := lipgloss.Color(l.Colors.UIDim)

	overlayOn := drawer != nil && drawer.Visible
	base := strings.Split(l.buildPanel(page, l.Width, l.Height, !overlayOn, active, dim), "\n")
	if !overlayOn {
		return strings.Join(base, "\n")
	}

	if drawer.Masked {
		maskStyle := lipgloss.NewStyle().Foreground(dim).Faint(true)
		for i, line := range base {
			base[i] = maskStyle.Render(ansi.Strip(line))
		}
	}

	box := strings.Split(l.buildPanel(drawer.Panel, l.DrawerWidth, l.Height, true, active, dim), "\n")
	x := l.DrawerX(drawer.Right, drawer.Offset)
	for i := range base {
		if i < len(box) {
			base[i] = l.place(base[i], box[i], x)
		}
	}
	return strings.Join(base, "\n")
}

// place writes top over bottom starting at column x, clipping top to the
// frame.
func (l *Layout) place(bottom, top string, x int) string {
	topWidth := ansi.StringWidth(top)
	from := max(-x, 0)
	to := min(topWidth, l.Width-x)
	if to <= from {
		return bottom
	}
	start := max(x, 0)
	end := start + (to - from)

	var b strings.Builder
	b.WriteString(ansi.Truncate(bottom, start, ""))
	b.WriteString(ansi.Cut(top, from, to))
	b.WriteString(ansi.Cut(bottom, end, l.Width))
	return b.String()
}

// buildPanel creates a single panel with border and scrollbar
func (l *Layout) buildPanel(panel Panel, width, height int, focused bool, activeColor, dimColor lipgloss.Color) string {
	// border(2) + padding(2) + scrollbar(2)
	contentWidth := max(width-6, 1)
	visibleHeight := max(height-2, 1)

	lines := panel.Lines
	if len(lines) > visibleHeight {
		lines = lines[:visibleHeight]
	}
	for len(lines) < visibleHeight {
		lines = append(lines, "")
	}

	totalItems := panel.TotalItems
	if totalItems == 0 {
		totalItems = len(panel.Lines)
	}
	scrollbar := BuildScrollbar(visibleHeight, totalItems, panel.ScrollPos, activeColor, dimColor, focused)

	result := make([]string, 0, len(lines))
	for i, line := range lines {
		lineWidth := ansi.StringWidth(line)
		if lineWidth > contentWidth {
			line = ansi.Truncate(line, contentWidth, "…")
		} else if lineWidth < contentWidth {
			line += strings.Repeat(" ", contentWidth-lineWidth)
		}

		scrollChar := " "
		if i < len(scrollbar) {
			scrollChar = scrollbar[i]
		}
		result = append(result, line+" "+scrollChar)
	}

	borderColor := dimColor
	if focused {
		borderColor = activeColor
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Padding(0, 1).
		Render(strings.Join(result, "\n"))
}

// Wrap word-wraps text to width, hard-cutting words that do not fit.
func Wrap(text string, width int) []string {
	if width <= 0 {
		return nil
	}
	var out []string
	for _, line := range strings.Split(wordwrap.String(text, width), "\n") {
		out = append(out, ansi.Truncate(line, width, ""))
	}
	return out
}

// PageContentWidth returns usable width inside the page box.
func (l *Layout) PageContentWidth() int {
	return max(l.Width-6, 1)
}

// DrawerContentWidth returns usable width inside the drawer box.
func (l *Layout) DrawerContentWidth() int {
	return max(l.DrawerWidth-6, 1)
}

// VisibleHeight returns the lines visible inside either box.
func (l *Layout) VisibleHeight() int {
	return l.Height - 2
}
