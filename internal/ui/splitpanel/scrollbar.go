package splitpanel

import (
	"github.com/charmbracelet/lipgloss"
)

const (
	ScrollThumbChar = "█"
	ScrollTrackChar = "│"
)

// thumbSpan places a thumb of proportional size on a track of view rows.
// ok is false when everything fits and no bar is drawn.
func thumbSpan(view, total, offset int) (pos, size int, ok bool) {
	if view <= 0 || total <= view {
		return 0, 0, false
	}
	size = min(max(view*view/total, 1), max(view-2, 1))
	travel := view - size
	pos = min(max(offset*travel/max(total-view, 1), 0), travel)
	return pos, size, true
}

// BuildScrollbar returns one cell per row. The thumb takes activeColor only
// while the panel is focused.
func BuildScrollbar(viewHeight, totalItems, scrollOffset int, activeColor, trackColor lipgloss.Color, focused bool) []string {
	cells := make([]string, max(viewHeight, 0))
	pos, size, ok := thumbSpan(viewHeight, totalItems, scrollOffset)
	if !ok {
		for i := range cells {
			cells[i] = " "
		}
		return cells
	}

	thumb := trackColor
	if focused {
		thumb = activeColor
	}
	track := lipgloss.NewStyle().Foreground(trackColor).Render(ScrollTrackChar)
	filled := lipgloss.NewStyle().Foreground(thumb).Render(ScrollThumbChar)
	for i := range cells {
		cells[i] = track
		if i >= pos && i < pos+size {
			cells[i] = filled
		}
	}
	return cells
}
