package demo

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/footprint-tools/drawer/internal/drawer"
	"github.com/footprint-tools/drawer/internal/surface"
	"github.com/footprint-tools/drawer/internal/ui/splitpanel"
	"github.com/footprint-tools/drawer/internal/ui/style"
)

func (m *model) View() string {
	if m.quitting {
		return ""
	}

	page := splitpanel.Panel{
		Lines:      append([]string{m.renderControl(m.button)}, strings.Split(m.doc.PaneView(), "\n")...),
		ScrollPos:  m.doc.ScrollTop(),
		TotalItems: len(splitpanel.Wrap(pageText, m.layout.PageContentWidth())) + 1,
	}

	el := m.panel.Element()
	overlay := &splitpanel.Overlay{
		Panel:   splitpanel.Panel{Lines: m.drawerLines()},
		Right:   m.panel.Side() == drawer.SideRight,
		Offset:  el.Offset(),
		Visible: !el.Hidden(),
		Masked:  m.panel.Mask() != nil && m.panel.Mask().Visible(),
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.layout.Render(page, overlay),
		m.statusLine(),
		m.help.View(m.keys),
	)
}

func (m *model) drawerLines() []string {
	state := m.panel.State().String()
	lines := []string{
		style.Header("Navigation") + " " + style.Muted("["+state+"]"),
		m.menu.View(),
		"",
	}
	for _, link := range m.links {
		lines = append(lines, m.renderControl(link))
	}
	lines = append(lines, "", m.renderControl(m.closer))
	return lines
}

func (m *model) renderControl(el *surface.Element) string {
	text := strings.Join(el.Lines(), " ")
	if m.doc.Focused() == el {
		return style.Info("› " + text)
	}
	return "  " + text
}

func (m *model) statusLine() string {
	parts := []string{"state: " + m.panel.State().String()}
	switch {
	case m.panel.Swiping():
		parts = append(parts, "swiping")
	case m.panel.Settling():
		parts = append(parts, "settling")
	}
	if m.last != nil {
		parts = append(parts, fmt.Sprintf("last: %s/%s (%s trust)", m.last.Source, m.last.Name, m.last.Trust))
	}
	if m.status != "" {
		parts = append(parts, m.status)
	}
	return style.Muted(strings.Join(parts, " · "))
}

func joinLines(lines []string) string {
	return strings.Join(lines, "\n")
}
