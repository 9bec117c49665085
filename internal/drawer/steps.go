package drawer

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/footprint-tools/drawer/internal/events"
	"github.com/footprint-tools/drawer/internal/surface"
)

func (p *Panel) run(step State) tea.Cmd {
	switch step {
	case Preopen:
		return p.preopen()
	case Opening:
		return p.opening()
	case Opened:
		return p.opened()
	case Closing:
		return p.closing(false)
	case Closed:
		return p.closed()
	}
	return nil
}

func (p *Panel) preopen() tea.Cmd {
	p.st.lifecycle = Preopen
	p.stamp()
	return p.schedule(Opening, 0)
}

func (p *Panel) opening() tea.Cmd {
	p.el.SetHidden(false)
	p.doc.AddToFixedLayer(p.el, true)
	p.doc.Nudge(p.el)
	p.mask.Show()
	p.el.SetAttr(AttrOpen, "")

	p.st.lifecycle = Opening
	width := strconv.Itoa(p.el.Width())
	for _, t := range p.targets() {
		t.SetAttr(AttrState, Opening.String())
		t.SetAttr(AttrWidth, width)
	}
	p.doc.RevealFocused(p.el)
	return p.schedule(Opened, p.cfg.AnimationDelay)
}

func (p *Panel) opened() tea.Cmd {
	p.owner.ScheduleLayout(p.el)
	resume := p.owner.ScheduleResume(p.el)
	p.st.lifecycle = Opened
	p.stamp()
	p.notify.Trigger(NotifyOpen, events.TrustHigh)
	return resume
}

// closing with immediate hides everything now; the deferred closed step
// still runs and is the one that pauses children and notifies.
func (p *Panel) closing(immediate bool) tea.Cmd {
	p.el.RemoveAttr(AttrOpen)
	p.st.lifecycle = Closing
	p.stamp()
	if immediate {
		p.hide()
		return p.schedule(Closed, 0)
	}
	return p.schedule(Closed, p.cfg.AnimationDelay)
}

func (p *Panel) closed() tea.Cmd {
	p.hide()
	p.owner.SchedulePause(p.el)
	p.notify.Trigger(NotifyClose, events.TrustHigh)
	p.st.targets = nil
	return nil
}

func (p *Panel) hide() {
	if p.mask != nil {
		p.mask.Hide()
	}
	p.el.SetHidden(true)
	p.st.lifecycle = Closed
	p.stamp()
	for _, t := range p.targets() {
		t.SetOffset(0)
	}
}

func (p *Panel) stamp() {
	for _, t := range p.targets() {
		t.SetAttr(AttrState, p.st.lifecycle.String())
	}
}

func (p *Panel) targets() []*surface.Element {
	if len(p.st.targets) == 0 {
		return []*surface.Element{p.el}
	}
	return p.st.targets
}
