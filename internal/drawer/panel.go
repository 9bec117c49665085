// Package drawer implements a modal side panel: a lifecycle state machine
// that reveals and hides an off-screen panel, coordinates with the host's
// overlay mode and history stack, and can be dragged closed.
//
// A Panel is driven from a bubbletea Update loop. Requests return the
// tea.Cmd that carries their timed continuation, and the continuation comes
// back through Panel.Update. Every timed step carries the generation it was
// scheduled under; only the live generation may run, so a request that
// supersedes a pending step turns the old step into a no-op.
package drawer

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/footprint-tools/drawer/internal/domain"
	"github.com/footprint-tools/drawer/internal/history"
	"github.com/footprint-tools/drawer/internal/log"
	"github.com/footprint-tools/drawer/internal/surface"
)

type stepMsg struct {
	panel string
	gen   uint64
	step  State
}

type historyPushedMsg struct {
	panel string
	cycle uint64
	id    history.MarkerID
	err   error
}

// machine is the mutable state; only Panel methods touch it.
type machine struct {
	lifecycle State
	opened    bool

	gen         uint64
	pending     bool
	pendingStep State

	cycle   uint64
	marker  history.MarkerID
	trigger triggerContext
	targets []*surface.Element
}

// Panel is one drawer instance.
type Panel struct {
	cfg      Config
	el       *surface.Element
	doc      Document
	hist     History
	owner    Owner
	notify   Notifier
	gestures GestureSource
	sched    Scheduler
	logger   domain.Logger

	mask  *Mask
	swipe swipeState
	st    machine
}

// New creates a closed panel.
func New(cfg Config, deps Deps) (*Panel, error) {
	if cfg.ID == "" {
		return nil, ErrInvalidConfig
	}
	if err := deps.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.withDefaults()

	p := &Panel{
		cfg:      cfg,
		el:       deps.Element,
		doc:      deps.Document,
		hist:     deps.History,
		owner:    deps.Owner,
		notify:   deps.Notifier,
		gestures: deps.Gestures,
		sched:    deps.Scheduler,
		logger:   deps.Logger,
	}
	if p.sched == nil {
		p.sched = TickScheduler{}
	}
	if p.logger == nil {
		p.logger = log.NopLogger{}
	}
	p.swipe.spring = newSettleSpring(cfg.SettleFPS)

	p.el.SetHidden(true)
	p.el.SetAttr("side", cfg.Side.String())
	p.stamp()
	if p.gestures != nil {
		p.gestures.Attach(p.el)
	}
	return p, nil
}

// ID returns the panel id.
func (p *Panel) ID() string { return p.cfg.ID }

// Side returns the edge the panel is anchored to.
func (p *Panel) Side() Side { return p.cfg.Side }

// Element returns the panel surface.
func (p *Panel) Element() *surface.Element { return p.el }

// Mask returns the scrim, or nil before the first open.
func (p *Panel) Mask() *Mask { return p.mask }

// State returns the lifecycle state.
func (p *Panel) State() State { return p.st.lifecycle }

// Opened reports whether the panel accepts close requests, i.e. whether an
// open was requested more recently than a close.
func (p *Panel) Opened() bool { return p.st.opened }

// Pending reports whether a timed step is live, and which.
func (p *Panel) Pending() (State, bool) { return p.st.pendingStep, p.st.pending }

// HistoryMarker returns the held history marker, or history.None.
func (p *Panel) HistoryMarker() history.MarkerID { return p.st.marker }

// Targets returns the elements stamped at each transition.
func (p *Panel) Targets() []*surface.Element { return p.st.targets }

// RequestOpen opens the panel. trigger is the element that asked for it and
// may be nil.
func (p *Panel) RequestOpen(trigger *surface.Element) tea.Cmd {
	if p.st.opened {
		return nil
	}
	p.finishPendingClose()
	p.st.opened = true
	p.st.cycle++
	p.ensureMask()
	p.st.targets = p.resolveTargets()
	p.doc.EnterOverlayMode()
	p.st.trigger = captureTrigger(trigger, p.doc.ScrollTop())
	p.logger.Debug("drawer %s: open requested (cycle %d)", p.cfg.ID, p.st.cycle)

	return tea.Batch(
		p.schedule(Preopen, 0),
		p.pushHistory(p.st.cycle),
	)
}

// RequestClose closes the panel with the normal animation.
func (p *Panel) RequestClose() tea.Cmd {
	return p.RequestDismiss(false)
}

// RequestToggle closes an open panel and opens a closed one.
func (p *Panel) RequestToggle(trigger *surface.Element) tea.Cmd {
	if p.st.opened {
		return p.RequestClose()
	}
	return p.RequestOpen(trigger)
}

// RequestDismiss closes the panel. With immediate the panel is hidden
// before RequestDismiss returns instead of animating out.
func (p *Panel) RequestDismiss(immediate bool) tea.Cmd {
	if !p.st.opened {
		return nil
	}
	p.st.opened = false
	p.doc.LeaveOverlayMode()
	scrollUnchanged := p.doc.ScrollTop() == p.st.trigger.scrollTop
	focusWithin := p.doc.FocusedWithin(p.el)
	p.endSwipe()
	p.logger.Debug("drawer %s: close requested (immediate=%t)", p.cfg.ID, immediate)

	var cmd tea.Cmd
	if immediate {
		cmd = p.closing(true)
	} else {
		cmd = p.schedule(Closing, 0)
	}

	p.releaseMarker()
	if p.refocusAllowed(focusWithin, scrollUnchanged) {
		p.doc.Focus(p.st.trigger.el)
	}
	p.st.trigger = triggerContext{}
	return cmd
}

// Update consumes the panel's own continuation messages. Messages for other
// panels and unrelated messages return nil.
func (p *Panel) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case stepMsg:
		if msg.panel != p.cfg.ID {
			return nil
		}
		if !p.st.pending || msg.gen != p.st.gen {
			p.logger.Debug("drawer %s: dropped stale %s step", p.cfg.ID, msg.step)
			return nil
		}
		p.st.pending = false
		return p.run(msg.step)

	case historyPushedMsg:
		if msg.panel != p.cfg.ID {
			return nil
		}
		p.onHistoryPushed(msg)
		return nil

	case settleMsg:
		if msg.panel != p.cfg.ID {
			return nil
		}
		return p.settleFrame(msg)
	}
	return nil
}

// finishPendingClose runs the closed step now when a reopen would otherwise
// supersede a close that already hid the panel or follows a completed open.
// The cycle being ended still pauses its children and notifies close.
func (p *Panel) finishPendingClose() {
	if !p.st.pending {
		return
	}
	switch {
	case p.st.pendingStep == Closed,
		p.st.pendingStep == Closing && p.st.lifecycle == Opened:
		p.logger.Debug("drawer %s: reopen finishes pending %s step", p.cfg.ID, p.st.pendingStep)
		p.st.pending = false
		p.st.gen++
		p.closed()
	}
}

// schedule replaces the pending step.
func (p *Panel) schedule(step State, delay time.Duration) tea.Cmd {
	p.st.gen++
	p.st.pending = true
	p.st.pendingStep = step
	return p.sched.After(delay, stepMsg{panel: p.cfg.ID, gen: p.st.gen, step: step})
}

func (p *Panel) pushHistory(cycle uint64) tea.Cmd {
	hist, id := p.hist, p.cfg.ID
	undo := func() tea.Cmd { return p.RequestClose() }
	return func() tea.Msg {
		marker, err := hist.Push(undo)
		return historyPushedMsg{panel: id, cycle: cycle, id: marker, err: err}
	}
}

func (p *Panel) onHistoryPushed(msg historyPushedMsg) {
	if msg.err != nil {
		p.logger.Warn("drawer %s: history push failed: %v", p.cfg.ID, msg.err)
		return
	}
	if msg.cycle != p.st.cycle || !p.st.opened {
		// the open that asked for this marker is already over
		p.hist.Pop(msg.id)
		p.logger.Debug("drawer %s: released late history marker", p.cfg.ID)
		return
	}
	p.st.marker = msg.id
}

func (p *Panel) releaseMarker() {
	if p.st.marker == history.None {
		return
	}
	p.hist.Pop(p.st.marker)
	p.st.marker = history.None
}

func (p *Panel) ensureMask() {
	if p.mask != nil {
		return
	}
	p.mask = newMask(p.doc, p.cfg.ID, p.RequestClose)
	if p.gestures != nil {
		p.gestures.Attach(p.mask.el)
	}
}

func (p *Panel) resolveTargets() []*surface.Element {
	targets := []*surface.Element{p.el}
	if p.mask != nil {
		targets = append(targets, p.mask.el)
	}
	if p.cfg.TargetSelector == "" {
		return targets
	}
	for _, el := range p.doc.Query(p.cfg.TargetSelector) {
		if !containsElement(targets, el) {
			targets = append(targets, el)
		}
	}
	return targets
}

func containsElement(list []*surface.Element, el *surface.Element) bool {
	for _, e := range list {
		if e == el {
			return true
		}
	}
	return false
}
