package drawer

import (
	"sort"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/drawer/internal/events"
	"github.com/footprint-tools/drawer/internal/history"
	"github.com/footprint-tools/drawer/internal/owner"
	"github.com/footprint-tools/drawer/internal/surface"
)

type timer struct {
	due time.Time
	seq int
	msg tea.Msg
}

// fakeScheduler queues messages on a virtual clock.
type fakeScheduler struct {
	now    time.Time
	seq    int
	timers []timer
}

func (s *fakeScheduler) After(delay time.Duration, msg tea.Msg) tea.Cmd {
	return func() tea.Msg {
		s.seq++
		s.timers = append(s.timers, timer{due: s.now.Add(delay), seq: s.seq, msg: msg})
		return nil
	}
}

// steps returns the queued step messages, stale ones included.
func (s *fakeScheduler) steps() []stepMsg {
	var out []stepMsg
	for _, t := range s.timers {
		if m, ok := t.msg.(stepMsg); ok {
			out = append(out, m)
		}
	}
	return out
}

func (s *fakeScheduler) popDue(limit time.Time) (timer, bool) {
	if len(s.timers) == 0 {
		return timer{}, false
	}
	sort.Slice(s.timers, func(i, j int) bool {
		if s.timers[i].due.Equal(s.timers[j].due) {
			return s.timers[i].seq < s.timers[j].seq
		}
		return s.timers[i].due.Before(s.timers[j].due)
	})
	next := s.timers[0]
	if next.due.After(limit) {
		return timer{}, false
	}
	s.timers = s.timers[1:]
	return next, true
}

type childStub struct {
	resumes int
	pauses  int
	width   int
}

func (c *childStub) Layout(width int) { c.width = width }
func (c *childStub) Resume() tea.Cmd  { c.resumes++; return nil }
func (c *childStub) Pause()           { c.pauses++ }

// harness wires a panel to real collaborators and pumps its commands
// synchronously.
type harness struct {
	t      *testing.T
	doc    *surface.Document
	hist   *history.Stack
	owner  *owner.Service
	bus    *events.Bus
	sched  *fakeScheduler
	panel  *Panel
	el     *surface.Element
	child  *childStub
	button *surface.Element
	link   *surface.Element
	notes  []string
	inbox  []tea.Msg
	ran    []State // step deliveries that changed the machine
}

func newHarness(t *testing.T, mutate ...func(*Config)) *harness {
	t.Helper()
	h := &harness{
		t:     t,
		doc:   surface.New(80, 24),
		hist:  history.New(),
		owner: owner.New(),
		bus:   events.NewBus(),
		sched: &fakeScheduler{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)},
		child: &childStub{},
	}
	h.bus.Subscribe(func(e events.Event) { h.notes = append(h.notes, e.Name) })

	h.button = h.doc.Root().Append(surface.NewElement("button", "menu"))
	h.el = h.doc.Root().Append(surface.NewElement("aside", "nav", "drawer"))
	h.el.SetWidth(30)
	h.link = h.el.Append(surface.NewElement("a", "first-link"))
	h.owner.Register(h.el, h.child)

	cfg := Config{ID: "nav", Side: SideLeft}
	for _, fn := range mutate {
		fn(&cfg)
	}
	p, err := New(cfg, Deps{
		Element:   h.el,
		Document:  h.doc,
		History:   h.hist,
		Owner:     h.owner,
		Notifier:  h.bus.For("nav"),
		Scheduler: h.sched,
	})
	require.NoError(t, err)
	h.panel = p
	return h
}

// do runs cmd and everything it leads to that is not waiting on a timer.
func (h *harness) do(cmd tea.Cmd) {
	h.run(cmd)
	h.drain()
}

func (h *harness) run(cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	switch msg := cmd().(type) {
	case nil:
	case tea.BatchMsg:
		for _, c := range msg {
			h.run(c)
		}
	default:
		h.inbox = append(h.inbox, msg)
	}
}

func (h *harness) drain() {
	for len(h.inbox) > 0 {
		msg := h.inbox[0]
		h.inbox = h.inbox[1:]
		step, isStep := msg.(stepMsg)
		gen, pending := h.panel.st.gen, h.panel.st.pending
		h.run(h.panel.Update(msg))
		if isStep && (h.panel.st.gen != gen || h.panel.st.pending != pending) {
			h.ran = append(h.ran, step.step)
		}
	}
}

// advance moves the clock by d, firing timers in order.
func (h *harness) advance(d time.Duration) {
	limit := h.sched.now.Add(d)
	for {
		next, ok := h.sched.popDue(limit)
		if !ok {
			break
		}
		h.sched.now = next.due
		h.inbox = append(h.inbox, next.msg)
		h.drain()
	}
	h.sched.now = limit
}

func (h *harness) flush() { h.advance(time.Minute) }

func (h *harness) open() {
	h.do(h.panel.RequestOpen(h.button))
	h.flush()
	require.Equal(h.t, Opened, h.panel.State())
}

func (h *harness) attr(el *surface.Element, key string) string {
	v, _ := el.Attr(key)
	return v
}
