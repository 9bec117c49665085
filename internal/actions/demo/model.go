package demo

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/footprint-tools/drawer/internal/config"
	"github.com/footprint-tools/drawer/internal/domain"
	"github.com/footprint-tools/drawer/internal/drawer"
	"github.com/footprint-tools/drawer/internal/events"
	"github.com/footprint-tools/drawer/internal/gesture"
	"github.com/footprint-tools/drawer/internal/history"
	"github.com/footprint-tools/drawer/internal/log"
	"github.com/footprint-tools/drawer/internal/owner"
	"github.com/footprint-tools/drawer/internal/surface"
	"github.com/footprint-tools/drawer/internal/ui/splitpanel"
	"github.com/footprint-tools/drawer/internal/ui/style"
)

const (
	panelID   = "nav"
	wheelStep = 3
	// first drawer row holding a link: header, spinner, blank
	firstLinkRow = 3
)

var menuItems = []string{"Home", "Inbox", "Starred", "Journal", "Settings", "About"}

const pageText = `A navigation drawer slides in from the edge of the screen and sits above the page until it is dismissed.

Press m or click the menu button to open it. While it is open the page behind is masked and does not scroll. Click the mask, press esc, pick an item, or drag the drawer back toward its edge to close it.

A short drag snaps back into place. A drag past half of the drawer's width, or a quick flick, dismisses it right away.

When the drawer closes, focus goes back to the menu button, unless the page scrolled in the meantime or focus already left the drawer.

Every open and close is recorded in the journal. Run "drawer events" after quitting to see them.

Scroll this page with the mouse wheel or j and k while the drawer is closed. Use ? to see every key.`

type modelOptions struct {
	Settings  config.DrawerSettings
	Side      drawer.Side
	Bus       *events.Bus
	Logger    domain.Logger
	Platform  string
	Scheduler drawer.Scheduler // nil means real timers
	Now       func() time.Time // gesture clock, nil means time.Now
}

type model struct {
	doc      *surface.Document
	panel    *drawer.Panel
	gestures *gesture.Recognizer
	hist     *history.Stack
	owner    *owner.Service
	menu     *menuContent
	layout   *splitpanel.Layout
	keys     keyMap
	help     help.Model
	logger   domain.Logger

	button *surface.Element
	links  []*surface.Element
	closer *surface.Element

	status   string
	last     *events.Event
	width    int
	height   int
	wrapped  int
	quitting bool
}

func newModel(opts modelOptions) (*model, error) {
	if opts.Logger == nil {
		opts.Logger = log.NopLogger{}
	}
	if opts.Bus == nil {
		opts.Bus = events.NewBus(events.WithLogger(opts.Logger))
	}
	var gestureOpts []gesture.Option
	if opts.Now != nil {
		gestureOpts = append(gestureOpts, gesture.WithClock(opts.Now))
	}

	m := &model{
		doc:      surface.New(1, 1),
		gestures: gesture.New(gestureOpts...),
		hist:     history.New(),
		owner:    owner.New(),
		menu:     newMenuContent(),
		keys:     defaultKeyMap(),
		help:     help.New(),
		logger:   opts.Logger,
		status:   "ready",
	}

	root := m.doc.Root()
	m.button = root.Append(surface.NewElement("button", "menu-button"))
	m.button.SetAttr(surface.BindingAttr, "tap:"+panelID+".toggle")
	m.button.SetLines([]string{"☰ menu"})

	aside := root.Append(surface.NewElement("aside", panelID, "drawer"))
	for _, label := range menuItems {
		link := aside.Append(surface.NewElement("a", "item-"+label))
		link.SetLines([]string{label})
		link.OnClick(m.selectItem(label))
		m.links = append(m.links, link)
	}
	m.closer = aside.Append(surface.NewElement("button", "close-drawer"))
	m.closer.SetAttr(surface.BindingAttr, "tap:"+panelID+".close")
	m.closer.SetLines([]string{"✕ close"})
	m.owner.Register(aside, m.menu)

	panel, err := drawer.New(drawer.Config{
		ID:                  panelID,
		Side:                opts.Side,
		AnimationDelay:      animationDelay(opts.Settings.AnimationDelay),
		SwipeCommitFraction: opts.Settings.SwipeCommitFraction,
		SwipeCommitVelocity: opts.Settings.SwipeCommitVelocity,
		SettleFPS:           opts.Settings.SettleFPS,
		Platform:            opts.Platform,
		RefocusBlocked:      opts.Settings.RefocusBlocklist,
	}, drawer.Deps{
		Element:   aside,
		Document:  m.doc,
		History:   m.hist,
		Owner:     m.owner,
		Notifier:  opts.Bus.For(panelID),
		Gestures:  m.gestures,
		Scheduler: opts.Scheduler,
		Logger:    opts.Logger,
	})
	if err != nil {
		return nil, err
	}
	m.panel = panel
	m.doc.Register(panelID, panel)
	m.gestures.Attach(m.button)

	opts.Bus.Subscribe(func(e events.Event) {
		m.last = &e
	})

	m.layout = splitpanel.NewLayout(80, 24, splitpanel.Config{DrawerWidthPercent: opts.Settings.WidthPercent}, style.GetColors())
	m.resize(80, 24)
	return m, nil
}

func (m *model) selectItem(label string) func() tea.Cmd {
	return func() tea.Cmd {
		m.status = "selected " + label
		return m.panel.RequestClose()
	}
}

func (m *model) Init() tea.Cmd {
	return tea.SetWindowTitle("drawer demo")
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case tea.KeyMsg:
		cmd = m.handleKey(msg)
	case tea.MouseMsg:
		cmd = m.handleMouse(msg)
	case spinner.TickMsg:
		cmd = m.menu.Update(msg)
	default:
		cmd = m.panel.Update(msg)
	}
	m.relayout()
	return m, cmd
}

func (m *model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resize(m.width, m.height)
	case key.Matches(msg, m.keys.Toggle):
		m.doc.Focus(m.button)
		return m.panel.RequestToggle(m.button)
	case key.Matches(msg, m.keys.Back):
		return m.hist.Back()
	case key.Matches(msg, m.keys.Up):
		m.moveFocus(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveFocus(1)
	case key.Matches(msg, m.keys.Select):
		focused := m.doc.Focused()
		if focused == nil {
			return nil
		}
		b := focused.Bounds()
		return m.click(b.X, b.Y)
	}
	return nil
}

// moveFocus cycles focus through the drawer's controls while it is open
// and scrolls the page otherwise.
func (m *model) moveFocus(step int) {
	if !m.panel.Opened() {
		m.doc.ScrollBy(step)
		return
	}
	controls := append(append([]*surface.Element{}, m.links...), m.closer)
	idx := -1
	for i, el := range controls {
		if el == m.doc.Focused() {
			idx = i
		}
	}
	switch {
	case idx < 0 && step > 0:
		idx = 0
	case idx < 0:
		idx = len(controls) - 1
	default:
		idx = (idx + step + len(controls)) % len(controls)
	}
	m.doc.Focus(controls[idx])
	m.doc.RevealFocused(m.panel.Element())
}

func (m *model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action == tea.MouseActionPress {
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.doc.Wheel(msg.X, msg.Y, -wheelStep)
			return nil
		case tea.MouseButtonWheelDown:
			m.doc.Wheel(msg.X, msg.Y, wheelStep)
			return nil
		}
	}

	sample, kind := m.gestures.Handle(msg)
	switch kind {
	case gesture.KindDrag:
		return m.panel.Swipe(sample)
	case gesture.KindTap:
		return m.click(m.gestures.Origin())
	}
	// presses outside every gesture region are plain clicks
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && !m.gestures.Tracking() {
		return m.click(msg.X, msg.Y)
	}
	return nil
}

func (m *model) click(x, y int) tea.Cmd {
	cmd, err := m.doc.Click(x, y)
	if err != nil {
		m.logger.Warn("demo: click at %d,%d: %v", x, y, err)
		m.status = err.Error()
	}
	return cmd
}

func (m *model) resize(width, height int) {
	m.width, m.height = max(width, 1), max(height, 1)
	m.help.Width = m.width
	footer := 1 + lipgloss.Height(m.help.View(m.keys))
	m.layout.Resize(m.width, m.height-footer)
	m.relayout()
}

// relayout records where the next frame draws each element so hit tests
// and gestures line up with what is on screen.
func (m *model) relayout() {
	l := m.layout
	pageWidth := l.PageContentWidth()
	m.doc.SetSize(pageWidth, max(l.VisibleHeight()-1, 1))
	if pageWidth != m.wrapped {
		top := m.doc.ScrollTop()
		m.doc.SetContent(joinLines(splitpanel.Wrap(pageText, pageWidth)))
		m.doc.SetScrollTop(top)
		m.wrapped = pageWidth
	}

	// controls render with a two cell focus marker in front
	label := m.button.Lines()[0]
	m.button.SetBounds(surface.Rect{X: 2, Y: 1, W: 2 + lipgloss.Width(label), H: 1})

	aside := m.panel.Element()
	aside.SetWidth(l.DrawerWidth)
	x := l.DrawerX(m.panel.Side() == drawer.SideRight, aside.Offset())
	aside.SetBounds(surface.Rect{X: x, Y: 0, W: l.DrawerWidth, H: l.Height})

	for i, link := range m.links {
		link.SetBounds(surface.Rect{X: x + 2, Y: 1 + firstLinkRow + i, W: l.DrawerContentWidth(), H: 1})
	}
	m.closer.SetBounds(surface.Rect{X: x + 2, Y: 1 + firstLinkRow + len(m.links) + 1, W: l.DrawerContentWidth(), H: 1})

	if mask := m.panel.Mask(); mask != nil {
		mask.Element().SetBounds(surface.Rect{X: 0, Y: 0, W: m.width, H: m.height})
	}
}

// animationDelay maps animation_ms=0 to a drawer without animation.
func animationDelay(d time.Duration) time.Duration {
	if d == 0 {
		return drawer.NoAnimation
	}
	return d
}
