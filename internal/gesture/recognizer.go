// Package gesture turns raw terminal mouse events into horizontal drag
// samples for components that can be swiped.
package gesture

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const defaultSlop = 2

// Sample is one step of a recognized horizontal drag. Deltas are
// cumulative from the press; velocities are cells per second.
type Sample struct {
	First     bool
	Last      bool
	DeltaX    int
	DeltaY    int
	VelocityX float64
	VelocityY float64
}

// Kind classifies what Handle produced.
type Kind int

const (
	// KindNone means the event was not part of a gesture.
	KindNone Kind = iota
	// KindDrag carries a Sample.
	KindDrag
	// KindTap is a press and release inside a region that never became a drag.
	KindTap
)

// Region is a hit area a drag may start in.
type Region interface {
	InBounds(x, y int) bool
}

// Option configures a Recognizer.
type Option func(*Recognizer)

// WithSlop sets how far, in cells, the pointer must travel before a drag is
// recognized.
func WithSlop(cells int) Option {
	return func(r *Recognizer) { r.slop = max(cells, 1) }
}

// WithClock overrides the time source used for velocity.
func WithClock(now func() time.Time) Option {
	return func(r *Recognizer) { r.now = now }
}

// Recognizer tracks one pointer at a time.
type Recognizer struct {
	regions []Region
	slop    int
	now     func() time.Time

	tracking   bool
	recognized bool
	startX     int
	startY     int
	lastX      int
	lastY      int
	lastT      time.Time
	vx, vy     float64
}

// New creates a recognizer with no regions.
func New(opts ...Option) *Recognizer {
	r := &Recognizer{slop: defaultSlop, now: time.Now}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Attach adds a region drags may start in. Attaching twice is a no-op.
func (r *Recognizer) Attach(reg Region) {
	for _, existing := range r.regions {
		if existing == reg {
			return
		}
	}
	r.regions = append(r.regions, reg)
}

// Tracking reports whether a press inside a region is in progress.
func (r *Recognizer) Tracking() bool { return r.tracking }

// Handle consumes one mouse event.
func (r *Recognizer) Handle(msg tea.MouseMsg) (Sample, Kind) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return Sample{}, KindNone
		}
		if !r.hit(msg.X, msg.Y) {
			r.reset()
			return Sample{}, KindNone
		}
		r.begin(msg.X, msg.Y)
		return Sample{}, KindNone

	case tea.MouseActionMotion:
		if !r.tracking {
			return Sample{}, KindNone
		}
		r.track(msg.X, msg.Y)
		dx, dy := msg.X-r.startX, msg.Y-r.startY
		if !r.recognized {
			switch {
			case abs(dx) >= r.slop && abs(dx) > abs(dy):
				r.recognized = true
				return r.sample(dx, dy, true, false), KindDrag
			case abs(dy) >= r.slop:
				// vertical drags belong to whoever scrolls
				r.reset()
			}
			return Sample{}, KindNone
		}
		return r.sample(dx, dy, false, false), KindDrag

	case tea.MouseActionRelease:
		if !r.tracking {
			return Sample{}, KindNone
		}
		defer r.reset()
		if !r.recognized {
			return Sample{}, KindTap
		}
		// releases often repeat the last motion cell; keep its velocity
		if msg.X != r.lastX || msg.Y != r.lastY {
			r.track(msg.X, msg.Y)
		}
		return r.sample(msg.X-r.startX, msg.Y-r.startY, false, true), KindDrag
	}
	return Sample{}, KindNone
}

// Cancel abandons the gesture in progress.
func (r *Recognizer) Cancel() { r.reset() }

// Origin returns where the tracked press started.
func (r *Recognizer) Origin() (int, int) { return r.startX, r.startY }

func (r *Recognizer) hit(x, y int) bool {
	for _, reg := range r.regions {
		if reg.InBounds(x, y) {
			return true
		}
	}
	return false
}

func (r *Recognizer) begin(x, y int) {
	r.tracking = true
	r.recognized = false
	r.startX, r.startY = x, y
	r.lastX, r.lastY = x, y
	r.lastT = r.now()
	r.vx, r.vy = 0, 0
}

func (r *Recognizer) track(x, y int) {
	now := r.now()
	if dt := now.Sub(r.lastT).Seconds(); dt > 0 {
		r.vx = float64(x-r.lastX) / dt
		r.vy = float64(y-r.lastY) / dt
	}
	r.lastX, r.lastY = x, y
	r.lastT = now
}

func (r *Recognizer) sample(dx, dy int, first, last bool) Sample {
	return Sample{
		First:     first,
		Last:      last,
		DeltaX:    dx,
		DeltaY:    dy,
		VelocityX: r.vx,
		VelocityY: r.vy,
	}
}

func (r *Recognizer) reset() {
	r.tracking = false
	r.recognized = false
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
