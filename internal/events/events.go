// Package events dispatches named notifications from components to the
// embedding program.
package events

import (
	"time"

	"github.com/footprint-tools/drawer/internal/domain"
	"github.com/footprint-tools/drawer/internal/log"
)

// Trust is how much the receiver may rely on a notification having been
// caused by the user.
type Trust int

const (
	TrustLow Trust = iota
	TrustDefault
	TrustHigh
)

func (t Trust) String() string {
	switch t {
	case TrustLow:
		return "low"
	case TrustHigh:
		return "high"
	default:
		return "default"
	}
}

// ParseTrust converts a stored trust name back to a Trust.
func ParseTrust(s string) Trust {
	switch s {
	case "low":
		return TrustLow
	case "high":
		return TrustHigh
	default:
		return TrustDefault
	}
}

// Event is one dispatched notification.
type Event struct {
	ID     int64
	Source string
	Name   string
	Trust  Trust
	At     time.Time
}

// Sink persists events.
type Sink interface {
	Record(e Event) error
}

// Bus fans notifications out to subscribers and an optional sink.
// It is used from the Update goroutine only.
type Bus struct {
	subs   []func(Event)
	sink   Sink
	now    func() time.Time
	logger domain.Logger
}

// Option configures a Bus.
type Option func(*Bus)

// WithSink records every event to sink.
func WithSink(sink Sink) Option {
	return func(b *Bus) { b.sink = sink }
}

// WithClock overrides the event timestamp source.
func WithClock(now func() time.Time) Option {
	return func(b *Bus) { b.now = now }
}

// WithLogger sets where sink failures are reported.
func WithLogger(l domain.Logger) Option {
	return func(b *Bus) { b.logger = l }
}

// NewBus creates a bus.
func NewBus(opts ...Option) *Bus {
	b := &Bus{now: time.Now, logger: log.NopLogger{}}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Subscribe registers fn for every event.
func (b *Bus) Subscribe(fn func(Event)) {
	b.subs = append(b.subs, fn)
}

// Trigger dispatches name from source.
func (b *Bus) Trigger(source, name string, trust Trust) {
	e := Event{Source: source, Name: name, Trust: trust, At: b.now()}
	if b.sink != nil {
		if err := b.sink.Record(e); err != nil {
			b.logger.Warn("events: record %s/%s: %v", source, name, err)
		}
	}
	for _, fn := range b.subs {
		fn(e)
	}
}

// For binds the bus to a source.
func (b *Bus) For(source string) Notifier {
	return Notifier{bus: b, source: source}
}

// Notifier triggers events for a fixed source.
type Notifier struct {
	bus    *Bus
	source string
}

// Trigger dispatches name with the notifier's source.
func (n Notifier) Trigger(name string, trust Trust) {
	n.bus.Trigger(n.source, name, trust)
}
