package drawer

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/footprint-tools/drawer/internal/domain"
	"github.com/footprint-tools/drawer/internal/surface"
)

const (
	DefaultAnimationDelay      = 1000 * time.Millisecond
	DefaultSwipeCommitFraction = 0.5
	DefaultSwipeCommitVelocity = 40.0 // cells per second
	DefaultSettleFPS           = 60
)

// NoAnimation as Config.AnimationDelay runs the timed steps back to back.
// A zero AnimationDelay selects DefaultAnimationDelay.
const NoAnimation time.Duration = -1

// ErrInvalidConfig is returned by New for unusable configuration.
var ErrInvalidConfig = errors.New("drawer: invalid config")

// Side is the screen edge the panel is anchored to.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

func (s Side) String() string {
	if s == SideRight {
		return "right"
	}
	return "left"
}

// ParseSide parses "left" or "right". Empty means left.
func ParseSide(s string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "left":
		return SideLeft, nil
	case "right":
		return SideRight, nil
	default:
		return SideLeft, fmt.Errorf("%w: side %q", ErrInvalidConfig, s)
	}
}

// dismissDir is the sign of the x movement that pushes the panel off screen.
func (s Side) dismissDir() int {
	if s == SideRight {
		return 1
	}
	return -1
}

// Config is fixed for the panel's lifetime.
type Config struct {
	ID             string
	Side           Side
	TargetSelector string

	AnimationDelay      time.Duration
	SwipeCommitFraction float64
	SwipeCommitVelocity float64
	SettleFPS           int

	// Platform is the host platform name; refocus is withheld on any
	// platform listed in RefocusBlocked.
	Platform       string
	RefocusBlocked []string
}

func (c Config) withDefaults() Config {
	switch {
	case c.AnimationDelay == 0:
		c.AnimationDelay = DefaultAnimationDelay
	case c.AnimationDelay < 0:
		c.AnimationDelay = 0
	}
	if c.SwipeCommitFraction <= 0 || c.SwipeCommitFraction > 1 {
		c.SwipeCommitFraction = DefaultSwipeCommitFraction
	}
	if c.SwipeCommitVelocity <= 0 {
		c.SwipeCommitVelocity = DefaultSwipeCommitVelocity
	}
	if c.SettleFPS <= 0 {
		c.SettleFPS = DefaultSettleFPS
	}
	return c
}

func (c Config) refocusBlocked() bool {
	if c.Platform == "" {
		return false
	}
	for _, p := range c.RefocusBlocked {
		if strings.EqualFold(strings.TrimSpace(p), c.Platform) {
			return true
		}
	}
	return false
}

// Deps are the collaborators a panel consumes.
type Deps struct {
	Element   *surface.Element
	Document  Document
	History   History
	Owner     Owner
	Notifier  Notifier
	Gestures  GestureSource // optional
	Scheduler Scheduler     // defaults to TickScheduler
	Logger    domain.Logger // defaults to a no-op logger
}

func (d Deps) validate() error {
	switch {
	case d.Element == nil:
		return fmt.Errorf("%w: nil panel element", ErrInvalidConfig)
	case d.Document == nil:
		return fmt.Errorf("%w: nil document", ErrInvalidConfig)
	case d.History == nil:
		return fmt.Errorf("%w: nil history", ErrInvalidConfig)
	case d.Owner == nil:
		return fmt.Errorf("%w: nil owner", ErrInvalidConfig)
	case d.Notifier == nil:
		return fmt.Errorf("%w: nil notifier", ErrInvalidConfig)
	}
	return nil
}
