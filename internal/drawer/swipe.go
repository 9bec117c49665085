package drawer

import (
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"

	"github.com/footprint-tools/drawer/internal/gesture"
	"github.com/footprint-tools/drawer/internal/surface"
)

const (
	settleFrequency = 6.0
	settleDamping   = 1.0
	settleRest      = 0.5
)

type settleMsg struct {
	panel string
	gen   uint64
}

// swipeSession lives between a drag's first and last sample.
type swipeSession struct {
	targets []*surface.Element
	dir     int
	width   int
	offset  int
}

type swipeState struct {
	session *swipeSession
	spring  harmonica.Spring

	settling bool
	gen      uint64
	frames   int
	pos      float64
	vel      float64
	tracked  []*surface.Element
	dir      int
}

func newSettleSpring(fps int) harmonica.Spring {
	return harmonica.NewSpring(harmonica.FPS(fps), settleFrequency, settleDamping)
}

// Swiping reports whether a drag session is active.
func (p *Panel) Swiping() bool { return p.swipe.session != nil }

// Settling reports whether the snap-back animation is running.
func (p *Panel) Settling() bool { return p.swipe.settling }

// Swipe feeds one drag sample. Samples that arrive while no session is
// active and are not First are ignored.
func (p *Panel) Swipe(s gesture.Sample) tea.Cmd {
	if s.First {
		if p.swipe.session != nil {
			p.logger.Debug("drawer %s: new drag while a session is active, aborting the old one", p.cfg.ID)
			p.endSwipe()
		}
		if !p.st.opened || p.st.lifecycle != Opened {
			p.logger.Debug("drawer %s: drag rejected in state %s", p.cfg.ID, p.st.lifecycle)
			return nil
		}
		p.stopSettle()
		p.swipe.session = &swipeSession{
			targets: p.targets(),
			dir:     p.cfg.Side.dismissDir(),
			width:   p.el.Width(),
		}
	}

	sess := p.swipe.session
	if sess == nil {
		return nil
	}
	sess.offset = min(max(s.DeltaX*sess.dir, 0), sess.width)
	applyOffset(sess.targets, sess.offset*sess.dir)

	if !s.Last {
		return nil
	}
	p.swipe.session = nil
	if p.shouldCommit(sess, s.VelocityX*float64(sess.dir)) {
		return p.RequestDismiss(true)
	}
	return p.startSettle(sess)
}

func (p *Panel) shouldCommit(sess *swipeSession, velocity float64) bool {
	if sess.width > 0 && float64(sess.offset) >= float64(sess.width)*p.cfg.SwipeCommitFraction {
		return true
	}
	return velocity >= p.cfg.SwipeCommitVelocity
}

// endSwipe drops any session or settle and puts the targets back at rest.
func (p *Panel) endSwipe() {
	if sess := p.swipe.session; sess != nil {
		applyOffset(sess.targets, 0)
		p.swipe.session = nil
	}
	p.stopSettle()
}

func (p *Panel) startSettle(sess *swipeSession) tea.Cmd {
	if sess.offset == 0 {
		return nil
	}
	p.swipe.settling = true
	p.swipe.gen++
	p.swipe.frames = 0
	p.swipe.pos = float64(sess.offset)
	p.swipe.vel = 0
	p.swipe.tracked = sess.targets
	p.swipe.dir = sess.dir
	return p.nextSettleFrame()
}

func (p *Panel) stopSettle() {
	if !p.swipe.settling {
		return
	}
	applyOffset(p.swipe.tracked, 0)
	p.swipe.settling = false
	p.swipe.tracked = nil
	p.swipe.gen++
}

func (p *Panel) nextSettleFrame() tea.Cmd {
	frame := time.Second / time.Duration(p.cfg.SettleFPS)
	return p.sched.After(frame, settleMsg{panel: p.cfg.ID, gen: p.swipe.gen})
}

func (p *Panel) settleFrame(msg settleMsg) tea.Cmd {
	if !p.swipe.settling || msg.gen != p.swipe.gen {
		return nil
	}
	p.swipe.pos, p.swipe.vel = p.swipe.spring.Update(p.swipe.pos, p.swipe.vel, 0)
	p.swipe.frames++

	atRest := math.Abs(p.swipe.pos) < settleRest && math.Abs(p.swipe.vel) < settleRest
	if atRest || p.swipe.frames >= 2*p.cfg.SettleFPS {
		p.stopSettle()
		return nil
	}
	applyOffset(p.swipe.tracked, int(math.Round(p.swipe.pos))*p.swipe.dir)
	return p.nextSettleFrame()
}

func applyOffset(targets []*surface.Element, x int) {
	for _, t := range targets {
		t.SetOffset(x)
	}
}
