package drawer

import "github.com/footprint-tools/drawer/internal/surface"

// triggerContext is captured on open and consulted on close.
type triggerContext struct {
	el        *surface.Element
	scrollTop int
}

func captureTrigger(el *surface.Element, scrollTop int) triggerContext {
	return triggerContext{el: el, scrollTop: scrollTop}
}

// refocusAllowed decides whether closing may move focus back to the element
// that opened the panel. The user must not have scrolled or moved focus out
// of the panel, and some terminals jump their scrollback on programmatic
// focus so they never get it.
func (p *Panel) refocusAllowed(focusWithin, scrollUnchanged bool) bool {
	if p.st.trigger.el == nil || !focusWithin || !scrollUnchanged {
		return false
	}
	if p.cfg.refocusBlocked() {
		p.logger.Debug("drawer %s: refocus withheld on %s", p.cfg.ID, p.cfg.Platform)
		return false
	}
	return true
}
