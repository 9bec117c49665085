package drawer

// State is the panel lifecycle state.
type State int

const (
	Closed State = iota
	Preopen
	Opening
	Opened
	Closing
)

// String returns the value stamped in the state attribute.
func (s State) String() string {
	switch s {
	case Preopen:
		return "preopen"
	case Opening:
		return "opening"
	case Opened:
		return "opened"
	case Closing:
		return "closing"
	default:
		return "closed"
	}
}

// Attributes and notifications the panel writes.
const (
	AttrState = "side-state"
	AttrOpen  = "open"
	AttrWidth = "--drawer-width"

	NotifyOpen  = "open"
	NotifyClose = "close"
)
