package dispatchers

type CommandCategory int

const (
	CategoryUncategorized CommandCategory = iota
	CategoryGetStarted                    // demo
	CategoryInspect                       // events, version
	CategoryConfig                        // config get/set/unset/list
)

func (c CommandCategory) String() string {
	switch c {
	case CategoryGetStarted:
		return "get started"
	case CategoryInspect:
		return "inspect notifications"
	case CategoryConfig:
		return "configure drawer"
	default:
		return "other commands"
	}
}

var categoryOrder = []CommandCategory{
	CategoryGetStarted,
	CategoryInspect,
	CategoryConfig,
	CategoryUncategorized,
}

// CategoryOrder returns the display order for categories.
func CategoryOrder() []CommandCategory {
	return categoryOrder
}
