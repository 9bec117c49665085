package dispatchers

// CommandFunc runs a resolved command.
type CommandFunc func(args []string, flags *ParsedFlags) error

// Resolution is the outcome of Dispatch.
type Resolution struct {
	Node     *DispatchNode
	Args     []string
	Flags    *ParsedFlags
	Execute  CommandFunc
	ExitCode int // non-zero asks main to exit with it after Execute
}

type FlagScope int

const (
	FlagScopeGlobal FlagScope = iota
	FlagScopeLocal
)

type FlagDescriptor struct {
	Names       []string
	ValueHint   string
	Description string
	Scope       FlagScope
}

type ArgSpec struct {
	Name        string
	Description string
	Required    bool
}

type DispatchNode struct {
	Name        string
	Path        []string
	Summary     string
	Description string
	Usage       string
	Flags       []FlagDescriptor
	Args        []ArgSpec
	Children    map[string]*DispatchNode
	Action      CommandFunc
	Category    CommandCategory
}
