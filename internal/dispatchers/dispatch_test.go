package dispatchers

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/drawer/internal/usage"
)

func mockAction(args []string, flags *ParsedFlags) error {
	return nil
}

func createTestTree() *DispatchNode {
	root := Root(RootSpec{
		Name:    "drawer",
		Summary: "Test CLI",
		Usage:   "drawer <command> [flags]",
		Flags: []FlagDescriptor{
			{Names: []string{"--help", "-h"}, Description: "Show help"},
			{Names: []string{"--no-color"}, Description: "Disable colors"},
		},
	})

	Command(CommandSpec{Name: "version", Parent: root, Summary: "Show version", Action: mockAction})
	Command(CommandSpec{
		Name:    "demo",
		Parent:  root,
		Summary: "Run the demo",
		Flags:   []FlagDescriptor{{Names: []string{"--side"}, ValueHint: "<side>"}},
		Action:  mockAction,
	})

	events := Command(CommandSpec{
		Name:   "events",
		Parent: root,
		Flags:  []FlagDescriptor{{Names: []string{"--limit"}, ValueHint: "<n>"}},
		Action: mockAction,
	})
	Command(CommandSpec{Name: "clear", Parent: events, Action: mockAction})

	config := Group(GroupSpec{Name: "config", Parent: root, Usage: "drawer config <command>"})
	Command(CommandSpec{
		Name:   "set",
		Parent: config,
		Args: []ArgSpec{
			{Name: "key", Required: true},
			{Name: "value", Required: true},
		},
		Action: mockAction,
	})
	Command(CommandSpec{
		Name:   "get",
		Parent: config,
		Args:   []ArgSpec{{Name: "key", Required: true}},
		Action: mockAction,
	})

	return root
}

func usageKind(t *testing.T, err error) usage.ErrorKind {
	t.Helper()
	var ue *usage.Error
	require.ErrorAs(t, err, &ue)
	return ue.Kind
}

func TestDispatch_Resolves(t *testing.T) {
	tests := []struct {
		name     string
		tokens   []string
		flags    []string
		wantPath []string
		wantArgs []string
	}{
		{"simple command", []string{"version"}, nil, []string{"drawer", "version"}, []string{}},
		{"command with local flag", []string{"demo"}, []string{"--side=right"}, []string{"drawer", "demo"}, []string{}},
		{"global flag anywhere", []string{"demo"}, []string{"--no-color"}, []string{"drawer", "demo"}, []string{}},
		{"nested command", []string{"config", "set", "side", "right"}, nil, []string{"drawer", "config", "set"}, []string{"side", "right"}},
		{"command with children", []string{"events"}, []string{"--limit=3"}, []string{"drawer", "events"}, []string{}},
		{"child of a command", []string{"events", "clear"}, nil, []string{"drawer", "events", "clear"}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Dispatch(createTestTree(), tt.tokens, NewParsedFlags(tt.flags))
			require.NoError(t, err)
			require.Equal(t, tt.wantPath, res.Node.Path)
			require.Equal(t, tt.wantArgs, res.Args)
			require.NotNil(t, res.Execute)
			require.Zero(t, res.ExitCode)
		})
	}
}

func TestDispatch_Errors(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
		flags  []string
		kind   usage.ErrorKind
	}{
		{"unknown top-level", []string{"dmeo"}, nil, usage.ErrUnknownCommand},
		{"unknown in group", []string{"config", "sett"}, nil, usage.ErrUnknownCommand},
		{"flag of another command", []string{"version"}, []string{"--side=left"}, usage.ErrInvalidFlag},
		{"unknown flag", []string{"demo"}, []string{"--bogus"}, usage.ErrInvalidFlag},
		{"missing first argument", []string{"config", "get"}, nil, usage.ErrMissingArgument},
		{"missing second argument", []string{"config", "set", "side"}, nil, usage.ErrMissingArgument},
		{"help for unknown", []string{"help", "nope"}, nil, usage.ErrUnknownCommand},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Dispatch(createTestTree(), tt.tokens, NewParsedFlags(tt.flags))
			require.Equal(t, tt.kind, usageKind(t, err))
		})
	}
}

func TestDispatch_MissingArgumentNamesIt(t *testing.T) {
	_, err := Dispatch(createTestTree(), []string{"config", "set", "side"}, NewParsedFlags(nil))
	require.ErrorContains(t, err, "'value'")
}

func TestDispatch_UnknownSuggests(t *testing.T) {
	_, err := Dispatch(createTestTree(), []string{"dmeo"}, NewParsedFlags(nil))
	require.ErrorContains(t, err, "demo")
}

func TestDispatch_Help(t *testing.T) {
	tests := []struct {
		name     string
		tokens   []string
		flags    []string
		wantPath []string
		exitCode int
	}{
		{"bare root", nil, nil, []string{"drawer"}, 1},
		{"help alone", []string{"help"}, nil, []string{"drawer"}, 0},
		{"help command", []string{"help", "config", "set"}, nil, []string{"drawer", "config", "set"}, 0},
		{"trailing help", []string{"events", "help"}, nil, []string{"drawer", "events"}, 0},
		{"help flag", []string{"demo"}, []string{"--help"}, []string{"drawer", "demo"}, 0},
		{"short help flag skips validation", []string{"config", "get"}, []string{"-h"}, []string{"drawer", "config", "get"}, 0},
		{"group without command", []string{"config"}, nil, []string{"drawer", "config"}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Dispatch(createTestTree(), tt.tokens, NewParsedFlags(tt.flags))
			require.NoError(t, err)
			require.Equal(t, tt.wantPath, res.Node.Path)
			require.Equal(t, tt.exitCode, res.ExitCode)
			require.NotNil(t, res.Execute)
		})
	}
}

func TestNewNode_PathDoesNotAlias(t *testing.T) {
	root := Root(RootSpec{Name: "drawer"})
	group := Group(GroupSpec{Name: "config", Parent: root})
	a := Command(CommandSpec{Name: "get", Parent: group})
	b := Command(CommandSpec{Name: "set", Parent: group})

	require.Equal(t, []string{"drawer", "config", "get"}, a.Path)
	require.Equal(t, []string{"drawer", "config", "set"}, b.Path)
	require.Same(t, a, group.Children["get"])
}

func TestCategoryOrder(t *testing.T) {
	order := CategoryOrder()
	require.Equal(t, CategoryGetStarted, order[0])
	require.Equal(t, CategoryUncategorized, order[len(order)-1])
	require.Equal(t, "configure drawer", CategoryConfig.String())
	require.Equal(t, "other commands", CommandCategory(42).String())
}
