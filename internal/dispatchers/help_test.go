package dispatchers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/drawer/internal/ui/style"
)

func init() {
	style.Init(false, nil)
}

func TestFormatUsage(t *testing.T) {
	require.Equal(t, "drawer version", formatUsage("drawer version"))
	require.Equal(t, "drawer config set <key> <value>", formatUsage("drawer config set <key> <value>"))
	require.Equal(t, "drawer demo [--side=<side>]", formatUsage("drawer demo [--side=<side>]"))
}

func TestCollectLeafCommands(t *testing.T) {
	var leaves []*DispatchNode
	collectLeafCommands(createTestTree(), &leaves)

	var names []string
	for _, l := range leaves {
		names = append(names, displayName(l))
	}
	require.ElementsMatch(t, []string{"version", "demo", "events", "events clear", "config set", "config get"}, names)
}

func TestRenderHelp_Root(t *testing.T) {
	root := createTestTree()
	root.Children["demo"].Category = CategoryGetStarted
	root.Children["config"].Children["get"].Category = CategoryConfig
	root.Children["config"].Children["set"].Category = CategoryConfig

	out := renderHelp(root, root)

	require.True(t, strings.HasPrefix(out, "drawer - Test CLI\n"))
	getStarted := strings.Index(out, "get started")
	configure := strings.Index(out, "configure drawer")
	other := strings.Index(out, "other commands")
	require.True(t, getStarted >= 0 && getStarted < configure && configure < other)

	// explicit order puts get before set
	require.Less(t, strings.Index(out, "config get"), strings.Index(out, "config set"))
	require.Contains(t, out, "--no-color")
	require.Contains(t, out, "See 'drawer help <command>'")
}

func TestRenderHelp_Command(t *testing.T) {
	root := createTestTree()
	set := root.Children["config"].Children["set"]
	set.Summary = "Set a value"
	set.Usage = "drawer config set <key> <value>"
	set.Description = "Writes to ~/.drawerrc."

	out := renderHelp(set, root)

	require.True(t, strings.HasPrefix(out, "drawer config set - Set a value\n"))
	require.Contains(t, out, "Writes to ~/.drawerrc.")
	require.Contains(t, out, "ARGUMENTS")
	require.Contains(t, out, "<key>")
	require.NotContains(t, out, "FLAGS")
}

func TestRenderHelp_GroupListsChildren(t *testing.T) {
	root := createTestTree()
	out := renderHelp(root.Children["config"], root)

	require.Contains(t, out, "COMMANDS")
	require.Less(t, strings.Index(out, "get"), strings.Index(out, "set"))
}
