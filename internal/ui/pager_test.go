package ui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func capture(t *testing.T, tty bool) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prevOut, prevTTY := stdout, isTerminal
	stdout = &buf
	isTerminal = func() bool { return tty }
	t.Cleanup(func() {
		stdout, isTerminal = prevOut, prevTTY
		pagerMu.Lock()
		pagerDisabled, pagerOverride = false, ""
		pagerMu.Unlock()
	})
	return &buf
}

func TestPager_DirectOutput(t *testing.T) {
	tests := []struct {
		name  string
		tty   bool
		setup func(t *testing.T)
	}{
		{"not a terminal", false, func(*testing.T) {}},
		{"disabled", true, func(*testing.T) { DisablePager() }},
		{"override cat", true, func(*testing.T) { SetPager("cat") }},
		{"env cat", true, func(t *testing.T) { t.Setenv("DRAWER_PAGER", "cat") }},
		{"blank override falls to env", true, func(t *testing.T) {
			SetPager("")
			t.Setenv("DRAWER_PAGER", "")
			t.Setenv("PAGER", "cat -u")
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := capture(t, tt.tty)
			tt.setup(t)
			Pager("hello\n")
			require.Equal(t, "hello\n", buf.String())
		})
	}
}

func TestPager_MissingPagerFallsBack(t *testing.T) {
	buf := capture(t, true)
	SetPager("drawer-no-such-pager-binary")
	Pager("fallback\n")
	require.Equal(t, "fallback\n", buf.String())
}
