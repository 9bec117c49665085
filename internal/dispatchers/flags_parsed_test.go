package dispatchers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParsedFlags(t *testing.T) {
	f := NewParsedFlags([]string{"--no-color", "--limit=5", "--name=open", "--name=close", "--since=2026-03-04", "--bad=x"})

	require.True(t, f.Has("--no-color"))
	require.False(t, f.Has("--limit"))

	require.Equal(t, "close", f.String("--name", ""))
	require.Equal(t, "dflt", f.String("--missing", "dflt"))

	require.Equal(t, 5, f.Int("--limit", 10))
	require.Equal(t, 10, f.Int("--bad", 10))
	require.Equal(t, 10, f.Int("--missing", 10))

	d := f.Date("--since")
	require.NotNil(t, d)
	require.Equal(t, time.Date(2026, 3, 4, 0, 0, 0, 0, time.Local), *d)
	require.Nil(t, f.Date("--bad"))
	require.Nil(t, f.Date("--missing"))
}

func TestParsedFlags_Choice(t *testing.T) {
	tests := []struct {
		name    string
		flags   []string
		want    string
		wantErr bool
	}{
		{"absent uses default", nil, "left", false},
		{"allowed", []string{"--side=right"}, "right", false},
		{"rejected", []string{"--side=up"}, "", true},
		{"empty rejected", []string{"--side="}, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewParsedFlags(tt.flags).Choice("--side", "left", "left", "right")
			if tt.wantErr {
				require.ErrorContains(t, err, "left or right")
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}
