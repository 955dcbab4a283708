package rip

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestQueryCommand(t *testing.T) {
	require.Equal(t,
		[]string{"cdparanoia", "-Q", "-d", "/dev/sr0"},
		QueryCommand("/dev/sr0"))
}

func TestRipCommand(t *testing.T) {
	t.Run("with offset", func(t *testing.T) {
		require.Equal(t,
			[]string{"cdparanoia", "-d", "/dev/sr0", "-O", "6", "3", "out/track03.cdda.wav"},
			RipCommand("/dev/sr0", 3, 6, "out/track03.cdda.wav"))
	})

	t.Run("zero offset omitted", func(t *testing.T) {
		require.Equal(t,
			[]string{"cdparanoia", "-d", "/dev/sr0", "1", "track01.cdda.wav"},
			RipCommand("/dev/sr0", 1, 0, "track01.cdda.wav"))
	})
}

func TestAnalyzeCommand(t *testing.T) {
	require.Equal(t,
		[]string{"cdparanoia", "-A", "-d", "/dev/sr1"},
		AnalyzeCommand("/dev/sr1"))
}

func TestProbeCommand(t *testing.T) {
	require.Equal(t,
		[]string{"cdparanoia", "-d", "/dev/sr0", "-O", "-48", "1[0:0.00]-1[0:2.00]", "probe.wav"},
		ProbeCommand("/dev/sr0", -48, "probe.wav"))
}

func TestEjectCommand(t *testing.T) {
	require.Equal(t, []string{"eject", "/dev/sr0"}, EjectCommand("/dev/sr0"))
}

func TestFilename(t *testing.T) {
	tests := []struct {
		name     string
		template string
		track    int
		total    int
		discID   string
		want     string
	}{
		{name: "default", template: DefaultTemplate, track: 3, total: 12, discID: "0d01bd02", want: "track03.cdda.wav"},
		{name: "all tokens", template: "%d-%n-of-%t.wav", track: 7, total: 12, discID: "0d01bd02", want: "0d01bd02-07-of-12.wav"},
		{name: "literal percent", template: "100%%-%n.wav", track: 1, total: 1, discID: "x", want: "100%-01.wav"},
		{name: "unknown token kept", template: "track%x.wav", track: 1, total: 1, discID: "x", want: "track%x.wav"},
		{name: "trailing percent", template: "track%n%", track: 2, total: 2, discID: "x", want: "track02%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Filename(tt.template, tt.track, tt.total, tt.discID))
		})
	}
}
