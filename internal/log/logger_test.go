package log

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"debug", LevelDebug},
		{"DEBUG", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"error", LevelError},
		{"critical", LevelCritical},
		{"garbage", LevelWarn},
		{"", LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			require.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, LevelWarn)

	l.Debug("dropped %d", 1)
	l.Info("dropped %d", 2)
	l.Warn("kept %d", 3)
	l.Error("kept %d", 4)
	l.Critical("kept %d", 5)

	out := buf.String()
	require.NotContains(t, out, "dropped")
	require.Contains(t, out, "WARN: kept 3")
	require.Contains(t, out, "ERROR: kept 4")
	require.Contains(t, out, "CRITICAL: kept 5")
	require.Len(t, strings.Split(strings.TrimRight(out, "\n"), "\n"), 3)
}

func TestLogger_SetLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, LevelError)

	l.Info("before")
	require.Empty(t, buf.String())

	l.SetLevel(LevelDebug)
	l.Info("after")
	require.Contains(t, buf.String(), "INFO: after")
}

func TestLogger_Writer(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, LevelDebug)

	w := l.Writer(LevelDebug)
	n, err := w.Write([]byte("subprocess line\n"))
	require.NoError(t, err)
	require.Equal(t, len("subprocess line\n"), n)
	require.Contains(t, buf.String(), "DEBUG: subprocess line")
	require.NotContains(t, buf.String(), "subprocess line\n\n")
}

func TestLogger_NilSafe(t *testing.T) {
	var l *Logger
	require.NotPanics(t, func() {
		l.Debug("no-op")
		l.Critical("no-op")
		l.SetLevel(LevelDebug)
	})
}

func TestDefaultLogger_Swap(t *testing.T) {
	orig := Default()
	t.Cleanup(func() { SetDefault(orig) })

	var buf bytes.Buffer
	SetDefault(New(&buf, LevelDebug))

	Debug("through the package funcs")
	require.Contains(t, buf.String(), "DEBUG: through the package funcs")
}
