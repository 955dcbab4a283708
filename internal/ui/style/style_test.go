package style

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDisabled_ReturnsInputUnchanged(t *testing.T) {
	Init(false)

	require.False(t, Enabled())
	require.Equal(t, "plain", Success("plain"))
	require.Equal(t, "plain", Warning("plain"))
	require.Equal(t, "plain", Error("plain"))
	require.Equal(t, "plain", Info("plain"))
	require.Equal(t, "plain", Header("plain"))
	require.Equal(t, "plain", Muted("plain"))
}

func TestNoColorEnv_DisablesStyling(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	Init(true)
	require.False(t, Enabled())
	require.Equal(t, "text", Error("text"))
}

func TestSpindleNoColorEnv_DisablesStyling(t *testing.T) {
	t.Setenv("SPINDLE_NO_COLOR", "yes")

	Init(true)
	require.False(t, Enabled())
}

func TestEnabled_AddsAnsiCodes(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	t.Setenv("SPINDLE_NO_COLOR", "")

	Init(true)
	t.Cleanup(func() { Init(false) })

	require.True(t, Enabled())
	require.NotEqual(t, "ok", Success("ok"))
	require.Contains(t, Success("ok"), "ok")
}
