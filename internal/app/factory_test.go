package app

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spindle-tools/cli/internal/log"
)

func TestNew_MissingConfigIsEmpty(t *testing.T) {
	app, err := New(Options{
		ConfigPath: filepath.Join(t.TempDir(), "spindle.conf"),
		LogWriter:  &bytes.Buffer{},
	})
	require.NoError(t, err)

	_, ok := app.Config.Get("spindle", "log-level")
	require.False(t, ok)
	require.NotNil(t, app.Deps.Runner)
	require.NotNil(t, app.Deps.OpenResults)
	require.NotNil(t, app.Deps.Browse)
}

func TestNew_LogLevelFromConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spindle.conf")
	require.NoError(t, os.WriteFile(path, []byte("[spindle]\nlog-level = debug\n"), 0600))

	var buf bytes.Buffer
	app, err := New(Options{ConfigPath: path, LogWriter: &buf})
	require.NoError(t, err)

	app.Log.Debug("wired")
	require.Contains(t, buf.String(), "wired")
}

func TestNew_SetsDefaultLogger(t *testing.T) {
	var buf bytes.Buffer
	_, err := New(Options{
		ConfigPath: filepath.Join(t.TempDir(), "spindle.conf"),
		LogWriter:  &buf,
	})
	require.NoError(t, err)

	log.Critical("global")
	require.Contains(t, buf.String(), "global")
}
