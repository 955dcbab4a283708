package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// writeConfig drops an INI file into a temp dir and loads it.
func writeConfig(t *testing.T, content string) *Store {
	t.Helper()

	path := filepath.Join(t.TempDir(), "spindle.conf")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	s, err := Load(path)
	require.NoError(t, err)
	return s
}

func TestLoad_MissingFileIsEmptyStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist.conf")

	s, err := Load(path)
	require.NoError(t, err)

	_, ok := s.Get("spindle", "eject")
	require.False(t, ok)
}

func TestGet_DottedSections(t *testing.T) {
	s := writeConfig(t, `
[spindle]
eject = never

[spindle.cd.rip]
output-directory = /mnt/rips
track-template = %d-%t
`)

	v, ok := s.Get("spindle", "eject")
	require.True(t, ok)
	require.Equal(t, "never", v)

	v, ok = s.Get("spindle.cd.rip", "output-directory")
	require.True(t, ok)
	require.Equal(t, "/mnt/rips", v)

	_, ok = s.Get("spindle.cd.rip", "eject")
	require.False(t, ok, "keys must not leak across sections")

	_, ok = s.Get("spindle.cd", "output-directory")
	require.False(t, ok)
}

func TestGetBool_StrictSpellings(t *testing.T) {
	tests := []struct {
		raw       string
		want      bool
		wantFound bool
	}{
		{"1", true, true},
		{"true", true, true},
		{"TRUE", true, true},
		{"yes", true, true},
		{"on", true, true},
		{"t", true, true},
		{"y", true, true},
		{"0", false, true},
		{"false", false, true},
		{"no", false, true},
		{"off", false, true},
		{"f", false, true},
		{"n", false, true},
		{" yes ", true, true},
		{"definitely", false, false},
		{"2", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			s := writeConfig(t, "[spindle.cd.rip]\nkeep-going = "+tt.raw+"\n")

			got, found := s.GetBool("spindle.cd.rip", "keep-going")
			require.Equal(t, tt.wantFound, found)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestGetBool_AbsentKey(t *testing.T) {
	s := writeConfig(t, "[spindle]\n")

	v, ok := s.GetBool("spindle", "keep-going")
	require.False(t, ok)
	require.False(t, v)
}

func TestSetAndSave_Roundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spindle.conf")

	s, err := Load(path)
	require.NoError(t, err)

	s.Set("spindle.drive.analyze", "defeats-cache", "yes")
	require.NoError(t, s.Save())

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0600), info.Mode().Perm())

	reloaded, err := Load(path)
	require.NoError(t, err)

	v, ok := reloaded.GetBool("spindle.drive.analyze", "defeats-cache")
	require.True(t, ok)
	require.True(t, v)
}

func TestSave_EmptyStoreHasNoTarget(t *testing.T) {
	require.Error(t, Empty().Save())
}

func TestSave_PreservesOtherSections(t *testing.T) {
	s := writeConfig(t, "[spindle]\neject = always\n")

	s.Set("spindle.cd.rip", "offset", "6")
	require.NoError(t, s.Save())

	reloaded, err := Load(s.Path())
	require.NoError(t, err)

	v, ok := reloaded.Get("spindle", "eject")
	require.True(t, ok)
	require.Equal(t, "always", v)

	v, ok = reloaded.Get("spindle.cd.rip", "offset")
	require.True(t, ok)
	require.Equal(t, "6", v)
}
