package image

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleCue = `REM COMMENT "ripped with spindle"
TITLE "Some Album"
FILE "track01.cdda.wav" WAVE
  TRACK 01 AUDIO
    INDEX 01 00:00:00
FILE "track02.cdda.wav" WAVE
  TRACK 02 AUDIO
    INDEX 00 00:00:00
    INDEX 01 00:02:33
`

func TestParse(t *testing.T) {
	sheet, err := Parse(strings.NewReader(sampleCue))
	require.NoError(t, err)

	require.Len(t, sheet.Files, 2)
	require.Equal(t, "track01.cdda.wav", sheet.Files[0].Name)
	require.Equal(t, "WAVE", sheet.Files[0].Type)
	require.Len(t, sheet.Files[0].Tracks, 1)
	require.Equal(t, 1, sheet.Files[0].Tracks[0].Number)
	require.Equal(t, "AUDIO", sheet.Files[0].Tracks[0].Mode)

	track2 := sheet.Files[1].Tracks[0]
	require.Equal(t, []Index{
		{Number: 0, Frame: 0},
		{Number: 1, Frame: 2*75 + 33},
	}, track2.Indexes)
}

func TestParse_FilenameWithSpaces(t *testing.T) {
	sheet, err := Parse(strings.NewReader(
		"FILE \"my album rip.wav\" WAVE\nTRACK 01 AUDIO\nINDEX 01 00:00:00\n"))
	require.NoError(t, err)
	require.Equal(t, "my album rip.wav", sheet.Files[0].Name)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "track before file", input: "TRACK 01 AUDIO\n"},
		{name: "index before track", input: "FILE \"a.wav\" WAVE\nINDEX 01 00:00:00\n"},
		{name: "bad msf", input: "FILE \"a.wav\" WAVE\nTRACK 01 AUDIO\nINDEX 01 00:00\n"},
		{name: "frames out of range", input: "FILE \"a.wav\" WAVE\nTRACK 01 AUDIO\nINDEX 01 00:00:75\n"},
		{name: "file missing type", input: "FILE \"a.wav\"\n"},
		{name: "bad track number", input: "FILE \"a.wav\" WAVE\nTRACK xx AUDIO\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.input))
			require.Error(t, err)
		})
	}
}

func TestParseMSF(t *testing.T) {
	frame, err := parseMSF("03:36:65")
	require.NoError(t, err)
	require.Equal(t, (3*60+36)*75+65, frame)
}

func TestVerify(t *testing.T) {
	dir := t.TempDir()

	writeFile := func(name, content string) string {
		t.Helper()
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
		return path
	}

	t.Run("all files present", func(t *testing.T) {
		writeFile("track01.cdda.wav", "RIFF")
		writeFile("track02.cdda.wav", "RIFF")
		cuePath := writeFile("album.cue", sampleCue)

		sheet, err := Verify(cuePath)
		require.NoError(t, err)
		require.Len(t, sheet.Files, 2)
	})

	t.Run("missing referenced file", func(t *testing.T) {
		cuePath := writeFile("broken.cue",
			"FILE \"gone.wav\" WAVE\nTRACK 01 AUDIO\nINDEX 01 00:00:00\n")

		_, err := Verify(cuePath)
		require.Error(t, err)
		require.Contains(t, err.Error(), "gone.wav")
	})

	t.Run("missing cue sheet", func(t *testing.T) {
		_, err := Verify(filepath.Join(dir, "nope.cue"))
		require.Error(t, err)
	})
}
