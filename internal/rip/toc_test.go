package rip

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleQueryOutput = `cdparanoia III release 10.2 (September 11, 2008)

Table of contents (audio tracks only):
track        length               begin        copy pre ch
===========================================================
  1.    16265 [03:36.65]        0 [00:00.00]    no   no  2
  2.    17115 [03:48.15]    16265 [03:36.65]    no   no  2
  3.    15480 [03:26.30]    33380 [07:25.05]    no   no  2
TOTAL   48860 [10:51.35]    (audio only)
`

func TestParseTOC(t *testing.T) {
	toc, err := ParseTOC(strings.NewReader(sampleQueryOutput))
	require.NoError(t, err)

	require.Equal(t, []Track{
		{Number: 1, Start: 0, Frames: 16265},
		{Number: 2, Start: 16265, Frames: 17115},
		{Number: 3, Start: 33380, Frames: 15480},
	}, toc.Tracks)

	require.Equal(t, 48860, toc.TotalFrames())
	require.Equal(t, 48860, toc.LeadOut())
}

func TestParseTOC_IgnoresNoise(t *testing.T) {
	input := `Checking /dev/sr0 for cdrom...
	Toc is: not a table row
  1.      750 [00:10.00]        0 [00:00.00]    no   no  2
`
	toc, err := ParseTOC(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, toc.Tracks, 1)
	require.Equal(t, Track{Number: 1, Start: 0, Frames: 750}, toc.Tracks[0])
}

func TestParseTOC_NoTracks(t *testing.T) {
	_, err := ParseTOC(strings.NewReader("Unable to open disc.\n"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "no audio tracks")
}

func TestDiscID(t *testing.T) {
	// Hand-computed for a two-track disc: checksum 13, playing time
	// 445 seconds, 2 tracks.
	toc := &TOC{Tracks: []Track{
		{Number: 1, Start: 0, Frames: 16265},
		{Number: 2, Start: 16265, Frames: 17115},
	}}

	require.Equal(t, "0d01bd02", DiscID(toc))
}

func TestDiscID_Stable(t *testing.T) {
	toc, err := ParseTOC(strings.NewReader(sampleQueryOutput))
	require.NoError(t, err)

	first := DiscID(toc)
	require.Len(t, first, 8)
	require.Equal(t, first, DiscID(toc))
}
