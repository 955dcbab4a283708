// Package rip drives cdparanoia: it builds the argv for each
// operation, parses the table of contents cdparanoia reports, computes
// disc ids, and renders output filenames.
package rip

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
)

// Track is one audio track from the table of contents. All counts are
// CD-DA frames (75 per second).
type Track struct {
	Number int
	Start  int // begin position on the disc
	Frames int // length
}

// TOC is the table of contents of one disc.
type TOC struct {
	Tracks []Track
}

// TotalFrames is the audio length of the disc.
func (t *TOC) TotalFrames() int {
	total := 0
	for _, track := range t.Tracks {
		total += track.Frames
	}
	return total
}

// LeadOut is the frame position where the audio ends.
func (t *TOC) LeadOut() int {
	if len(t.Tracks) == 0 {
		return 0
	}
	last := t.Tracks[len(t.Tracks)-1]
	return last.Start + last.Frames
}

// trackLine matches a cdparanoia -Q table row:
//
//	1.    16265 [03:36.65]        0 [00:00.00]    no   no  2
var trackLine = regexp.MustCompile(`^\s*(\d+)\.\s+(\d+)\s+\[[0-9:.]+\]\s+(\d+)\s+\[`)

// ParseTOC reads the table cdparanoia -Q prints (on stderr) and
// returns the tracks it lists. A report with no track rows is an
// error; it usually means there is no audio disc in the drive.
func ParseTOC(r io.Reader) (*TOC, error) {
	var toc TOC

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		m := trackLine.FindStringSubmatch(scanner.Text())
		if m == nil {
			continue
		}

		number, err := strconv.Atoi(m[1])
		if err != nil {
			return nil, fmt.Errorf("parse track number %q: %w", m[1], err)
		}
		frames, err := strconv.Atoi(m[2])
		if err != nil {
			return nil, fmt.Errorf("parse track length %q: %w", m[2], err)
		}
		start, err := strconv.Atoi(m[3])
		if err != nil {
			return nil, fmt.Errorf("parse track begin %q: %w", m[3], err)
		}

		toc.Tracks = append(toc.Tracks, Track{Number: number, Start: start, Frames: frames})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read TOC: %w", err)
	}

	if len(toc.Tracks) == 0 {
		return nil, fmt.Errorf("no audio tracks in TOC report")
	}
	return &toc, nil
}
