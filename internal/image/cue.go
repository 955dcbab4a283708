// Package image reads cue sheets and checks that the files they
// reference exist on disk.
package image

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Index is one INDEX entry of a track, positioned in frames from the
// start of the referenced file.
type Index struct {
	Number int
	Frame  int
}

// CueTrack is one TRACK block.
type CueTrack struct {
	Number  int
	Mode    string // "AUDIO", "MODE1/2352", ...
	Indexes []Index
}

// CueFile is one FILE block with its tracks.
type CueFile struct {
	Name   string
	Type   string // "WAVE", "BINARY", ...
	Tracks []CueTrack
}

// Sheet is a parsed cue sheet.
type Sheet struct {
	Files []CueFile
}

// Parse reads a cue sheet. Lines it does not understand (REM, TITLE,
// PERFORMER and the rest of the metadata vocabulary) are skipped;
// malformed FILE, TRACK and INDEX lines are errors.
func Parse(r io.Reader) (*Sheet, error) {
	var sheet Sheet

	lineNo := 0
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineNo++
		fields := splitFields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch strings.ToUpper(fields[0]) {
		case "FILE":
			if len(fields) != 3 {
				return nil, fmt.Errorf("line %d: FILE needs a name and a type", lineNo)
			}
			sheet.Files = append(sheet.Files, CueFile{Name: fields[1], Type: fields[2]})

		case "TRACK":
			if len(sheet.Files) == 0 {
				return nil, fmt.Errorf("line %d: TRACK before any FILE", lineNo)
			}
			if len(fields) != 3 {
				return nil, fmt.Errorf("line %d: TRACK needs a number and a mode", lineNo)
			}
			number, err := strconv.Atoi(fields[1])
			if err != nil {
				return nil, fmt.Errorf("line %d: track number %q: %w", lineNo, fields[1], err)
			}
			file := &sheet.Files[len(sheet.Files)-1]
			file.Tracks = append(file.Tracks, CueTrack{Number: number, Mode: fields[2]})

		case "INDEX":
			file := currentFile(&sheet)
			if file == nil || len(file.Tracks) == 0 {
				return nil, fmt.Errorf("line %d: INDEX before any TRACK", lineNo)
			}
			if len(fields) != 3 {
				return nil, fmt.Errorf("line %d: INDEX needs a number and a position", lineNo)
			}
			number, err := strconv.Atoi(fields[1])
			if err != nil {
				return nil, fmt.Errorf("line %d: index number %q: %w", lineNo, fields[1], err)
			}
			frame, err := parseMSF(fields[2])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			track := &file.Tracks[len(file.Tracks)-1]
			track.Indexes = append(track.Indexes, Index{Number: number, Frame: frame})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read cue sheet: %w", err)
	}

	if len(sheet.Files) == 0 {
		return nil, fmt.Errorf("no FILE entries")
	}
	return &sheet, nil
}

func currentFile(sheet *Sheet) *CueFile {
	if len(sheet.Files) == 0 {
		return nil
	}
	return &sheet.Files[len(sheet.Files)-1]
}

// Verify parses the cue sheet at path and confirms every referenced
// file exists. Relative references resolve against the sheet's own
// directory, the way burners interpret them.
func Verify(path string) (*Sheet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open cue sheet: %w", err)
	}
	defer f.Close()

	sheet, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	dir := filepath.Dir(path)
	for _, file := range sheet.Files {
		ref := file.Name
		if !filepath.IsAbs(ref) {
			ref = filepath.Join(dir, ref)
		}
		if _, err := os.Stat(ref); err != nil {
			return nil, fmt.Errorf("%s: referenced file %s: %w", path, file.Name, err)
		}
	}
	return sheet, nil
}

// parseMSF converts a "mm:ss:ff" position to frames.
func parseMSF(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return 0, fmt.Errorf("position %q is not mm:ss:ff", s)
	}

	var v [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return 0, fmt.Errorf("position %q is not mm:ss:ff", s)
		}
		v[i] = n
	}
	if v[1] > 59 || v[2] > 74 {
		return 0, fmt.Errorf("position %q out of range", s)
	}

	return (v[0]*60+v[1])*75 + v[2], nil
}

// splitFields tokenizes a cue line, honoring double quotes around a
// single field (filenames with spaces).
func splitFields(line string) []string {
	var fields []string
	var b strings.Builder
	inQuote := false

	flush := func() {
		if b.Len() > 0 {
			fields = append(fields, b.String())
			b.Reset()
		}
	}

	for _, ch := range line {
		switch {
		case ch == '"':
			if inQuote {
				fields = append(fields, b.String())
				b.Reset()
			} else {
				flush()
			}
			inQuote = !inQuote
		case !inQuote && (ch == ' ' || ch == '\t'):
			flush()
		default:
			b.WriteRune(ch)
		}
	}
	flush()
	return fields
}
