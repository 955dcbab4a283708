// Package format renders times and CD-DA frame counts for display.
package format

import (
	"fmt"
	"time"
)

// FramesPerSecond is the CD-DA sector rate: 75 frames per second.
const FramesPerSecond = 75

// MSF renders a frame count as minutes:seconds.frames, the notation
// cdparanoia uses ("03:36.65").
func MSF(frames int) string {
	neg := ""
	if frames < 0 {
		neg = "-"
		frames = -frames
	}

	seconds := frames / FramesPerSecond
	remainder := frames % FramesPerSecond
	return fmt.Sprintf("%s%02d:%02d.%02d", neg, seconds/60, seconds%60, remainder)
}

// FramesDuration converts a frame count to a time.Duration.
func FramesDuration(frames int) time.Duration {
	return time.Duration(frames) * time.Second / FramesPerSecond
}

// Timestamp renders a time for table output, in the local zone.
func Timestamp(t time.Time) string {
	return t.Local().Format("2006-01-02 15:04")
}
