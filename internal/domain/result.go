// Package domain holds the types shared between the command layer and
// the result cache, so neither imports the other directly.
package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// RipStatus describes how a rip ended.
type RipStatus int

const (
	// StatusComplete means every track on the disc was ripped.
	StatusComplete RipStatus = iota

	// StatusPartial means some tracks were ripped and the rest were
	// skipped over after read failures (keep-going mode).
	StatusPartial

	// StatusFailed means the rip was abandoned before any track
	// finished, or the first failure aborted the run.
	StatusFailed
)

// String returns the lowercase name stored and displayed for a status.
func (s RipStatus) String() string {
	switch s {
	case StatusComplete:
		return "complete"
	case StatusPartial:
		return "partial"
	case StatusFailed:
		return "failed"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}

// ParseRipStatus converts a stored status name back to a RipStatus.
func ParseRipStatus(s string) (RipStatus, error) {
	switch s {
	case "complete":
		return StatusComplete, nil
	case "partial":
		return StatusPartial, nil
	case "failed":
		return StatusFailed, nil
	}
	return StatusFailed, fmt.Errorf("unknown rip status %q", s)
}

// RipResult is one cached record of a rip run: which disc, on which
// device, with what read offset, and how it ended.
type RipResult struct {
	ID           uuid.UUID
	DiscID       string // CDDB id computed from the TOC, 8 hex digits
	Device       string // resolved device path the disc was read from
	ReadOffset   int    // sample read offset applied during the rip
	TrackCount   int    // tracks on the disc per the TOC
	TracksRipped int    // tracks that finished successfully
	Status       RipStatus
	OutputDir    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
