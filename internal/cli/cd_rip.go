package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/pflag"

	"github.com/spindle-tools/cli/internal/dispatchers"
	"github.com/spindle-tools/cli/internal/domain"
	"github.com/spindle-tools/cli/internal/rip"
	"github.com/spindle-tools/cli/internal/ui/style"
)

// cdRipCommand rips every track to WAV files and records the outcome
// in the result cache.
type cdRipCommand struct {
	deps Deps
}

func (c *cdRipCommand) Info() dispatchers.Info {
	return dispatchers.Info{
		Summary: "rip all tracks to WAV files",
		Description: "Rips every audio track on the disc to a WAV file and records\n" +
			"the outcome in the rip-result cache. Filenames come from the\n" +
			"track template: %n is the track number, %t the track count,\n" +
			"%d the disc id.",
	}
}

func (c *cdRipCommand) AddFlags(fs *pflag.FlagSet) {
	fs.IntP("offset", "o", 0, "sample read offset to apply")
	fs.StringP("output-directory", "O", ".", "directory the WAV files are written to")
	fs.String("track-template", rip.DefaultTemplate, "filename template for ripped tracks")
	fs.Int("max-retries", 2, "how often to retry a failing track")
	fs.BoolP("keep-going", "k", false, "skip failing tracks instead of aborting")
}

func (c *cdRipCommand) HandleArgs(inv *dispatchers.Invocation) error {
	if optInt(inv.Options, "max-retries", 0) < 0 {
		return fmt.Errorf("--max-retries must not be negative")
	}
	return nil
}

func (c *cdRipCommand) Run(inv *dispatchers.Invocation) error {
	opts := inv.Options
	device := opts.String("device")
	offset := optInt(opts, "offset", 0)
	outputDir := opts.String("output-directory")
	template := opts.String("track-template")
	maxRetries := optInt(opts, "max-retries", 2)
	keepGoing := opts.Bool("keep-going")

	toc, err := queryTOC(c.deps.Runner, device)
	if err != nil {
		return err
	}
	discID := rip.DiscID(toc)

	if outputDir == "" {
		outputDir = "."
	}
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	fmt.Fprintf(inv.Stdout, "ripping disc %s (%d tracks) from %s\n", discID, len(toc.Tracks), device)

	ripped := 0
	aborted := false
	for _, track := range toc.Tracks {
		name := rip.Filename(template, track.Number, len(toc.Tracks), discID)
		path := filepath.Join(outputDir, name)

		if err := c.ripTrack(inv, device, track.Number, offset, path, maxRetries); err != nil {
			inv.Log.Warn("rip: track %d: %v", track.Number, err)
			fmt.Fprintf(inv.Stdout, "  %s %s\n", style.Error("failed"), name)
			if !keepGoing {
				aborted = true
				break
			}
			continue
		}

		ripped++
		fmt.Fprintf(inv.Stdout, "  %s %s\n", style.Success("ripped"), name)
	}

	status := ripStatus(ripped, len(toc.Tracks), aborted)
	c.recordResult(inv, domain.RipResult{
		ID:           uuid.New(),
		DiscID:       discID,
		Device:       device,
		ReadOffset:   offset,
		TrackCount:   len(toc.Tracks),
		TracksRipped: ripped,
		Status:       status,
		OutputDir:    outputDir,
		CreatedAt:    time.Now().UTC(),
	})

	c.maybeEject(inv, device, status != domain.StatusFailed)

	switch status {
	case domain.StatusComplete:
		fmt.Fprintln(inv.Stdout, style.Success(fmt.Sprintf("done: %d/%d tracks", ripped, len(toc.Tracks))))
		return nil
	case domain.StatusPartial:
		fmt.Fprintln(inv.Stdout, style.Warning(fmt.Sprintf("partial: %d/%d tracks", ripped, len(toc.Tracks))))
		return nil
	default:
		return fmt.Errorf("rip of disc %s failed", discID)
	}
}

// ripTrack rips one track, retrying on failure. A stale partial file
// from a failed attempt is removed before each retry.
func (c *cdRipCommand) ripTrack(inv *dispatchers.Invocation, device string, track, offset int, path string, maxRetries int) error {
	var err error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			inv.Log.Debug("rip: track %d attempt %d", track, attempt+1)
			_ = os.Remove(path)
		}

		err = c.deps.Runner.Run(rip.RipCommand(device, track, offset, path), io.Discard, io.Discard)
		if err == nil {
			return nil
		}
	}
	return err
}

// ripStatus classifies a finished run.
func ripStatus(ripped, total int, aborted bool) domain.RipStatus {
	switch {
	case ripped == total:
		return domain.StatusComplete
	case ripped == 0 || aborted:
		return domain.StatusFailed
	default:
		return domain.StatusPartial
	}
}

// recordResult writes the outcome to the cache. Cache trouble must not
// turn a finished rip into a failure, so errors are only logged.
func (c *cdRipCommand) recordResult(inv *dispatchers.Invocation, result domain.RipResult) {
	results, err := c.deps.OpenResults()
	if err != nil {
		inv.Log.Warn("cache: %v", err)
		return
	}
	defer results.Close()

	if err := results.Insert(result); err != nil {
		inv.Log.Warn("cache: %v", err)
	}
}

// maybeEject applies the root --eject policy, which reaches this node
// through the shared namespace.
func (c *cdRipCommand) maybeEject(inv *dispatchers.Invocation, device string, ok bool) {
	policy := inv.Options.String("eject")
	eject := policy == "always" ||
		(ok && policy == "success") ||
		(!ok && policy == "failure")
	if !eject {
		return
	}

	if err := c.deps.Runner.Run(rip.EjectCommand(device), io.Discard, io.Discard); err != nil {
		inv.Log.Warn("eject: %v", err)
	}
}
