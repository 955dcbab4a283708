package cli

import (
	"bytes"
	"fmt"

	"github.com/spf13/pflag"

	"github.com/spindle-tools/cli/internal/dispatchers"
	"github.com/spindle-tools/cli/internal/format"
	"github.com/spindle-tools/cli/internal/rip"
	"github.com/spindle-tools/cli/internal/ui/style"
)

// cdCommand groups the disc-reading commands. It requires a device, so
// the resolver validates -d/--device here once; info and rip inherit
// the resolved path through the shared namespace.
type cdCommand struct {
	deps Deps
}

func (c *cdCommand) Info() dispatchers.Info {
	return dispatchers.Info{
		Summary:        "read and rip the disc in a drive",
		Description:    "Commands that read the audio disc in a CD-DA drive.",
		RequiresDevice: true,
	}
}

func (c *cdCommand) AddFlags(*pflag.FlagSet) {}

func (c *cdCommand) Subcommands() map[string]dispatchers.Factory {
	return map[string]dispatchers.Factory{
		"info": func() dispatchers.Command { return &cdInfoCommand{deps: c.deps} },
		"rip":  func() dispatchers.Command { return &cdRipCommand{deps: c.deps} },
	}
}

// cdInfoCommand prints the table of contents and the disc id.
type cdInfoCommand struct {
	deps Deps
}

func (c *cdInfoCommand) Info() dispatchers.Info {
	return dispatchers.Info{
		Summary:     "show the disc's table of contents",
		Description: "Reads the table of contents and prints every audio track with\nits length and position, plus the disc id.",
	}
}

func (c *cdInfoCommand) AddFlags(*pflag.FlagSet) {}

func (c *cdInfoCommand) Run(inv *dispatchers.Invocation) error {
	device := inv.Options.String("device")

	toc, err := queryTOC(c.deps.Runner, device)
	if err != nil {
		return err
	}

	fmt.Fprintf(inv.Stdout, "%s  %d tracks, %s\n",
		style.Header("disc "+rip.DiscID(toc)),
		len(toc.Tracks),
		format.MSF(toc.TotalFrames()),
	)
	fmt.Fprintln(inv.Stdout, style.Muted("track     length      begin"))
	for _, track := range toc.Tracks {
		fmt.Fprintf(inv.Stdout, "%5d   %s   %s\n",
			track.Number, format.MSF(track.Frames), format.MSF(track.Start))
	}
	return nil
}

// queryTOC runs the TOC query and parses the report, which cdparanoia
// writes to stderr.
func queryTOC(runner rip.Runner, device string) (*rip.TOC, error) {
	_, stderr, err := runner.Output(rip.QueryCommand(device))
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", device, err)
	}

	toc, err := rip.ParseTOC(bytes.NewReader(stderr))
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", device, err)
	}
	return toc, nil
}
