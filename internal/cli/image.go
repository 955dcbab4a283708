package cli

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/spindle-tools/cli/internal/dispatchers"
	"github.com/spindle-tools/cli/internal/image"
	"github.com/spindle-tools/cli/internal/ui/style"
	"github.com/spindle-tools/cli/internal/usage"
)

// imageCommand groups the disc-image commands.
type imageCommand struct {
	deps Deps
}

func (c *imageCommand) Info() dispatchers.Info {
	return dispatchers.Info{
		Summary:     "work with disc images and cue sheets",
		Description: "Commands over disc images on disk instead of physical media.",
	}
}

func (c *imageCommand) AddFlags(*pflag.FlagSet) {}

func (c *imageCommand) Subcommands() map[string]dispatchers.Factory {
	return map[string]dispatchers.Factory{
		"verify": func() dispatchers.Command { return &imageVerifyCommand{deps: c.deps} },
	}
}

// imageVerifyCommand parses cue sheets and checks their file
// references.
type imageVerifyCommand struct {
	deps Deps
}

func (c *imageVerifyCommand) Info() dispatchers.Info {
	return dispatchers.Info{
		Summary:     "check cue sheets and their referenced files",
		Description: "Parses each given cue sheet and verifies that every referenced\naudio file exists.",
		Usage:       "spindle image verify [options] <cuesheet>...",
	}
}

func (c *imageVerifyCommand) AddFlags(*pflag.FlagSet) {}

func (c *imageVerifyCommand) Run(inv *dispatchers.Invocation) error {
	if len(inv.Args) == 0 {
		return usage.MissingArgument("cuesheet")
	}

	failures := 0
	for _, path := range inv.Args {
		sheet, err := image.Verify(path)
		if err != nil {
			failures++
			fmt.Fprintf(inv.Stdout, "%s %v\n", style.Error("bad:"), err)
			continue
		}

		tracks := 0
		for _, file := range sheet.Files {
			tracks += len(file.Tracks)
		}
		fmt.Fprintf(inv.Stdout, "%s  %s (%d files, %d tracks)\n",
			style.Success("ok:"), path, len(sheet.Files), tracks)
	}

	if failures > 0 {
		return fmt.Errorf("%d of %d cue sheets failed verification", failures, len(inv.Args))
	}
	return nil
}
