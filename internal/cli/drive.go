package cli

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/spindle-tools/cli/internal/dispatchers"
	"github.com/spindle-tools/cli/internal/rip"
	"github.com/spindle-tools/cli/internal/ui/style"
)

// driveCommand groups the drive inspection commands.
type driveCommand struct {
	deps Deps
}

func (c *driveCommand) Info() dispatchers.Info {
	return dispatchers.Info{
		Summary:     "inspect CD-DA drives",
		Description: "Commands about the drives themselves, disc not required.",
	}
}

func (c *driveCommand) AddFlags(*pflag.FlagSet) {}

func (c *driveCommand) Subcommands() map[string]dispatchers.Factory {
	return map[string]dispatchers.Factory{
		"analyze": func() dispatchers.Command { return &driveAnalyzeCommand{deps: c.deps} },
		"list":    func() dispatchers.Command { return &driveListCommand{deps: c.deps} },
	}
}

// driveListCommand enumerates drives. Finding none is an answer here,
// not an error; only device-requiring commands treat it as fatal.
type driveListCommand struct {
	deps Deps
}

func (c *driveListCommand) Info() dispatchers.Info {
	return dispatchers.Info{
		Summary:     "list discovered CD-DA drives",
		Description: "Lists every discovered drive with its resolved device path.",
	}
}

func (c *driveListCommand) AddFlags(*pflag.FlagSet) {}

func (c *driveListCommand) Run(inv *dispatchers.Invocation) error {
	drives := inv.Drives.List()
	if len(drives) == 0 {
		fmt.Fprintln(inv.Stdout, "no CD-DA drives found")
		return nil
	}

	for _, path := range drives {
		real, err := inv.Drives.Resolve(path)
		if err != nil {
			fmt.Fprintf(inv.Stdout, "%s  %s\n", path, style.Error("(unresolvable)"))
			continue
		}
		if real == path {
			fmt.Fprintln(inv.Stdout, path)
			continue
		}
		fmt.Fprintf(inv.Stdout, "%s  %s\n", path, style.Muted("-> "+real))
	}
	return nil
}

// driveAnalyzeCommand runs cdparanoia's cache analysis against the
// selected drive. The probe output streams through unchanged.
type driveAnalyzeCommand struct {
	deps Deps
}

func (c *driveAnalyzeCommand) Info() dispatchers.Info {
	return dispatchers.Info{
		Summary:        "analyze a drive's cache behavior",
		Description:    "Runs the cdparanoia cache analysis probe against the drive.\nNeeds an audio disc in the tray.",
		RequiresDevice: true,
	}
}

func (c *driveAnalyzeCommand) AddFlags(*pflag.FlagSet) {}

func (c *driveAnalyzeCommand) Run(inv *dispatchers.Invocation) error {
	device := inv.Options.String("device")

	fmt.Fprintf(inv.Stdout, "analyzing %s\n", device)
	if err := c.deps.Runner.Run(rip.AnalyzeCommand(device), inv.Stdout, inv.Stderr); err != nil {
		return fmt.Errorf("analyze %s: %w", device, err)
	}
	return nil
}
