package cli

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/spindle-tools/cli/internal/dispatchers"
	"github.com/spindle-tools/cli/internal/domain"
	"github.com/spindle-tools/cli/internal/format"
	"github.com/spindle-tools/cli/internal/ui/style"
	"github.com/spindle-tools/cli/internal/usage"
)

// cacheCommand groups access to the rip-result cache.
type cacheCommand struct {
	deps Deps
}

func (c *cacheCommand) Info() dispatchers.Info {
	return dispatchers.Info{
		Summary:     "inspect cached rip results",
		Description: "The cache records one entry per rip run: disc, device, offset\nand outcome.",
	}
}

func (c *cacheCommand) AddFlags(*pflag.FlagSet) {}

func (c *cacheCommand) Subcommands() map[string]dispatchers.Factory {
	return map[string]dispatchers.Factory{
		"browse": func() dispatchers.Command { return &cacheBrowseCommand{deps: c.deps} },
		"dump":   func() dispatchers.Command { return &cacheDumpCommand{deps: c.deps} },
		"list":   func() dispatchers.Command { return &cacheListCommand{deps: c.deps} },
	}
}

// cacheListCommand prints a table of cached results.
type cacheListCommand struct {
	deps Deps

	filter domain.ResultFilter
}

func (c *cacheListCommand) Info() dispatchers.Info {
	return dispatchers.Info{
		Summary:     "list cached rip results",
		Description: "Prints the cached rip results, newest first.",
	}
}

func (c *cacheListCommand) AddFlags(fs *pflag.FlagSet) {
	fs.IntP("limit", "n", 20, "maximum number of results to list, 0 for all")
	fs.String("status", "", "only results with this status: complete, partial or failed")
	fs.String("disc", "", "only results for this disc id")
}

func (c *cacheListCommand) HandleArgs(inv *dispatchers.Invocation) error {
	c.filter = domain.ResultFilter{
		DiscID: inv.Options.String("disc"),
		Limit:  optInt(inv.Options, "limit", 20),
	}

	if raw := inv.Options.String("status"); raw != "" {
		status, err := domain.ParseRipStatus(raw)
		if err != nil {
			return usage.InvalidChoice("status", raw, "complete, partial, failed")
		}
		c.filter.Status = status
		c.filter.HasStatus = true
	}
	return nil
}

func (c *cacheListCommand) Run(inv *dispatchers.Invocation) error {
	results, err := c.openAndList(c.filter)
	if err != nil {
		return err
	}

	if len(results) == 0 {
		fmt.Fprintln(inv.Stdout, "cache is empty")
		return nil
	}

	fmt.Fprintln(inv.Stdout, style.Muted("disc       status     tracks  device        when"))
	for _, r := range results {
		fmt.Fprintf(inv.Stdout, "%-10s %s %3d/%-3d  %-12s  %s\n",
			r.DiscID,
			statusCell(r.Status),
			r.TracksRipped,
			r.TrackCount,
			r.Device,
			format.Timestamp(r.CreatedAt),
		)
	}
	return nil
}

func (c *cacheListCommand) openAndList(filter domain.ResultFilter) ([]domain.RipResult, error) {
	results, err := c.deps.OpenResults()
	if err != nil {
		return nil, fmt.Errorf("open cache: %w", err)
	}
	defer results.Close()

	return results.List(filter)
}

// statusCell pads then styles, keeping the table columns straight.
func statusCell(s domain.RipStatus) string {
	cell := fmt.Sprintf("%-9s", s)
	switch s {
	case domain.StatusComplete:
		return style.Success(cell)
	case domain.StatusPartial:
		return style.Warning(cell)
	default:
		return style.Error(cell)
	}
}

// cacheDumpCommand prints the full latest record for one disc.
type cacheDumpCommand struct {
	deps Deps
}

func (c *cacheDumpCommand) Info() dispatchers.Info {
	return dispatchers.Info{
		Summary:     "show the full cached record for a disc",
		Description: "Prints the most recent cached rip result for the given disc id.",
		Usage:       "spindle cache dump [options] <disc-id>",
	}
}

func (c *cacheDumpCommand) AddFlags(*pflag.FlagSet) {}

func (c *cacheDumpCommand) Run(inv *dispatchers.Invocation) error {
	if len(inv.Args) == 0 {
		return usage.MissingArgument("disc-id")
	}
	discID := inv.Args[0]

	results, err := c.deps.OpenResults()
	if err != nil {
		return fmt.Errorf("open cache: %w", err)
	}
	defer results.Close()

	record, ok, err := results.Latest(discID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("no cached result for disc %s", discID)
	}

	fmt.Fprintf(inv.Stdout, "id:            %s\n", record.ID)
	fmt.Fprintf(inv.Stdout, "disc:          %s\n", record.DiscID)
	fmt.Fprintf(inv.Stdout, "device:        %s\n", record.Device)
	fmt.Fprintf(inv.Stdout, "read offset:   %d\n", record.ReadOffset)
	fmt.Fprintf(inv.Stdout, "tracks:        %d/%d\n", record.TracksRipped, record.TrackCount)
	fmt.Fprintf(inv.Stdout, "status:        %s\n", record.Status)
	fmt.Fprintf(inv.Stdout, "output:        %s\n", record.OutputDir)
	fmt.Fprintf(inv.Stdout, "created:       %s\n", format.Timestamp(record.CreatedAt))
	fmt.Fprintf(inv.Stdout, "updated:       %s\n", format.Timestamp(record.UpdatedAt))
	return nil
}

// cacheBrowseCommand opens the interactive browser.
type cacheBrowseCommand struct {
	deps Deps
}

func (c *cacheBrowseCommand) Info() dispatchers.Info {
	return dispatchers.Info{
		Summary:     "browse cached results interactively",
		Description: "Opens a full-screen browser over the rip-result cache.",
	}
}

func (c *cacheBrowseCommand) AddFlags(*pflag.FlagSet) {}

func (c *cacheBrowseCommand) Run(inv *dispatchers.Invocation) error {
	results, err := c.deps.OpenResults()
	if err != nil {
		return fmt.Errorf("open cache: %w", err)
	}
	defer results.Close()

	records, err := results.List(domain.ResultFilter{})
	if err != nil {
		return err
	}
	return c.deps.Browse(records)
}
