package cli

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/spindle-tools/cli/internal/dispatchers"
	"github.com/spindle-tools/cli/internal/log"
	"github.com/spindle-tools/cli/internal/usage"
)

// Version is the release version stamped into --version output.
const Version = "0.4.0"

// ejectPolicies are the accepted --eject spellings.
var ejectPolicies = map[string]bool{
	"never":   true,
	"failure": true,
	"success": true,
	"always":  true,
}

// Root returns the factory for the spindle root command.
func Root(deps Deps) dispatchers.Factory {
	return func() dispatchers.Command { return &rootCommand{deps: deps} }
}

// rootCommand is the top of the tree. It owns its help flag so that
// --version can share the same short-circuit path.
type rootCommand struct {
	deps Deps
}

func (c *rootCommand) Info() dispatchers.Info {
	return dispatchers.Info{
		Summary:     "rip and inspect audio CDs",
		Description: "spindle reads audio CDs with cdparanoia, keeps a cache of rip\nresults, and helps with drive offsets and cue sheets.",
		Usage:       "spindle [options] <command> [...]",
		OwnHelp:     true,
	}
}

func (c *rootCommand) AddFlags(fs *pflag.FlagSet) {
	fs.BoolP("help", "h", false, "show this help message and exit")
	fs.BoolP("version", "v", false, "print the version and exit")
	fs.StringP("eject", "e", "never", "eject the disc after ripping: never, failure, success or always")
	fs.String("log-level", "", "minimum log level: debug, info, warn, error or critical")
}

func (c *rootCommand) HandleArgs(inv *dispatchers.Invocation) error {
	if inv.Options.Bool("help") {
		inv.Usage()
		return pflag.ErrHelp
	}
	if inv.Options.Bool("version") {
		fmt.Fprintf(inv.Stdout, "spindle %s\n", Version)
		// Version short-circuits exactly like help: printed, exit 0.
		return pflag.ErrHelp
	}

	if level := inv.Options.String("log-level"); level != "" {
		log.SetLevel(log.ParseLevel(level))
	}

	if policy := inv.Options.String("eject"); !ejectPolicies[policy] {
		return usage.InvalidChoice("eject", policy, "never, failure, success, always")
	}
	return nil
}

func (c *rootCommand) Subcommands() map[string]dispatchers.Factory {
	return map[string]dispatchers.Factory{
		"cache":  func() dispatchers.Command { return &cacheCommand{deps: c.deps} },
		"cd":     func() dispatchers.Command { return &cdCommand{deps: c.deps} },
		"drive":  func() dispatchers.Command { return &driveCommand{deps: c.deps} },
		"image":  func() dispatchers.Command { return &imageCommand{deps: c.deps} },
		"offset": func() dispatchers.Command { return &offsetCommand{deps: c.deps} },
	}
}
