package dispatchers

import (
	"io"

	"github.com/spf13/pflag"
)

// Factory constructs a fresh command instance. Child tables map
// subcommand names to factories, so a subtree is only built when argv
// actually reaches it.
type Factory func() Command

// Command is the static self-description every node provides. Whether
// a node executes or delegates is decided by the facet types below,
// not by runtime probing of optional attributes.
type Command interface {
	Info() Info
	AddFlags(fs *pflag.FlagSet)
}

// Runner is a command that executes directly.
type Runner interface {
	Command
	Run(inv *Invocation) error
}

// Parent is a command that delegates the remainder of argv to one of
// its children.
type Parent interface {
	Command
	Subcommands() map[string]Factory
}

// ArgHandler is an optional post-parse hook for cross-flag checks. It
// runs after defaults, parsing and device resolution, before any child
// is constructed.
type ArgHandler interface {
	HandleArgs(inv *Invocation) error
}

// Info describes a command for resolution and help composition.
type Info struct {
	Summary     string
	Description string

	// Usage overrides the generated usage line when set.
	Usage string

	// RequiresDevice makes the resolver discover CD-DA drives and
	// declare -d/--device with the first one as default.
	RequiresDevice bool

	// OwnHelp suppresses the implicit -h/--help flag; the command
	// declares and serves its own.
	OwnHelp bool
}

// Invocation is what a resolved command runs with.
type Invocation struct {
	Path    string   // space-joined command path, "spindle cd rip"
	Args    []string // positionals left over after flag parsing
	Options *Options

	Config Config
	Drives Drives
	Log    Logger
	Stdout io.Writer
	Stderr io.Writer

	// Usage prints this node's composed help to the resolver's stdout.
	Usage func()
}
