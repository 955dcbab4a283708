package dispatchers

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"

	"github.com/spindle-tools/cli/internal/usage"
)

const suggestionCount = 3

// Resolver constructs command chains. Resolution is synchronous and
// depth-first: a node parses its slice of argv, then hands the
// remainder to the one child it names.
type Resolver struct {
	Config Config
	Drives Drives
	Log    Logger
	Stdout io.Writer
	Stderr io.Writer
}

// Resolution is one resolved node. A parent holds exactly one child;
// a leaf holds the leftover positional arguments instead.
type Resolution struct {
	Name  string
	Path  string
	cmd   Command
	inv   *Invocation
	child *Resolution
}

// ConfigSection maps a command path to its configuration section name.
func ConfigSection(path string) string {
	return strings.ReplaceAll(path, " ", ".")
}

// Resolve builds the chain rooted at name. The shared namespace opts
// is mutated by every node on the way down. A pflag.ErrHelp return
// means help was printed and the process should finish cleanly.
func (r *Resolver) Resolve(name string, factory Factory, argv []string, parentPath string, opts *Options) (*Resolution, error) {
	cmd := factory()
	info := cmd.Info()

	path := name
	if parentPath != "" {
		path = parentPath + " " + name
	}

	_, isRunner := cmd.(Runner)
	parent, isParent := cmd.(Parent)
	if !isRunner && !isParent {
		return nil, fmt.Errorf("command %q has neither an action nor subcommands", path)
	}

	fs := pflag.NewFlagSet(path, pflag.ContinueOnError)
	// The resolver owns all user-facing text; keep the parser quiet.
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	if isParent {
		// Stop parsing at the first positional so child tokens, a
		// child's -h included, stay in the remainder untouched.
		fs.SetInterspersed(false)
	}

	cmd.AddFlags(fs)
	applyConfigDefaults(r.Config, fs, ConfigSection(path), r.Log)

	// Help and device flags are declared after the config pass on
	// purpose: the config file cannot preset either of them.
	autoHelp := false
	if !info.OwnHelp && fs.Lookup("help") == nil {
		fs.BoolP("help", "h", false, "show this help message and exit")
		autoHelp = true
	}

	if info.RequiresDevice {
		drives := r.Drives.List()
		if len(drives) == 0 {
			r.Log.Critical("%s: no CD-DA drives found", path)
			return nil, usage.NoDrives()
		}
		fs.StringP("device", "d", drives[0], "path to the CD-DA device")
	}

	if err := fs.Parse(argv); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			r.printHelp(cmd, path, fs)
			return nil, pflag.ErrHelp
		}
		return nil, usage.InvalidArguments(path, err)
	}

	if autoHelp {
		if v, _ := fs.GetBool("help"); v {
			r.printHelp(cmd, path, fs)
			return nil, pflag.ErrHelp
		}
	}

	mergeOptions(opts, fs, autoHelp)

	inv := &Invocation{
		Path:    path,
		Args:    fs.Args(),
		Options: opts,
		Config:  r.Config,
		Drives:  r.Drives,
		Log:     r.Log,
		Stdout:  r.Stdout,
		Stderr:  r.Stderr,
	}
	inv.Usage = func() { r.printHelp(cmd, path, fs) }

	if info.RequiresDevice {
		device := opts.String("device")
		resolved, err := r.Drives.Resolve(device)
		if err != nil {
			r.Log.Critical("%s: device %s not found", path, device)
			return nil, usage.DeviceMissing(device)
		}
		opts.Set("device", resolved)
	}

	if h, ok := cmd.(ArgHandler); ok {
		if err := h.HandleArgs(inv); err != nil {
			return nil, err
		}
	}

	res := &Resolution{Name: name, Path: path, cmd: cmd, inv: inv}

	if isParent {
		remainder := fs.Args()
		if len(remainder) == 0 {
			inv.Usage()
			return nil, pflag.ErrHelp
		}

		childName := remainder[0]
		subs := parent.Subcommands()
		childFactory, ok := subs[childName]
		if !ok {
			r.Log.Critical("%s: unknown subcommand '%s'", path, childName)
			suggestions := findSimilar(childName, subs, suggestionCount)
			return nil, usage.UnknownSubcommand(path, childName, suggestions...)
		}

		child, err := r.Resolve(childName, childFactory, remainder[1:], path, opts)
		if err != nil {
			return nil, err
		}
		res.child = child
		inv.Args = nil
	}

	return res, nil
}

// Run executes the deepest resolved command in the chain.
func (res *Resolution) Run() error {
	if res.child != nil {
		return res.child.Run()
	}
	// Construction guarantees a childless resolution is a Runner.
	return res.cmd.(Runner).Run(res.inv)
}

// Leaf returns the deepest resolution in the chain.
func (res *Resolution) Leaf() *Resolution {
	for res.child != nil {
		res = res.child
	}
	return res
}

// Child returns the resolved child, nil for leaves.
func (res *Resolution) Child() *Resolution {
	return res.child
}

// Options exposes the shared namespace.
func (res *Resolution) Options() *Options {
	return res.inv.Options
}
