package dispatchers

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/pflag"

	"github.com/spindle-tools/cli/internal/ui/style"
)

// printHelp writes the composed help for one node: usage line,
// description, the parser's own flag rendering, and for parents the
// child-command epilog.
func (r *Resolver) printHelp(cmd Command, path string, fs *pflag.FlagSet) {
	info := cmd.Info()

	usageLine := info.Usage
	if usageLine == "" {
		usageLine = path + " [options]"
		if _, ok := cmd.(Parent); ok {
			usageLine += " <command> [...]"
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "usage: %s\n", usageLine)

	if info.Description != "" {
		b.WriteString("\n")
		b.WriteString(strings.TrimRight(info.Description, "\n"))
		b.WriteString("\n")
	}

	if flagUsage := fs.FlagUsages(); flagUsage != "" {
		b.WriteString("\noptions:\n")
		b.WriteString(flagUsage)
	}

	if parent, ok := cmd.(Parent); ok {
		b.WriteString("\n")
		b.WriteString(Epilog(parent.Subcommands()))
	}

	fmt.Fprint(r.Stdout, b.String())
}

// Epilog renders the child listing appended to a parent's help: names
// sorted lexicographically, padded to a shared column of at least
// eight characters, each with the one-line summary the child declares
// for itself.
func Epilog(subs map[string]Factory) string {
	names := make([]string, 0, len(subs))
	for name := range subs {
		names = append(names, name)
	}
	sort.Strings(names)

	width := 8
	for _, name := range names {
		if len(name) > width {
			width = len(name)
		}
	}

	var b strings.Builder
	b.WriteString("commands:\n")
	for _, name := range names {
		summary := subs[name]().Info().Summary
		fmt.Fprintf(&b, "  %s  %s\n", style.Info(fmt.Sprintf("%-*s", width, name)), summary)
	}
	return b.String()
}
