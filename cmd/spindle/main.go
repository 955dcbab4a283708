package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/spindle-tools/cli/internal/app"
	"github.com/spindle-tools/cli/internal/cli"
	"github.com/spindle-tools/cli/internal/dispatchers"
	"github.com/spindle-tools/cli/internal/drive"
	"github.com/spindle-tools/cli/internal/ui/style"
	"github.com/spindle-tools/cli/internal/usage"
)

func main() {
	style.Init(term.IsTerminal(int(os.Stdout.Fd())))
	os.Exit(run(os.Args[1:]))
}

func run(argv []string) int {
	application, err := app.New(app.Options{})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	resolver := application.Resolver(drive.NewScanner(), os.Stdout, os.Stderr)

	res, err := resolver.Resolve("spindle", cli.Root(application.Deps), argv, "", dispatchers.NewOptions())
	if err != nil {
		return exitCode(err)
	}

	if err := res.Run(); err != nil {
		return exitCode(err)
	}
	return 0
}

// exitCode maps a resolution or run error to the process exit status.
// Help short-circuits are a clean exit; usage errors carry their own
// code; anything else is a generic failure.
func exitCode(err error) int {
	if errors.Is(err, pflag.ErrHelp) {
		return 0
	}

	var ue *usage.Error
	if errors.As(err, &ue) {
		fmt.Fprintln(os.Stderr, ue.Error())
		return ue.GetExitCode()
	}

	fmt.Fprintln(os.Stderr, "spindle: "+err.Error())
	return 1
}
