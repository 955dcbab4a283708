// Package app wires the collaborators the command tree runs against.
package app

import (
	"io"
	"os"

	"github.com/spindle-tools/cli/internal/cli"
	"github.com/spindle-tools/cli/internal/config"
	"github.com/spindle-tools/cli/internal/dispatchers"
	"github.com/spindle-tools/cli/internal/log"
	"github.com/spindle-tools/cli/internal/paths"
)

// Application bundles everything main needs to resolve and run a
// command chain.
type Application struct {
	Config *config.Store
	Log    *log.Logger
	Deps   cli.Deps
}

// Options configures the factory.
type Options struct {
	// ConfigPath overrides the default config file location.
	ConfigPath string

	// LogWriter overrides where log lines go, stderr by default.
	LogWriter io.Writer
}

// New loads the configuration and builds the production wiring. The
// log level starts from the [spindle] log-level config key; the root
// --log-level flag can still tighten or loosen it per invocation.
func New(opts Options) (*Application, error) {
	path := opts.ConfigPath
	if path == "" {
		path = paths.ConfigFilePath()
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	out := opts.LogWriter
	if out == nil {
		out = os.Stderr
	}

	level := log.LevelWarn
	if raw, ok := cfg.Get("spindle", "log-level"); ok {
		level = log.ParseLevel(raw)
	}
	logger := log.New(out, level)
	log.SetDefault(logger)

	return &Application{
		Config: cfg,
		Log:    logger,
		Deps:   cli.DefaultDeps(),
	}, nil
}

// Resolver builds the dispatcher over the application's collaborators
// and the given drive scanner.
func (a *Application) Resolver(drives dispatchers.Drives, stdout, stderr io.Writer) *dispatchers.Resolver {
	return &dispatchers.Resolver{
		Config: a.Config,
		Drives: drives,
		Log:    a.Log,
		Stdout: stdout,
		Stderr: stderr,
	}
}
