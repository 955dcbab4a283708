// Package cli defines the spindle command tree. Each command is a
// dispatchers.Command; the resolver handles flags, config defaults,
// device validation and delegation, so the types here only declare
// their schema and run.
package cli

import (
	"github.com/spindle-tools/cli/internal/domain"
	"github.com/spindle-tools/cli/internal/paths"
	"github.com/spindle-tools/cli/internal/rip"
	"github.com/spindle-tools/cli/internal/store"
	"github.com/spindle-tools/cli/internal/ui"
)

// Deps are the collaborators commands need beyond what the resolver
// hands every node. Tests substitute fakes.
type Deps struct {
	// Runner executes external commands (cdparanoia, eject).
	Runner rip.Runner

	// OpenResults opens the rip-result cache.
	OpenResults func() (domain.ResultStore, error)

	// Browse opens the interactive cache browser.
	Browse func(results []domain.RipResult) error
}

// DefaultDeps wires the production collaborators.
func DefaultDeps() Deps {
	return Deps{
		Runner: rip.ExecRunner{},
		OpenResults: func() (domain.ResultStore, error) {
			return store.New(paths.ResultsDBPath())
		},
		Browse: ui.Browse,
	}
}
