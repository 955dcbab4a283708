package cli

import (
	"strconv"

	"github.com/spindle-tools/cli/internal/dispatchers"
)

// optInt reads a numeric flag from the shared namespace. The namespace
// stores every non-boolean value as its string rendering; the flag's
// own parsing already rejected non-numeric argv input.
func optInt(opts *dispatchers.Options, name string, fallback int) int {
	raw := opts.String(name)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}
