package usage

import (
	"fmt"
	"strings"
)

// UnknownSubcommand is returned when a parent command is asked for a
// child it does not have. Optional suggestions are nearby names.
func UnknownSubcommand(path, name string, suggestions ...string) *Error {
	var b strings.Builder
	fmt.Fprintf(&b, "spindle: '%s' is not a '%s' command. See '%s --help'.", name, path, path)

	if len(suggestions) > 0 {
		b.WriteString("\n\nDid you mean:\n")
		for _, s := range suggestions {
			fmt.Fprintf(&b, "\t%s\n", s)
		}
	}

	return &Error{
		Kind:    ErrUnknownSubcommand,
		Message: strings.TrimRight(b.String(), "\n"),
	}
}
