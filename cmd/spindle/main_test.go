package main

import (
	"errors"
	"fmt"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/spindle-tools/cli/internal/usage"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "help sentinel", err: pflag.ErrHelp, want: 0},
		{name: "wrapped help sentinel", err: fmt.Errorf("resolve: %w", pflag.ErrHelp), want: 0},
		{name: "unknown subcommand", err: usage.UnknownSubcommand("spindle", "badgroup"), want: 1},
		{name: "invalid arguments", err: usage.InvalidArguments("spindle cd", errors.New("unknown flag")), want: 2},
		{name: "missing argument", err: usage.MissingArgument("disc-id"), want: 2},
		{name: "no drives", err: usage.NoDrives(), want: 3},
		{name: "device missing", err: usage.DeviceMissing("/dev/sr9"), want: 3},
		{name: "generic error", err: errors.New("boom"), want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, exitCode(tt.err))
		})
	}
}
