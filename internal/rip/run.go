package rip

import (
	"bytes"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/spindle-tools/cli/internal/log"
)

// Runner executes external commands. The exec-backed implementation is
// ExecRunner; tests substitute a fake.
type Runner interface {
	// Output runs argv to completion and returns captured stdout and
	// stderr. cdparanoia reports tables and progress on stderr, so
	// both streams matter.
	Output(argv []string) (stdout, stderr []byte, err error)

	// Run runs argv with its output streamed to the given writers.
	Run(argv []string, stdout, stderr io.Writer) error
}

// ExecRunner runs commands through os/exec.
type ExecRunner struct{}

// Output implements Runner.
func (ExecRunner) Output(argv []string) ([]byte, []byte, error) {
	cmd, err := buildCmd(argv)
	if err != nil {
		return nil, nil, err
	}

	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf

	log.Debug("rip: running %s", strings.Join(argv, " "))
	if err := cmd.Run(); err != nil {
		return outBuf.Bytes(), errBuf.Bytes(), fmt.Errorf("%s: %w", argv[0], err)
	}
	return outBuf.Bytes(), errBuf.Bytes(), nil
}

// Run implements Runner.
func (ExecRunner) Run(argv []string, stdout, stderr io.Writer) error {
	cmd, err := buildCmd(argv)
	if err != nil {
		return err
	}
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	log.Debug("rip: running %s", strings.Join(argv, " "))
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s: %w", argv[0], err)
	}
	return nil
}

func buildCmd(argv []string) (*exec.Cmd, error) {
	if len(argv) == 0 {
		return nil, fmt.Errorf("empty command")
	}

	path, err := exec.LookPath(argv[0])
	if err != nil {
		return nil, fmt.Errorf("%s not found in PATH", argv[0])
	}
	return exec.Command(path, argv[1:]...), nil
}
