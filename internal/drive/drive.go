// Package drive discovers CD-DA reading hardware.
package drive

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spindle-tools/cli/internal/dispatchers"
)

// globPatterns match the kernel names of optical drives.
var globPatterns = []string{"sr[0-9]*", "scd[0-9]*"}

// wellKnown are symlink names distributions commonly install.
var wellKnown = []string{"cdrom", "cdrw", "dvd", "cdrecorder"}

// Scanner finds devices under a device directory, /dev by default.
type Scanner struct {
	dir string
}

// NewScanner returns a scanner over /dev.
func NewScanner() *Scanner {
	return &Scanner{dir: "/dev"}
}

// NewScannerAt returns a scanner over an alternate device directory.
func NewScannerAt(dir string) *Scanner {
	return &Scanner{dir: dir}
}

// List returns the device paths found, kernel names first, duplicates
// reached through symlinks collapsed onto the name seen first.
func (s *Scanner) List() []string {
	seen := make(map[string]bool)
	var out []string

	add := func(path string) {
		real, err := filepath.EvalSymlinks(path)
		if err != nil {
			return
		}
		if seen[real] {
			return
		}
		seen[real] = true
		out = append(out, path)
	}

	for _, pattern := range globPatterns {
		matches, _ := filepath.Glob(filepath.Join(s.dir, pattern))
		sort.Strings(matches)
		for _, m := range matches {
			add(m)
		}
	}

	for _, name := range wellKnown {
		add(filepath.Join(s.dir, name))
	}

	return out
}

// Resolve follows symlinks to the real device path and verifies the
// target exists.
func (s *Scanner) Resolve(path string) (string, error) {
	real, err := filepath.EvalSymlinks(path)
	if err != nil {
		return "", fmt.Errorf("resolve device %s: %w", path, err)
	}

	if _, err := os.Stat(real); err != nil {
		return "", fmt.Errorf("stat device %s: %w", real, err)
	}
	return real, nil
}

// Verify Scanner satisfies the resolver's drives contract.
var _ dispatchers.Drives = (*Scanner)(nil)
