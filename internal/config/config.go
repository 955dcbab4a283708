// Package config reads and writes the spindle configuration file.
//
// The file is INI; sections are dotted command paths, so the defaults
// for "spindle cd rip" live under [spindle.cd.rip]. Keys are flag
// names as declared, dashes included.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/ini.v1"

	"github.com/spindle-tools/cli/internal/dispatchers"
	"github.com/spindle-tools/cli/internal/log"
)

// Store is the sectioned configuration store backing flag defaults.
type Store struct {
	path string
	file *ini.File
}

// Load reads the configuration at path. A missing file yields an
// empty store; a malformed one is an error.
func Load(path string) (*Store, error) {
	file, err := ini.LooseLoad(path)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	return &Store{path: path, file: file}, nil
}

// Empty returns a store with no values and nowhere to save to.
func Empty() *Store {
	return &Store{file: ini.Empty()}
}

// Path returns the file the store was loaded from.
func (s *Store) Path() string {
	return s.path
}

// Get returns the raw string value for key in section.
func (s *Store) Get(section, key string) (string, bool) {
	sec, err := s.file.GetSection(section)
	if err != nil {
		return "", false
	}
	if !sec.HasKey(key) {
		return "", false
	}
	return sec.Key(key).String(), true
}

// GetBool returns the boolean value for key in section. The accepted
// spellings are fixed: 1, true, yes, on, t, y and their negations,
// case insensitive. Anything else logs a warning and reads as absent.
func (s *Store) GetBool(section, key string) (bool, bool) {
	raw, ok := s.Get(section, key)
	if !ok {
		return false, false
	}

	v, err := parseBool(raw)
	if err != nil {
		log.Warn("config: %s.%s: %v", section, key, err)
		return false, false
	}
	return v, true
}

// Set stores a value for key in section, creating the section when
// needed. The change is in memory until Save.
func (s *Store) Set(section, key, value string) {
	s.file.Section(section).Key(key).SetValue(value)
}

// Save writes the store back to its file atomically: the content goes
// to a temp file in the same directory, then renames over the target.
func (s *Store) Save() error {
	if s.path == "" {
		return fmt.Errorf("config: no file to save to")
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".spindle.conf.*")
	if err != nil {
		return fmt.Errorf("create temp config: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := tmp.Chmod(0600); err != nil {
		tmp.Close()
		return fmt.Errorf("chmod temp config: %w", err)
	}

	if _, err := s.file.WriteTo(tmp); err != nil {
		tmp.Close()
		return fmt.Errorf("write config: %w", err)
	}

	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync config: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp config: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace config: %w", err)
	}
	return nil
}

func parseBool(raw string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "yes", "on", "t", "y":
		return true, nil
	case "0", "false", "no", "off", "f", "n":
		return false, nil
	}
	return false, fmt.Errorf("not a boolean: %q", raw)
}

// Verify Store satisfies the resolver's config contract.
var _ dispatchers.Config = (*Store)(nil)
