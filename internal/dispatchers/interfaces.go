package dispatchers

// Config supplies flag defaults from a sectioned configuration store.
// Sections are dotted command paths ("spindle.cd.rip"). String and
// boolean lookups are separate on purpose: a boolean default comes
// from a boolean read, never from truthiness of a string value.
type Config interface {
	Get(section, key string) (string, bool)
	GetBool(section, key string) (bool, bool)
}

// Drives enumerates and validates CD-DA device paths.
type Drives interface {
	// List returns the discovered device paths, first one preferred.
	List() []string

	// Resolve follows symlinks to the real device path and fails when
	// the path does not exist.
	Resolve(path string) (string, error)
}

// Logger is the logging surface the resolver needs.
type Logger interface {
	Debug(format string, args ...any)
	Warn(format string, args ...any)
	Critical(format string, args ...any)
}
