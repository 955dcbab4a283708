package usage

// ErrorKind represents the type of usage error.
type ErrorKind int

const (
	ErrUnknown ErrorKind = iota
	ErrUnknownSubcommand
	ErrInvalidArguments
	ErrInvalidChoice
	ErrMissingArgument
	ErrNoDrives
	ErrDeviceMissing
	ErrInvalidConfig
)

// Exit codes:
//
//	Exit 1: environment and resolution errors
//	  - Unknown errors
//	  - Unknown subcommand
//	  - Invalid configuration file
//
//	Exit 2: user input errors
//	  - Invalid arguments (flag parse failures)
//	  - Invalid flag value choice
//	  - Missing argument
//
//	Exit 3: device errors (the historical status for a missing drive)
//	  - No CD-DA drives discovered
//	  - Device path does not exist
var exitCodes = map[ErrorKind]int{
	ErrUnknown:           1,
	ErrUnknownSubcommand: 1,
	ErrInvalidArguments:  2,
	ErrInvalidChoice:     2,
	ErrMissingArgument:   2,
	ErrNoDrives:          3,
	ErrDeviceMissing:     3,
	ErrInvalidConfig:     1,
}

// Error represents a user-facing usage error with semantic type information.
type Error struct {
	Kind     ErrorKind
	Message  string
	ExitCode int // kept for callers that pin a code, computed from Kind if zero
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// GetExitCode returns the appropriate exit code for this error.
// If ExitCode is explicitly set, it is returned; otherwise, the code is derived from Kind.
func (e *Error) GetExitCode() int {
	if e.ExitCode != 0 {
		return e.ExitCode
	}
	if code, ok := exitCodes[e.Kind]; ok {
		return code
	}
	return 1
}

// Verify Error implements the error interface.
var _ error = (*Error)(nil)
