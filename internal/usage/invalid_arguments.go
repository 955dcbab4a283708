package usage

import "fmt"

// InvalidArguments is returned when the flag parser rejects argv.
func InvalidArguments(path string, err error) *Error {
	return &Error{
		Kind:    ErrInvalidArguments,
		Message: fmt.Sprintf("spindle: %s: %v", path, err),
	}
}

// InvalidChoice is returned when a flag value is outside its fixed set
// of accepted spellings.
func InvalidChoice(flag, got, want string) *Error {
	return &Error{
		Kind:    ErrInvalidChoice,
		Message: fmt.Sprintf("spindle: invalid value '%s' for --%s (choose from %s)", got, flag, want),
	}
}
