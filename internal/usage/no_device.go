package usage

import "fmt"

// NoDrives is returned when device discovery finds no CD-DA drive at
// all. Carries the historical missing-device exit status.
func NoDrives() *Error {
	return &Error{
		Kind:    ErrNoDrives,
		Message: "spindle: no CD-DA drives found",
	}
}

// DeviceMissing is returned when the requested device path does not
// exist after symlink resolution.
func DeviceMissing(device string) *Error {
	return &Error{
		Kind:    ErrDeviceMissing,
		Message: fmt.Sprintf("spindle: device '%s' does not exist", device),
	}
}
