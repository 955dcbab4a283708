package rip

import "strconv"

const cdparanoiaBin = "cdparanoia"

// QueryCommand builds the argv that reports the table of contents.
// cdparanoia prints the table on stderr.
func QueryCommand(device string) []string {
	return []string{cdparanoiaBin, "-Q", "-d", device}
}

// RipCommand builds the argv that rips one track to a WAV file. A
// nonzero offset is applied as a sample read offset.
func RipCommand(device string, track, offset int, output string) []string {
	argv := []string{cdparanoiaBin, "-d", device}
	if offset != 0 {
		argv = append(argv, "-O", strconv.Itoa(offset))
	}
	return append(argv, strconv.Itoa(track), output)
}

// AnalyzeCommand builds the argv for the drive cache analysis pass.
func AnalyzeCommand(device string) []string {
	return []string{cdparanoiaBin, "-A", "-d", device}
}

// ProbeCommand builds the argv that reads the first two seconds of
// track one at a candidate offset, used for offset comparison.
func ProbeCommand(device string, offset int, output string) []string {
	return []string{
		cdparanoiaBin, "-d", device,
		"-O", strconv.Itoa(offset),
		"1[0:0.00]-1[0:2.00]", output,
	}
}

// EjectCommand builds the argv that opens the drive tray.
func EjectCommand(device string) []string {
	return []string{"eject", device}
}
