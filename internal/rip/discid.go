package rip

import "fmt"

// leadInFrames is the standard two-second lead-in preceding the first
// track; CDDB offsets are counted from the start of the lead-in.
const leadInFrames = 150

// DiscID computes the classic CDDB identifier for a disc: eight hex
// digits packing a checksum of the track start times, the playing time
// in seconds, and the track count.
func DiscID(toc *TOC) string {
	checksum := 0
	for _, track := range toc.Tracks {
		checksum += digitSum((track.Start + leadInFrames) / 75)
	}

	first := toc.Tracks[0].Start + leadInFrames
	leadOut := toc.LeadOut() + leadInFrames
	totalSeconds := leadOut/75 - first/75

	id := uint32(checksum%0xff)<<24 | uint32(totalSeconds)<<8 | uint32(len(toc.Tracks))
	return fmt.Sprintf("%08x", id)
}

// digitSum adds the decimal digits of n.
func digitSum(n int) int {
	sum := 0
	for n > 0 {
		sum += n % 10
		n /= 10
	}
	return sum
}
