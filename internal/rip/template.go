package rip

import (
	"fmt"
	"strings"
)

// DefaultTemplate matches cdparanoia's own output naming.
const DefaultTemplate = "track%n.cdda.wav"

// Filename renders a track filename from a template. Tokens:
//
//	%n  track number, zero-padded to two digits
//	%t  track count on the disc
//	%d  disc id
//	%%  literal percent sign
//
// An unknown token is kept verbatim so a typo stays visible in the
// produced filename instead of disappearing silently.
func Filename(template string, track, total int, discID string) string {
	var b strings.Builder

	for i := 0; i < len(template); i++ {
		if template[i] != '%' || i+1 == len(template) {
			b.WriteByte(template[i])
			continue
		}

		i++
		switch template[i] {
		case 'n':
			fmt.Fprintf(&b, "%02d", track)
		case 't':
			fmt.Fprintf(&b, "%d", total)
		case 'd':
			b.WriteString(discID)
		case '%':
			b.WriteByte('%')
		default:
			b.WriteByte('%')
			b.WriteByte(template[i])
		}
	}

	return b.String()
}
