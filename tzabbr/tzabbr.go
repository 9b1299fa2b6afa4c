// Package tzabbr resolves trailing timezone abbreviations against a fixed
// offset table. The table is configuration data, not a timezone database:
// it carries only the abbreviations the RFC2822 zone grammar recognizes,
// and anything else fails closed rather than guessing. Regionally
// ambiguous names (IST, and CST outside North America) are absent on
// purpose.
package tzabbr

import (
	"fmt"
	"strings"
	"unicode"
)

// offsets maps canonical abbreviations to seconds east of UTC.
var offsets = map[string]int{
	"GMT": 0,
	"Z":   0,
	"EST": -5 * 60 * 60,
	"EDT": -4 * 60 * 60,
	"CST": -6 * 60 * 60,
	"CDT": -5 * 60 * 60,
	"MST": -7 * 60 * 60,
	"MDT": -6 * 60 * 60,
	"PST": -8 * 60 * 60,
	"PDT": -7 * 60 * 60,
}

// Canonical upper-cases abbr and folds the UT and UTC aliases to GMT,
// the zero-offset name the table carries.
func Canonical(abbr string) string {
	abbr = strings.ToUpper(abbr)
	if abbr == "UT" || abbr == "UTC" {
		return "GMT"
	}
	return abbr
}

// Offset reports the fixed offset in seconds east of UTC for a recognized
// abbreviation. Lookup is case-insensitive; unknown names report ok false.
func Offset(abbr string) (seconds int, ok bool) {
	seconds, ok = offsets[Canonical(abbr)]
	return seconds, ok
}

// SplitTrailing splits s at its last whitespace boundary and reports the
// trailing token as a timezone abbreviation candidate. ok is false unless
// that token is purely alphabetic, which leaves numeric suffixes such as
// "+0500" for the offset-bearing layouts to claim.
func SplitTrailing(s string) (rest, abbr string, ok bool) {
	s = strings.TrimSpace(s)
	i := strings.LastIndexFunc(s, unicode.IsSpace)
	if i < 0 {
		return "", "", false
	}
	rest, abbr = s[:i], s[i+1:]
	if abbr == "" || !alphabetic(abbr) {
		return "", "", false
	}
	return rest, abbr, true
}

// OffsetHHMM renders seconds east of UTC as a "±HHMM" zone token.
func OffsetHHMM(seconds int) string {
	sign := '+'
	if seconds < 0 {
		sign = '-'
		seconds = -seconds
	}
	h := seconds / (60 * 60)
	m := (seconds % (60 * 60)) / 60
	return fmt.Sprintf("%c%02d%02d", sign, h, m)
}

func alphabetic(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
