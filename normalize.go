package datefix

import "strings"

// Normalize rewrites raw date text into the shape the layout tables expect
// and is the only preprocessing any strategy ever sees. Within the first 8
// bytes, '.' and '/' become '-': that span covers the date part of the
// supported layouts while leaving time-of-day separators beyond it alone.
// Inputs shorter than 8 bytes pass through unchanged, so "1/2/06" keeps its
// slashes. " UTC" and " UT" become " GMT" anywhere in the string, GMT being
// the zero-offset name the abbreviation table knows; " UTC" is replaced
// first since " UT" is its prefix.
func Normalize(datestr string) string {
	if len(datestr) >= 8 {
		b := []byte(datestr)
		for i := 0; i < 8; i++ {
			if b[i] == '.' || b[i] == '/' {
				b[i] = '-'
			}
		}
		datestr = string(b)
	}
	datestr = strings.ReplaceAll(datestr, " UTC", " GMT")
	return strings.ReplaceAll(datestr, " UT", " GMT")
}
