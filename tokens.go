package datefix

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"lab.nexedi.com/kirr/go123/xfmt"
)

// Row sets for the token heuristic. Month names may be full or
// abbreviated, so every row carries both spellings.
var (
	// two tokens, month and day only
	tokenDateMonthFirst = []string{"January 2 2006", "Jan 2 2006"}
	tokenDateDayFirst   = []string{"2 January 2006", "2 Jan 2006"}

	// three tokens, trailing wall clock
	tokenClockMonthFirst = []string{
		"January 2 2006 15:4", "Jan 2 2006 15:4",
		"January 2 2006 15:4:5", "Jan 2 2006 15:4:5",
		"January 2 2006 3:4pm", "Jan 2 2006 3:4pm",
		"January 2 2006 3:4PM", "Jan 2 2006 3:4PM",
	}
	tokenClockDayFirst = []string{
		"2 January 2006 15:4", "2 Jan 2006 15:4",
		"2 January 2006 15:4:5", "2 Jan 2006 15:4:5",
		"2 January 2006 3:4pm", "2 Jan 2006 3:4pm",
		"2 January 2006 3:4PM", "2 Jan 2006 3:4PM",
	}

	// four tokens, spaced meridiem
	tokenMeridiemMonthFirst = []string{
		"January 2 2006 3:4 pm", "Jan 2 2006 3:4 pm",
		"January 2 2006 3:4 PM", "Jan 2 2006 3:4 PM",
	}
	tokenMeridiemDayFirst = []string{
		"2 January 2006 3:4 pm", "2 Jan 2006 3:4 pm",
		"2 January 2006 3:4 PM", "2 Jan 2006 3:4 PM",
	}
)

// parseTokens is the last-resort heuristic for year-less text such as
// "Feb 12", "12 Feb 14:00:01" or "Feb 12 3:33 pm". It classifies the
// tokens by which of the first two is alphabetic, supplies the clock's
// current year, and recomposes a candidate for the matching row set.
// Token streams outside the two, three or four token shapes fail with
// ErrTokenLayout.
func parseTokens(datestr string, clock Clock) (time.Time, error) {
	tokens := strings.Fields(datestr)
	year := clock.Now().Year()
	loc := clock.Location()

	switch len(tokens) {
	case 2:
		// month and day only, midnight implied. Commas stay put here:
		// "Feb 12," names no real layout and should keep failing.
		buf := new(xfmt.Buffer)
		buf.S(tokens[0]).C(' ').S(tokens[1]).C(' ').D(year)
		candidate := string(buf.Bytes())
		switch {
		case alphaToken(tokens[0]):
			return parseFirst(tokenDateMonthFirst, candidate, loc)
		case alphaToken(tokens[1]):
			return parseFirst(tokenDateDayFirst, candidate, loc)
		}
	case 3:
		candidate := spliceYear(tokens, year)
		switch {
		case alphaToken(tokens[0]):
			return parseFirst(tokenClockMonthFirst, candidate, loc)
		case alphaToken(tokens[1]):
			return parseFirst(tokenClockDayFirst, candidate, loc)
		}
	case 4:
		candidate := spliceYear(tokens, year)
		switch {
		case alphaToken(tokens[0]):
			return parseFirst(tokenMeridiemMonthFirst, candidate, loc)
		case alphaToken(tokens[1]):
			return parseFirst(tokenMeridiemDayFirst, candidate, loc)
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrTokenLayout, datestr)
}

// spliceYear rebuilds the token stream with year inserted after the
// first two tokens, then drops commas so one row covers the punctuated
// variants ("Feb 12, 14:00" and "Feb 12 14:00" land on the same row).
func spliceYear(tokens []string, year int) string {
	buf := new(xfmt.Buffer)
	buf.S(tokens[0]).C(' ').S(tokens[1]).C(' ').D(year)
	for _, tok := range tokens[2:] {
		buf.C(' ').S(tok)
	}
	return strings.ReplaceAll(string(buf.Bytes()), ",", "")
}

// alphaToken reports whether tok is purely alphabetic once commas are
// dropped, marking it as a month name candidate.
func alphaToken(tok string) bool {
	tok = strings.ReplaceAll(tok, ",", "")
	if tok == "" {
		return false
	}
	for _, r := range tok {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
