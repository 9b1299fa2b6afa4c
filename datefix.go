// Package datefix turns loosely formatted date and time text into a
// normalized timestamp carrying a fixed numeric UTC offset. Candidate
// readings are tried in a fixed order, from strict layouts with explicit
// offsets down to a token heuristic for year-less text, so a stricter
// reading always beats a looser one. Text without any zone information
// is anchored to the local clock the caller passes in.
package datefix

import (
	"errors"
	"fmt"
	"time"
)

// Failure kinds reported by Parse. Test with errors.Is.
var (
	// ErrNoMatch reports text no strategy recognized.
	ErrNoMatch = errors.New("no known date format matched")
	// ErrUnknownZone reports a trailing alphabetic token that is not a
	// recognized timezone abbreviation.
	ErrUnknownZone = errors.New("unknown timezone abbreviation")
	// ErrTokenLayout reports a token stream the heuristic cannot shape
	// into a date.
	ErrTokenLayout = errors.New("unrecognized token layout")
)

// ParseError reports why no strategy accepted the input. Kind is one of
// the sentinel errors above and is what errors.Is sees; cause keeps the
// most specific strategy failure for the message.
type ParseError struct {
	Input string
	Kind  error
	cause error
}

func (e *ParseError) Error() string {
	if e.cause == nil {
		return fmt.Sprintf("Could not find date format for %s", e.Input)
	}
	return fmt.Sprintf("Could not find date format for %s: %v", e.Input, e.cause)
}

func (e *ParseError) Unwrap() error { return e.Kind }

// A strategy is one way of reading the input. The cascade tries each in
// order and the first success wins.
type strategy struct {
	name string
	try  func(string, Clock) (time.Time, error)
}

var strategies = []strategy{
	{"epoch", parseEpoch},
	{"numeric-offset", parseNumericOffset},
	{"local-implied", parseLocalImplied},
	{"date-only", parseDateOnly},
	{"time-only", parseTimeOnly},
	{"alpha-zone", parseAlphaZone},
	{"token-heuristic", parseTokens},
}

// Parse reads datestr against each strategy in order and returns the
// first match. Text with no zone information of its own is anchored to
// clock; pass SystemClock() for wall-clock behavior. A failure is always
// a *ParseError whose Kind unwraps to one of the package sentinels.
func Parse(datestr string, clock Clock) (Timestamp, error) {
	ts, _, err := parseCascade(datestr, clock)
	return ts, err
}

// Strategy reports which reading accepted datestr, by name: "epoch",
// "numeric-offset", "local-implied", "date-only", "time-only",
// "alpha-zone" or "token-heuristic".
func Strategy(datestr string, clock Clock) (string, error) {
	_, name, err := parseCascade(datestr, clock)
	return name, err
}

func parseCascade(datestr string, clock Clock) (Timestamp, string, error) {
	normalized := Normalize(datestr)

	var cause error
	for _, s := range strategies {
		t, err := s.try(normalized, clock)
		if err == nil {
			return makeTimestamp(t), s.name, nil
		}
		if errRank(err) >= errRank(cause) {
			cause = err
		}
	}

	kind := ErrNoMatch
	switch {
	case errors.Is(cause, ErrUnknownZone):
		kind = ErrUnknownZone
	case errors.Is(cause, ErrTokenLayout):
		kind = ErrTokenLayout
	}
	return Timestamp{}, "", &ParseError{Input: datestr, Kind: kind, cause: cause}
}

// errRank orders strategy failures by how specific a diagnosis they
// carry. A bad zone abbreviation outranks a bad token shape, which
// outranks a plain layout miss; ties go to the later strategy.
func errRank(err error) int {
	switch {
	case err == nil:
		return -1
	case errors.Is(err, ErrUnknownZone):
		return 2
	case errors.Is(err, ErrTokenLayout):
		return 1
	}
	return 0
}

// MustParse parses datestr and panics if it cannot.
func MustParse(datestr string, clock Clock) Timestamp {
	ts, err := Parse(datestr, clock)
	if err != nil {
		panic(err.Error())
	}
	return ts
}

// ParseLocal is Parse anchored to the system clock and zone.
func ParseLocal(datestr string) (Timestamp, error) {
	return Parse(datestr, SystemClock())
}
