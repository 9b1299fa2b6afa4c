package datefix

import (
	"fmt"
	"time"

	"lab.nexedi.com/kirr/go123/xfmt"

	"github.com/araddon/datefix/tzabbr"
)

// alphaZoneLayouts are the naive datetime rows eligible to precede a
// trailing timezone abbreviation. Each is suffixed with " -0700" and tried
// against the text recomposed with the abbreviation's numeric offset, so
// one parse re-validates the grammar and applies the offset.
var alphaZoneLayouts = []string{
	"2006-1-2 15:4:5",
	"2006-1-2 15:4",
	"2006-1-2 3:4PM",
	"2006-1-2 3:4 PM",
	"2006-1-2 3:4pm",
	"2006-1-2 3:4 pm",
	"Mon, 2 Jan 2006 15:4:5",
	"Mon 2 Jan 2006 15:4:5",
	"Monday, 2 January 2006 15:4:5",
	"Monday 2 January 2006 15:4:5",
	"Mon, 2 January 2006 15:4:5",
	"Monday, 2 Jan 2006 15:4:5",
	"2 January, 2006 15:4:5",
	"2 January 2006 15:4:5",
	"2 Jan, 2006 15:4:5",
	"2 Jan 2006 15:4:5",
	"January 2, 2006 15:4:5",
	"January 2 2006 15:4:5",
	"Jan 2, 2006 15:4:5",
	"Jan 2 2006 15:4:5",
	"January 2, 2006 15:4",
	"January 2 2006 15:4",
	"Jan 2, 2006 15:4",
	"Jan 2 2006 15:4",
	"January 2, 2006; 15:4:5",
	"January 2 2006; 15:4:5",
	"Jan 2, 2006; 15:4:5",
	"Jan 2 2006; 15:4:5",
	"Monday, January 2 2006 15:4:5",
	"Monday January 2 2006 15:4:5",
	"Mon, Jan 2 2006 15:4:5",
	"Mon Jan 2 2006 15:4:5",
}

// parseAlphaZone handles a trailing alphabetic timezone token. The token
// must resolve against the abbreviation table before any layout work
// happens; unknown names fail the strategy outright. The remainder is
// matched as a naive datetime, or as a bare time with the clock's current
// date prepended.
func parseAlphaZone(datestr string, clock Clock) (time.Time, error) {
	rest, abbr, ok := tzabbr.SplitTrailing(datestr)
	if !ok {
		return time.Time{}, fmt.Errorf("no trailing timezone abbreviation in %q", datestr)
	}
	offset, ok := tzabbr.Offset(abbr)
	if !ok {
		return time.Time{}, fmt.Errorf("%w: %q", ErrUnknownZone, abbr)
	}

	numeric := tzabbr.OffsetHHMM(offset)
	t, err := parseRecomposed(rest, numeric)
	if err != nil {
		withDate := new(xfmt.Buffer)
		withDate.S(clock.Now().Format("2006-01-02")).C(' ').S(rest)
		t, err = parseRecomposed(string(withDate.Bytes()), numeric)
	}
	if err != nil {
		return time.Time{}, err
	}
	// surface the abbreviation in the result's zone name
	return t.In(time.FixedZone(tzabbr.Canonical(abbr), offset)), nil
}

func parseRecomposed(rest, numeric string) (time.Time, error) {
	buf := new(xfmt.Buffer)
	buf.S(rest).C(' ').S(numeric)
	recomposed := string(buf.Bytes())

	var err error
	for _, layout := range alphaZoneLayouts {
		var t time.Time
		t, err = time.Parse(layout+" -0700", recomposed)
		if err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}
