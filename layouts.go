package datefix

import "time"

// Layout atoms are non-padded ("2006-1-2 15:4:5") so padded and bare fields
// both match, and Go consumes an optional fractional second after any
// seconds atom, which keeps the tables free of .000 duplicates. Textual
// month, weekday and meridiem tokens match exactly, so those rows appear in
// long and short (and upper and lower) forms.

// numericOffsetLayouts are the strict forms: the string itself carries a
// numeric UTC offset or Z. Tried with time.Parse, never a location.
var numericOffsetLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-1-2T15:4:5-07:00",
	"2006-1-2T15:4:5-0700",
	"2006-1-2T15:4:5-07",
	"2006-1-2 15:4:5 -07:00",
	"2006-1-2 15:4:5 -0700",
	"2006-1-2 15:4:5 -07",
	"2006-1-2 15:4:5-07:00",
	"2006-1-2 15:4:5-0700",
	"2006-1-2 15:4:5-07",
	// RFC2822 with and without weekday, seconds optional per the grammar
	"Mon, 2 Jan 2006 15:4:5 -0700",
	"Mon, 2 January 2006 15:4:5 -0700",
	"Monday, 2 Jan 2006 15:4:5 -0700",
	"Monday, 2 January 2006 15:4:5 -0700",
	"Mon 2 Jan 2006 15:4:5 -0700",
	"Monday 2 January 2006 15:4:5 -0700",
	"Mon, 2 Jan 2006 15:4 -0700",
	"2 Jan 2006 15:4:5 -0700",
	"2 January 2006 15:4:5 -0700",
	"2 Jan 2006 15:4 -0700",
	// month-first prose forms
	"January 2, 2006; 15:4:5 -0700",
	"Jan 2, 2006; 15:4:5 -0700",
	"January 2 2006 15:4:5 -0700",
	"Jan 2 2006 15:4:5 -0700",
	"January 2, 2006 15:4:5 -0700",
	"Jan 2, 2006 15:4:5 -0700",
	"January, 2 2006 15:4:5 -0700",
	"Jan, 2 2006 15:4:5 -0700",
	"January 2, 2006; 15:4:5 -07:00",
	"January 2 2006 15:4:5 -07:00",
}

// localImpliedLayouts carry a date and a time but no zone token; the
// clock's current offset fills the gap.
var localImpliedLayouts = append([]string{
	"2006-1-2T15:4:5",
	"2006-1-2 15:4:5",
	"2006-1-2 15:4",
	time.ANSIC,
	"January 2 2006 15:4:5",
	"Jan 2 2006 15:4:5",
	"January 2, 2006 15:4:5",
	"Jan 2, 2006 15:4:5",
	"Monday, 2 January 2006 15:4:5",
	"Monday 2 January 2006 15:4:5",
	"Mon, 2 Jan 2006 15:4:5",
	"Mon 2 Jan 2006 15:4:5",
	"2 January 2006 15:4:5",
	"2 Jan 2006 15:4:5",
	"1-2-2006 15:4:5",
	"1-2-2006 15:4",
}, twelveHour(
	"Monday 2 January 2006",
	"Monday, 2 January 2006",
	"Mon 2 Jan 2006",
	"Mon, 2 Jan 2006",
	"January 2, 2006",
	"Jan 2, 2006",
	"January 2 2006",
	"Jan 2 2006",
	"2 January 2006",
	"2 Jan 2006",
	"2 1 2006",
	"2006-1-2",
	"1-2-2006",
)...)

// dateOnlyLayouts resolve to midnight at the clock's offset. The slash row
// exists because sub-8-byte input keeps its separators through Normalize.
var dateOnlyLayouts = []string{
	"2006-1-2",
	"1-2-2006",
	"1-2-06",
	"1/2/06",
	"2-Jan-2006",
	"2-January-2006",
	"January 2 2006",
	"Jan 2 2006",
	"January, 2 2006",
	"Jan, 2 2006",
	"2 January 2006",
	"2 Jan 2006",
	"2 January, 2006",
	"2 Jan, 2006",
}

// timeOnlyLayouts resolve against the clock's current date.
var timeOnlyLayouts = []string{
	"15:4:5",
	"3:4:5PM",
	"3:4:5 PM",
	"3:4:5pm",
	"3:4:5 pm",
	"3:4PM",
	"3:4 PM",
	"3:4pm",
	"3:4 pm",
}

// twelveHour crosses date prefixes with the 12-hour clock shapes. The
// meridiem may be attached or spaced and in either letter case; seconds
// are optional.
func twelveHour(prefixes ...string) []string {
	shapes := []string{
		"3:4PM", "3:4 PM", "3:4:5PM", "3:4:5 PM",
		"3:4pm", "3:4 pm", "3:4:5pm", "3:4:5 pm",
	}
	rows := make([]string, 0, len(prefixes)*len(shapes))
	for _, prefix := range prefixes {
		for _, shape := range shapes {
			rows = append(rows, prefix+" "+shape)
		}
	}
	return rows
}

// parseFirst walks an ordered layout table and returns the first hit. With
// a nil loc the zone must come from the string itself; otherwise missing
// fields default inside loc. The last error is kept as the diagnostic.
func parseFirst(layouts []string, datestr string, loc *time.Location) (time.Time, error) {
	var err error
	for _, layout := range layouts {
		var t time.Time
		if loc == nil {
			t, err = time.Parse(layout, datestr)
		} else {
			t, err = time.ParseInLocation(layout, datestr, loc)
		}
		if err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}

func parseNumericOffset(datestr string, _ Clock) (time.Time, error) {
	return parseFirst(numericOffsetLayouts, datestr, nil)
}

func parseLocalImplied(datestr string, clock Clock) (time.Time, error) {
	return parseFirst(localImpliedLayouts, datestr, clock.Location())
}

func parseDateOnly(datestr string, clock Clock) (time.Time, error) {
	return parseFirst(dateOnlyLayouts, datestr, clock.Location())
}

func parseTimeOnly(datestr string, clock Clock) (time.Time, error) {
	t, err := parseFirst(timeOnlyLayouts, datestr, clock.Location())
	if err != nil {
		return time.Time{}, err
	}
	year, month, day := clock.Now().Date()
	return time.Date(year, month, day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), clock.Location()), nil
}
