package datefix

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// testClock pins parsing at 2023-08-07 10:30:00 -06:00 so date-less,
// time-less and year-less inputs resolve the same way on every run.
var testClock = ClockAt(time.Date(2023, 8, 7, 10, 30, 0, 0, time.FixedZone("CST", -6*60*60)))

func TestOne(t *testing.T) {
	ts := MustParse("1970.12.31", testClock)
	assert.Equal(t, "1970-12-31T00:00:00-06:00", ts.String())
}

type dateTest struct {
	in, out, loc string
	err          bool
}

var testInputs = []dateTest{
	// explicit numeric offsets, the clock plays no part
	{in: "2009-08-12T22:15:09-07:00", out: "2009-08-12T22:15:09-07:00"},
	{in: "2009-08-12T22:15:09.99Z", out: "2009-08-12T22:15:09.99Z"},
	{in: "2009-08-12T22:15:09Z", out: "2009-08-12T22:15:09Z"},
	{in: "2023-1-5T7:27:19-07:00", out: "2023-01-05T07:27:19-07:00"},
	{in: "2023-1-5T7:27:19-0700", out: "2023-01-05T07:27:19-07:00"},
	{in: "2012-08-03 18:31:59 +0200", out: "2012-08-03T18:31:59+02:00"},
	{in: "2012-08-03 18:31:59.257000000 +0000", out: "2012-08-03T18:31:59.257Z"},
	{in: "2012-08-03 18:31:59+02:00", out: "2012-08-03T18:31:59+02:00"},
	{in: "2018-01-02 17:08:09 -07", out: "2018-01-02T17:08:09-07:00"},
	{in: "Mon, 02 Jan 2006 15:04:05 -0700", out: "2006-01-02T15:04:05-07:00"},
	{in: "Thu, 4 Jan 2018 17:53:36 +0000", out: "2018-01-04T17:53:36Z"},
	{in: "Mon, 6 Jul 1970 15:30 -0500", out: "1970-07-06T15:30:00-05:00"},
	{in: "12 Feb 2006 19:17 -0500", out: "2006-02-12T19:17:00-05:00"},
	{in: "September 17, 2012; 10:10:09 +0200", out: "2012-09-17T10:10:09+02:00"},

	// naive datetimes anchored at the clock's offset
	{in: "2012/03/19 10:11:59", out: "2012-03-19T10:11:59-06:00"},
	{in: "2012/03/19 10:11:59.3186369", out: "2012-03-19T10:11:59.3186369-06:00"},
	{in: "2014-04-26 17:24:37.123", out: "2014-04-26T17:24:37.123-06:00"},
	{in: "2014-05-11 08:20:13,787", out: "2014-05-11T08:20:13.787-06:00"},
	{in: "2013-04-01 22:43:22", out: "2013-04-01T22:43:22-06:00"},
	{in: "2014-04-08 22:05", out: "2014-04-08T22:05:00-06:00"},
	{in: "4/8/2014 22:05", out: "2014-04-08T22:05:00-06:00"},
	{in: "8/7/2023 8:23:50 AM", out: "2023-08-07T08:23:50-06:00"},
	{in: "2014-04-26 05:24:37 PM", out: "2014-04-26T17:24:37-06:00"},
	{in: "2017-07-19T03:21:51", out: "2017-07-19T03:21:51-06:00"},
	{in: "Mon Jan  2 15:04:05 2006", out: "2006-01-02T15:04:05-06:00"},
	{in: "Thu May 8 17:57:51 2009", out: "2009-05-08T17:57:51-06:00"},
	{in: "May 8, 2009 5:57:51 PM", out: "2009-05-08T17:57:51-06:00"},
	{in: "Feb 8, 2009 5:57:51 AM", out: "2009-02-08T05:57:51-06:00"},
	{in: "September 17, 2012 09:01:00", out: "2012-09-17T09:01:00-06:00"},
	{in: "Monday, 2 January 2006 15:04:05", out: "2006-01-02T15:04:05-06:00"},
	{in: "2 Jan 2006 15:04:05", out: "2006-01-02T15:04:05-06:00"},
	{in: "8 7 2023 3:30 PM", out: "2023-07-08T15:30:00-06:00"},
	{in: "2012/03/19 10:11:59", loc: "America/Denver", out: "2012-03-19T10:11:59-06:00"},

	// date only, midnight at the clock's offset
	{in: "1970.12.31", out: "1970-12-31T00:00:00-06:00"},
	{in: "1970/12/31", out: "1970-12-31T00:00:00-06:00"},
	{in: "1970-12-31", out: "1970-12-31T00:00:00-06:00"},
	{in: "2014-04-26", out: "2014-04-26T00:00:00-06:00"},
	{in: "3.31.2014", out: "2014-03-31T00:00:00-06:00"},
	{in: "08.21.71", out: "1971-08-21T00:00:00-06:00"},
	{in: "1/2/06", out: "2006-01-02T00:00:00-06:00"},
	{in: "31-Dec-1970", out: "1970-12-31T00:00:00-06:00"},
	{in: "14 May 2019", out: "2019-05-14T00:00:00-06:00"},
	{in: "December 31 1970", out: "1970-12-31T00:00:00-06:00"},
	{in: "December, 31 1970", out: "1970-12-31T00:00:00-06:00"},
	{in: "31 December, 1970", out: "1970-12-31T00:00:00-06:00"},
	{in: "Feb 12 2023", out: "2023-02-12T00:00:00-06:00"},

	// time only, the clock supplies the date
	{in: "15:44:11", out: "2023-08-07T15:44:11-06:00"},
	{in: "15:44:11.123", out: "2023-08-07T15:44:11.123-06:00"},
	{in: "10:09am", out: "2023-08-07T10:09:00-06:00"},
	{in: "5:57:51 PM", out: "2023-08-07T17:57:51-06:00"},

	// trailing timezone abbreviations
	{in: "Mon, 6 Jul 1970 15:30:00 PDT", out: "1970-07-06T15:30:00-07:00"},
	{in: "Monday, 6 July 1970 15:30:00 PDT", out: "1970-07-06T15:30:00-07:00"},
	{in: "2014-12-16 06:20:00 UTC", out: "2014-12-16T06:20:00Z"},
	{in: "2014-12-16 06:20:00 UT", out: "2014-12-16T06:20:00Z"},
	{in: "2014-12-16 06:20:00 GMT", out: "2014-12-16T06:20:00Z"},
	{in: "2014-12-16 06:20:00 pst", out: "2014-12-16T06:20:00-08:00"},
	{in: "2017-07-19 03:21:51 EST", out: "2017-07-19T03:21:51-05:00"},
	{in: "September 17, 2012 10:10:09 CST", out: "2012-09-17T10:10:09-06:00"},
	{in: "15:44:11 PST", out: "2023-08-07T15:44:11-08:00"},
	{in: "3:33pm CST", out: "2023-08-07T15:33:00-06:00"},

	// failures
	{in: "2014-12-16 06:20:00 XST", err: true},
	{in: "not a date", err: true},
	{in: "Feb 99", err: true},
	{in: "2014-13-13 08:20:13,787", err: true},
	{in: "2009-15-12T22:15Z", err: true},
	{in: "", err: true},
}

func TestParse(t *testing.T) {
	ts, err := Parse("INVALID", testClock)
	assert.NotEqual(t, nil, err)
	assert.Equal(t, true, ts.Time().IsZero())

	assert.Equal(t, true, testDidPanic("NOT GONNA HAPPEN"))

	for _, th := range testInputs {
		clock := testClock
		if len(th.loc) > 0 {
			loc, locErr := time.LoadLocation(th.loc)
			if locErr != nil {
				t.Fatalf("Expected to load location %q but got %v", th.loc, locErr)
			}
			clock = ClockAt(testClock.Now().In(loc))
		}
		if th.err {
			_, err = Parse(th.in, clock)
			assert.NotEqual(t, nil, err, "Expected error from %q", th.in)
			continue
		}
		got := MustParse(th.in, clock).String()
		assert.Equal(t, th.out, got, "Expected %q but got %q from %q", th.out, got, th.in)
	}

	// some errors

	assert.Equal(t, true, testDidPanic(`{"ts":"now"}`))

	_, err = Parse("138421636711122233311111", testClock) // too many digits
	assert.NotEqual(t, nil, err)

	_, err = Parse("-1314", testClock)
	assert.NotEqual(t, nil, err)
}

func testDidPanic(datestr string) (paniced bool) {
	defer func() {
		if r := recover(); r != nil {
			paniced = true
		}
	}()
	MustParse(datestr, testClock)
	return false
}

func TestErrorKinds(t *testing.T) {
	_, err := Parse("2014-12-16 06:20:00 XST", testClock)
	assert.Equal(t, true, errors.Is(err, ErrUnknownZone))

	_, err = Parse("12 13 14:00", testClock)
	assert.Equal(t, true, errors.Is(err, ErrTokenLayout))

	_, err = Parse("Feb 99", testClock)
	assert.Equal(t, true, errors.Is(err, ErrNoMatch))

	var perr *ParseError
	_, err = Parse("not a date", testClock)
	assert.Equal(t, true, errors.As(err, &perr))
	assert.Equal(t, "not a date", perr.Input)
	assert.NotEqual(t, "", err.Error())
}

func TestStrategy(t *testing.T) {
	for _, th := range []struct{ in, want string }{
		{"1672903639", "epoch"},
		{"2009-08-12T22:15:09-07:00", "numeric-offset"},
		{"8/7/2023 8:23:50 AM", "local-implied"},
		{"1970.12.31", "date-only"},
		{"15:44:11", "time-only"},
		{"15:44:11 PST", "alpha-zone"},
		{"Feb 12", "token-heuristic"},
	} {
		name, err := Strategy(th.in, testClock)
		assert.Equal(t, nil, err)
		assert.Equal(t, th.want, name, "for %q", th.in)
	}

	_, err := Strategy("not a date", testClock)
	assert.NotEqual(t, nil, err)
}

func TestRoundTrip(t *testing.T) {
	for _, in := range []string{
		"2009-08-12T22:15:09-07:00",
		"2012-08-03 18:31:59.257000000 +0000",
		"Mon, 6 Jul 1970 15:30:00 PDT",
		"8/7/2023 8:23:50 AM",
		"1672903639123",
	} {
		first := MustParse(in, testClock)
		second := MustParse(first.String(), testClock)
		assert.Equal(t, true, first.Equal(second), "Expected %q to round-trip through %q", in, first.String())
		assert.Equal(t, first.String(), second.String())
	}
}

// Inputs carrying their own instant must not move with the clock.
func TestAnchorIndependence(t *testing.T) {
	other := ClockAt(time.Date(1999, 1, 1, 0, 0, 0, 0, time.FixedZone("IST", 5*3600+1800)))
	for _, in := range []string{
		"2009-08-12T22:15:09-07:00",
		"1672903639",
		"2014-12-16 06:20:00 UTC",
	} {
		a := MustParse(in, testClock)
		b := MustParse(in, other)
		assert.Equal(t, true, a.Equal(b), "Expected %q to ignore the clock", in)
	}
}

func TestParseLocal(t *testing.T) {
	time.Local = time.UTC
	ts, err := ParseLocal("2009-08-12T22:15:09-07:00")
	assert.Equal(t, nil, err)
	assert.Equal(t, "2009-08-12T22:15:09-07:00", ts.String())

	_, err = ParseLocal("not a date")
	assert.NotEqual(t, nil, err)
}

func TestClock(t *testing.T) {
	assert.Equal(t, -6*60*60, testClock.Offset())
	assert.Equal(t, 2023, testClock.Now().Year())

	var zero Clock
	assert.Equal(t, time.UTC, zero.Location())
	assert.Equal(t, 0, zero.Offset())
	assert.Equal(t, true, zero.Now().IsZero())
}
