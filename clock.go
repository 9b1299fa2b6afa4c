package datefix

import "time"

// Clock pins the present moment consulted when input omits a date, a time
// of day or a zone. Parse never reads the system clock itself: callers pass
// a Clock so the same input and clock always produce the same result.
type Clock struct {
	now time.Time
	loc *time.Location
}

// ClockAt fixes a clock at now, capturing now's UTC offset as a constant.
// Daylight rules of now's location play no further part after this point.
func ClockAt(now time.Time) Clock {
	name, offset := now.Zone()
	loc := time.FixedZone(name, offset)
	return Clock{now: now.In(loc), loc: loc}
}

// SystemClock captures the system wall clock in the process-local zone.
func SystemClock() Clock {
	return ClockAt(time.Now())
}

// Now returns the clock's instant. The zero Clock reads as the zero time
// at UTC.
func (c Clock) Now() time.Time {
	if c.loc == nil {
		return c.now.UTC()
	}
	return c.now
}

// Location returns the fixed zone carrying the clock's offset.
func (c Clock) Location() *time.Location {
	if c.loc == nil {
		return time.UTC
	}
	return c.loc
}

// Offset returns the clock's UTC offset in seconds east of UTC.
func (c Clock) Offset() int {
	_, offset := c.Now().Zone()
	return offset
}
