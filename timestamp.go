package datefix

import "time"

// Timestamp is a parsed instant pinned to the fixed numeric UTC offset it
// was parsed with. Unlike a time.Time in a named location, the offset is
// part of the value and never shifts with daylight rules.
type Timestamp struct {
	t time.Time
}

// makeTimestamp re-pins t to a fixed zone carrying its current offset, so
// the invariant holds no matter which location t arrived in.
func makeTimestamp(t time.Time) Timestamp {
	name, offset := t.Zone()
	return Timestamp{t: t.In(time.FixedZone(name, offset))}
}

// Time returns the instant in its fixed zone.
func (ts Timestamp) Time() time.Time { return ts.t }

// Offset returns the fixed UTC offset in seconds east of UTC.
func (ts Timestamp) Offset() int {
	_, offset := ts.t.Zone()
	return offset
}

// Equal reports whether o denotes the same instant at the same offset.
// For instant-only comparison use Time().Equal.
func (ts Timestamp) Equal(o Timestamp) bool {
	return ts.t.Equal(o.t) && ts.Offset() == o.Offset()
}

// String renders the canonical RFC3339 form, with sub-second digits only
// when present.
func (ts Timestamp) String() string {
	return ts.t.Format(time.RFC3339Nano)
}

// MarshalText encodes the canonical RFC3339 form.
func (ts Timestamp) MarshalText() ([]byte, error) {
	return []byte(ts.String()), nil
}

// UnmarshalText decodes what MarshalText produced. Round-tripping yields
// the identical instant and offset.
func (ts *Timestamp) UnmarshalText(b []byte) error {
	t, err := time.Parse(time.RFC3339Nano, string(b))
	if err != nil {
		return err
	}
	*ts = makeTimestamp(t)
	return nil
}
