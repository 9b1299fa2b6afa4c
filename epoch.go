package datefix

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/JohnCGriffin/overflow"
)

var reDigits = regexp.MustCompile(`^\d+$`)

// parseEpoch reads bare epoch counts. The digit count picks the unit:
// 10 digits are seconds, 13 milliseconds, 16 microseconds, 19 nanoseconds;
// any other count fails so the textual strategies get their turn. Epoch
// numerals carry no zone of their own and resolve at UTC.
func parseEpoch(datestr string, _ Clock) (time.Time, error) {
	if !reDigits.MatchString(datestr) {
		return time.Time{}, fmt.Errorf("not an epoch numeral: %q", datestr)
	}
	n, err := strconv.ParseInt(datestr, 10, 64)
	if err != nil {
		return time.Time{}, err
	}
	var t time.Time
	switch len(datestr) {
	case 10:
		t = time.Unix(n, 0)
	case 13:
		ns, ok := overflow.Mul64(n, int64(time.Millisecond))
		if !ok {
			return time.Time{}, fmt.Errorf("epoch milliseconds out of range: %s", datestr)
		}
		t = time.Unix(0, ns)
	case 16:
		ns, ok := overflow.Mul64(n, int64(time.Microsecond))
		if !ok {
			return time.Time{}, fmt.Errorf("epoch microseconds out of range: %s", datestr)
		}
		t = time.Unix(0, ns)
	case 19:
		t = time.Unix(0, n)
	default:
		return time.Time{}, fmt.Errorf("epoch numerals have 10, 13, 16 or 19 digits, got %d", len(datestr))
	}
	return t.In(time.UTC), nil
}
