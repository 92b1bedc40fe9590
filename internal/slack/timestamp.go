package slack

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrBadTimestamp is returned for values that are not Slack timestamps.
var ErrBadTimestamp = errors.New("invalid slack timestamp")

// splitTimestamp splits "1713203474.121819" into whole seconds and a
// fractional part right-padded to six digits.
func splitTimestamp(ts string) (sec, frac int64, err error) {
	whole, fraction, _ := strings.Cut(strings.TrimSpace(ts), ".")
	if whole == "" {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadTimestamp, ts)
	}
	sec, err = strconv.ParseInt(whole, 10, 64)
	if err != nil || sec < 0 {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadTimestamp, ts)
	}
	if fraction == "" {
		return sec, 0, nil
	}
	if len(fraction) > 6 {
		fraction = fraction[:6]
	}
	fraction += strings.Repeat("0", 6-len(fraction))
	frac, err = strconv.ParseInt(fraction, 10, 64)
	if err != nil || frac < 0 {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadTimestamp, ts)
	}
	return sec, frac, nil
}

// ParseTimestamp converts a Slack ts to a UTC time truncated to the second.
func ParseTimestamp(ts string) (time.Time, error) {
	sec, _, err := splitTimestamp(ts)
	if err != nil {
		return time.Time{}, err
	}
	return time.Unix(sec, 0).UTC(), nil
}

// CompareTimestamps orders two Slack timestamps by integer seconds, then by
// fractional part. It returns -1, 0 or +1.
func CompareTimestamps(a, b string) (int, error) {
	as, af, err := splitTimestamp(a)
	if err != nil {
		return 0, err
	}
	bs, bf, err := splitTimestamp(b)
	if err != nil {
		return 0, err
	}
	switch {
	case as < bs:
		return -1, nil
	case as > bs:
		return 1, nil
	case af < bf:
		return -1, nil
	case af > bf:
		return 1, nil
	}
	return 0, nil
}

// FormatTimestamp renders ts as "2006-01-02 15:04" in loc, or returns ts
// unchanged when it cannot be parsed.
func FormatTimestamp(ts string, loc *time.Location) string {
	t, err := ParseTimestamp(ts)
	if err != nil {
		return ts
	}
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format("2006-01-02 15:04")
}

// ToTimestamp converts t to a Slack ts with microsecond precision.
func ToTimestamp(t time.Time) string {
	return fmt.Sprintf("%d.%06d", t.Unix(), t.Nanosecond()/1000)
}

// DayBounds calculates the UTC start and end times for a given date in the
// specified timezone: local midnight to the last nanosecond of that day.
// DST transitions are handled by constructing both ends in local time.
func DayBounds(date, timezone string) (start, end time.Time, err error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid timezone: %w", err)
	}

	t, err := time.ParseInLocation("2006-01-02", date, loc)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid date: %w", err)
	}

	start = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc).UTC()

	next := t.AddDate(0, 0, 1)
	end = time.Date(next.Year(), next.Month(), next.Day(), 0, 0, 0, 0, loc).Add(-time.Nanosecond).UTC()

	return start, end, nil
}
