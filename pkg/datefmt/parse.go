package datefmt

import (
	"database/sql/driver"
	"fmt"
	"math"
	"strings"
	"time"
)

// Layouts accepted by Parse for string input, tried in order.
// Layouts without an offset are read in the local time zone.
var layouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Parse converts a date-like value to a time.Time.
//
// Supported inputs:
//   - time.Time and *time.Time
//   - integers and floats, read as Unix milliseconds
//   - strings in RFC 3339 or ISO 8601 date / date-time form
//   - driver.Valuer implementations yielding any of the above, such as
//     sql.NullTime or pgtype.Timestamptz
func Parse(v any) (time.Time, error) {
	switch d := v.(type) {
	case time.Time:
		return d, nil
	case *time.Time:
		if d == nil {
			return time.Time{}, fmt.Errorf("%w: nil *time.Time", ErrInvalidDate)
		}
		return *d, nil
	case string:
		return parseString(d)
	case int:
		return time.UnixMilli(int64(d)), nil
	case int32:
		return time.UnixMilli(int64(d)), nil
	case int64:
		return time.UnixMilli(d), nil
	case uint:
		return time.UnixMilli(int64(d)), nil
	case uint32:
		return time.UnixMilli(int64(d)), nil
	case uint64:
		return time.UnixMilli(int64(d)), nil
	case float32:
		return parseFloat(float64(d))
	case float64:
		return parseFloat(d)
	case driver.Valuer:
		val, err := d.Value()
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %v", ErrInvalidDate, err)
		}
		if val == nil {
			return time.Time{}, fmt.Errorf("%w: null value", ErrInvalidDate)
		}
		if _, nested := val.(driver.Valuer); nested {
			return time.Time{}, fmt.Errorf("%w: %T", ErrUnsupportedType, v)
		}
		return Parse(val)
	default:
		return time.Time{}, fmt.Errorf("%w: %T", ErrUnsupportedType, v)
	}
}

func parseFloat(f float64) (time.Time, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return time.Time{}, fmt.Errorf("%w: %v", ErrInvalidDate, f)
	}
	return time.UnixMilli(int64(f)), nil
}

func parseString(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: empty string", ErrInvalidDate)
	}

	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
}
