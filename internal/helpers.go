package internal

import (
	"database/sql/driver"
	"math"
	"reflect"
	"strconv"
	"time"
)

// IsFalsy reports whether a date value is a placeholder that renders as an
// empty string: nil, nil pointers, empty strings, false, numeric zero, NaN,
// the zero time and SQL NULL values.
func IsFalsy(v any) bool {
	switch d := v.(type) {
	case nil:
		return true
	case string:
		return d == ""
	case bool:
		return !d
	case float32:
		return d == 0 || math.IsNaN(float64(d))
	case float64:
		return d == 0 || math.IsNaN(d)
	case time.Time:
		return d.IsZero()
	case *time.Time:
		return d == nil || d.IsZero()
	case driver.Valuer:
		if isNilPointer(v) {
			return true
		}
		val, err := d.Value()
		return err == nil && val == nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() == 0
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// convertValue converts a template argument to the target type T.
// Strings are parsed, values of type T are returned as-is.
// Returns the converted value and true on success, or the zero value and false on failure.
func convertValue[T string | bool](v any) (T, bool) {
	var zero T
	if t, ok := v.(T); ok {
		return t, true
	}

	raw, ok := v.(string)
	if !ok {
		return zero, false
	}

	switch any(zero).(type) {
	case bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return zero, false
		}
		return any(b).(T), true
	default:
		return any(raw).(T), true
	}
}
