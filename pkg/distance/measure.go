package distance

import (
	"math"
	"time"
)

// Token names a relative distance phrase. Values match the phrase keys of the
// locale catalogs.
type Token string

const (
	LessThanXSeconds Token = "lessThanXSeconds"
	XSeconds         Token = "xSeconds"
	HalfAMinute      Token = "halfAMinute"
	LessThanXMinutes Token = "lessThanXMinutes"
	XMinutes         Token = "xMinutes"
	AboutXHours      Token = "aboutXHours"
	XHours           Token = "xHours"
	XDays            Token = "xDays"
	AboutXMonths     Token = "aboutXMonths"
	XMonths          Token = "xMonths"
	AboutXYears      Token = "aboutXYears"
	XYears           Token = "xYears"
	OverXYears       Token = "overXYears"
	AlmostXYears     Token = "almostXYears"
)

const (
	minutesInDay          = 1440
	minutesInAlmostTwoDay = 2520
	minutesInMonth        = 43200
	minutesInTwoMonths    = 86400
)

// Distance is a measured, not yet localized, relative distance.
type Distance struct {
	Token Token
	Count int
	// Future reports whether the measured date lies after the reference.
	Future bool
}

// Measure approximates the distance between the reference instant from and
// the date to.
//
//	0 ... 30 secs                  less than a minute
//	30 secs ... 1 min 30 secs      1 minute
//	1 min 30 secs ... 44 mins      [2..44] minutes
//	44 mins ... 89 mins            about 1 hour
//	89 mins ... 23 hrs 59 mins     about [2..24] hours
//	23 hrs 59 mins ... 41 hrs      1 day
//	41 hrs ... 29 days 23 hrs      [2..30] days
//	29 days 23 hrs ... 59 days     about [1..2] months
//	59 days ... 1 yr               [2..12] months
//	1 yr ... 1 yr 3 months         about 1 year
//	1 yr 3 months ... 1 yr 9 mths over 1 year
//	1 yr 9 months ... 2 yrs        almost 2 years
//
// With includeSeconds the first two minutes are split further into
// less than 5, 10 and 20 seconds, half a minute and less than a minute.
func Measure(from, to time.Time, includeSeconds bool) Distance {
	earlier, later := from, to
	future := to.After(from)
	if !future {
		earlier, later = to, from
	}

	seconds := int(later.Sub(earlier) / time.Second)
	minutes := round(float64(seconds) / 60)

	d := Distance{Future: future}

	switch {
	case minutes < 2:
		if includeSeconds {
			return measureSeconds(seconds, d)
		}
		if minutes == 0 {
			d.Token, d.Count = LessThanXMinutes, 1
		} else {
			d.Token, d.Count = XMinutes, minutes
		}
	case minutes < 45:
		d.Token, d.Count = XMinutes, minutes
	case minutes < 90:
		d.Token, d.Count = AboutXHours, 1
	case minutes < minutesInDay:
		d.Token, d.Count = AboutXHours, round(float64(minutes)/60)
	case minutes < minutesInAlmostTwoDay:
		d.Token, d.Count = XDays, 1
	case minutes < minutesInMonth:
		d.Token, d.Count = XDays, round(float64(minutes)/minutesInDay)
	case minutes < minutesInTwoMonths:
		d.Token, d.Count = AboutXMonths, round(float64(minutes)/minutesInMonth)
	default:
		months := monthsBetween(earlier, later)
		if months < 12 {
			d.Token, d.Count = XMonths, round(float64(minutes)/minutesInMonth)
			return d
		}

		years := months / 12
		switch rest := months % 12; {
		case rest < 3:
			d.Token, d.Count = AboutXYears, years
		case rest < 9:
			d.Token, d.Count = OverXYears, years
		default:
			d.Token, d.Count = AlmostXYears, years+1
		}
	}

	return d
}

func measureSeconds(seconds int, d Distance) Distance {
	switch {
	case seconds < 5:
		d.Token, d.Count = LessThanXSeconds, 5
	case seconds < 10:
		d.Token, d.Count = LessThanXSeconds, 10
	case seconds < 20:
		d.Token, d.Count = LessThanXSeconds, 20
	case seconds < 40:
		d.Token, d.Count = HalfAMinute, 1
	case seconds < 60:
		d.Token, d.Count = LessThanXMinutes, 1
	default:
		d.Token, d.Count = XMinutes, 1
	}
	return d
}

// monthsBetween returns the number of full calendar months from earlier to later.
func monthsBetween(earlier, later time.Time) int {
	later = later.In(earlier.Location())
	months := (later.Year()-earlier.Year())*12 + int(later.Month()) - int(earlier.Month())
	if months > 0 && later.AddDate(0, -months, 0).Before(earlier) {
		months--
	}
	return months
}

// round rounds half away from zero for the non-negative values used here.
func round(f float64) int {
	return int(math.Floor(f + 0.5))
}
