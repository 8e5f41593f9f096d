package datefmt

import (
	"strconv"
	"strings"
	"time"

	"github.com/dmitrymomot/datefilter/pkg/locale"
)

// DefaultPattern renders an ISO 8601 timestamp with milliseconds and offset.
const DefaultPattern = "YYYY-MM-DDTHH:mm:ss.SSSZ"

// Options control a single Format call.
type Options struct {
	// Locale selects month names, weekday names, ordinals and day periods.
	// Empty means the registry default.
	Locale string
	// Location converts the date before formatting. Nil keeps the date's own zone.
	Location *time.Location
}

// Formatter renders dates using date-fns style token patterns.
// It is immutable and safe for concurrent use.
type Formatter struct {
	locales *locale.Registry
}

// Option configures a Formatter.
type Option func(*Formatter)

// WithRegistry sets the locale registry used for names and ordinals.
func WithRegistry(reg *locale.Registry) Option {
	return func(f *Formatter) {
		if reg != nil {
			f.locales = reg
		}
	}
}

// New creates a Formatter backed by the default locale registry.
func New(opts ...Option) *Formatter {
	f := &Formatter{}
	for _, opt := range opts {
		opt(f)
	}
	if f.locales == nil {
		f.locales = locale.DefaultRegistry()
	}
	return f
}

// Format renders t according to pattern. An empty pattern uses DefaultPattern.
//
// Supported tokens:
//
//	Month         M Mo MM MMM MMMM
//	Quarter       Q Qo
//	Day of month  D Do DD
//	Day of year   DDD DDDo DDDD
//	Day of week   d do dd ddd dddd
//	ISO weekday   E
//	ISO week      W Wo WW
//	Year          YY YYYY
//	ISO year      GG GGGG
//	AM/PM         A a aa
//	Hour          H HH h hh
//	Minute        m mm
//	Second        s ss
//	Fraction      S SS SSS
//	Offset        Z ZZ
//	Timestamp     X x
//
// Text inside square brackets is copied verbatim, as is any character
// preceded by a backslash.
func (f *Formatter) Format(t time.Time, pattern string, opts Options) (string, error) {
	loc, err := f.locales.Lookup(opts.Locale)
	if err != nil {
		return "", err
	}
	if opts.Location != nil {
		t = t.In(opts.Location)
	}
	if pattern == "" {
		pattern = DefaultPattern
	}
	return render(t, pattern, loc), nil
}

var defaultFormatter = New()

// Format renders t with the default Formatter.
func Format(t time.Time, pattern string, opts Options) (string, error) {
	return defaultFormatter.Format(t, pattern, opts)
}

// tokens are matched longest first at every position of the pattern.
var tokens = []string{
	"DDDD", "DDDo", "GGGG", "MMMM", "YYYY", "dddd",
	"DDD", "MMM", "SSS", "ddd",
	"DD", "Do", "GG", "HH", "MM", "Mo", "Qo", "SS", "WW", "Wo", "YY", "ZZ",
	"aa", "dd", "do", "hh", "mm", "ss",
	"A", "D", "E", "H", "M", "Q", "S", "W", "X", "Z", "a", "d", "h", "m", "s", "x",
}

func render(t time.Time, pattern string, loc *locale.Locale) string {
	var b strings.Builder
	b.Grow(len(pattern) + 8)

	for i := 0; i < len(pattern); {
		switch pattern[i] {
		case '[':
			if end := strings.IndexByte(pattern[i+1:], ']'); end >= 0 {
				b.WriteString(pattern[i+1 : i+1+end])
				i += end + 2
				continue
			}
		case '\\':
			if i+1 < len(pattern) {
				b.WriteByte(pattern[i+1])
				i += 2
				continue
			}
		}

		if tok := matchToken(pattern[i:]); tok != "" {
			b.WriteString(formatToken(t, tok, loc))
			i += len(tok)
			continue
		}

		b.WriteByte(pattern[i])
		i++
	}

	return b.String()
}

func matchToken(s string) string {
	for _, tok := range tokens {
		if strings.HasPrefix(s, tok) {
			return tok
		}
	}
	return ""
}

func formatToken(t time.Time, tok string, loc *locale.Locale) string {
	cal := loc.Calendar()

	switch tok {
	// Month
	case "M":
		return strconv.Itoa(int(t.Month()))
	case "Mo":
		return loc.Ordinal(int(t.Month()))
	case "MM":
		return pad(int(t.Month()), 2)
	case "MMM":
		return cal.MonthAbbreviated(t.Month())
	case "MMMM":
		return cal.MonthWide(t.Month())

	// Quarter
	case "Q":
		return strconv.Itoa(quarter(t))
	case "Qo":
		return loc.Ordinal(quarter(t))

	// Day of month
	case "D":
		return strconv.Itoa(t.Day())
	case "Do":
		return loc.Ordinal(t.Day())
	case "DD":
		return pad(t.Day(), 2)

	// Day of year
	case "DDD":
		return strconv.Itoa(t.YearDay())
	case "DDDo":
		return loc.Ordinal(t.YearDay())
	case "DDDD":
		return pad(t.YearDay(), 3)

	// Day of week
	case "d":
		return strconv.Itoa(int(t.Weekday()))
	case "do":
		return loc.Ordinal(int(t.Weekday()))
	case "dd":
		return cal.WeekdayShort(t.Weekday())
	case "ddd":
		return cal.WeekdayAbbreviated(t.Weekday())
	case "dddd":
		return cal.WeekdayWide(t.Weekday())
	case "E":
		return strconv.Itoa(isoWeekday(t))

	// ISO week
	case "W":
		_, w := t.ISOWeek()
		return strconv.Itoa(w)
	case "Wo":
		_, w := t.ISOWeek()
		return loc.Ordinal(w)
	case "WW":
		_, w := t.ISOWeek()
		return pad(w, 2)

	// Year
	case "YY":
		return pad(t.Year()%100, 2)
	case "YYYY":
		return pad(t.Year(), 4)
	case "GG":
		y, _ := t.ISOWeek()
		return pad(y%100, 2)
	case "GGGG":
		y, _ := t.ISOWeek()
		return pad(y, 4)

	// Day period
	case "A":
		return loc.DayPeriod(t.Hour(), false)
	case "a":
		return strings.ToLower(loc.DayPeriod(t.Hour(), false))
	case "aa":
		return loc.DayPeriod(t.Hour(), true)

	// Time
	case "H":
		return strconv.Itoa(t.Hour())
	case "HH":
		return pad(t.Hour(), 2)
	case "h":
		return strconv.Itoa(hour12(t))
	case "hh":
		return pad(hour12(t), 2)
	case "m":
		return strconv.Itoa(t.Minute())
	case "mm":
		return pad(t.Minute(), 2)
	case "s":
		return strconv.Itoa(t.Second())
	case "ss":
		return pad(t.Second(), 2)
	case "S":
		return strconv.Itoa(millis(t) / 100)
	case "SS":
		return pad(millis(t)/10, 2)
	case "SSS":
		return pad(millis(t), 3)

	// Offset and timestamps
	case "Z":
		return t.Format("-07:00")
	case "ZZ":
		return t.Format("-0700")
	case "X":
		return strconv.FormatInt(t.Unix(), 10)
	case "x":
		return strconv.FormatInt(t.UnixMilli(), 10)
	}

	return tok
}

func quarter(t time.Time) int {
	return (int(t.Month())-1)/3 + 1
}

func isoWeekday(t time.Time) int {
	if wd := int(t.Weekday()); wd != 0 {
		return wd
	}
	return 7
}

func hour12(t time.Time) int {
	if h := t.Hour() % 12; h != 0 {
		return h
	}
	return 12
}

func millis(t time.Time) int {
	return t.Nanosecond() / int(time.Millisecond)
}

func pad(n, width int) string {
	s := strconv.Itoa(abs(n))
	if len(s) < width {
		s = strings.Repeat("0", width-len(s)) + s
	}
	if n < 0 {
		return "-" + s
	}
	return s
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
