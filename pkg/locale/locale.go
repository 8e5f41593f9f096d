package locale

import (
	"fmt"
	"strconv"

	"github.com/go-playground/locales"
	ut "github.com/go-playground/universal-translator"
	"golang.org/x/text/language"
)

// Locale bundles the CLDR calendar data of a language with its phrase catalog.
// It is immutable and safe for concurrent use.
type Locale struct {
	tag      language.Tag
	calendar locales.Translator
	phrases  ut.Translator
	meridiem Meridiem
}

// Tag returns the BCP 47 tag of the locale.
func (l *Locale) Tag() language.Tag {
	return l.tag
}

// String returns the locale name, e.g. "en" or "sk".
func (l *Locale) String() string {
	return l.calendar.Locale()
}

// Calendar exposes month and weekday names of the locale.
func (l *Locale) Calendar() locales.Translator {
	return l.calendar
}

// Phrase returns the pluralized phrase for key and count.
func (l *Locale) Phrase(key string, count int) (string, error) {
	if count == 1 {
		if s, err := l.phrases.T(key + "." + singleForm); err == nil {
			return s, nil
		}
	}

	s, err := l.phrases.C(key, float64(count), 0, strconv.Itoa(count))
	if err != nil {
		return "", fmt.Errorf("%w: %s (%s)", ErrMissingPhrase, key, l)
	}
	return s, nil
}

// Suffix wraps a distance phrase into its future ("in X") or past ("X ago") form.
func (l *Locale) Suffix(text string, future bool) (string, error) {
	key := keySuffixPast
	if future {
		key = keySuffixFuture
	}

	s, err := l.phrases.T(key, text)
	if err != nil {
		return "", fmt.Errorf("%w: %s (%s)", ErrMissingPhrase, key, l)
	}
	return s, nil
}

// Ordinal formats n as an ordinal number ("1st", "2e", ...).
// Falls back to the plain number when the catalog has no ordinal forms.
func (l *Locale) Ordinal(n int) string {
	s, err := l.phrases.O(keyOrdinal, float64(n), 0, strconv.Itoa(n))
	if err != nil {
		return strconv.Itoa(n)
	}
	return s
}

// DayPeriod returns the meridiem label for a 24-hour clock hour.
func (l *Locale) DayPeriod(hour int, long bool) string {
	am := hour < 12
	switch {
	case long && am:
		return l.meridiem.AMLong
	case long:
		return l.meridiem.PMLong
	case am:
		return l.meridiem.AM
	default:
		return l.meridiem.PM
	}
}
