package locale

import "errors"

var (
	ErrUnknownLocale  = errors.New("locale: unknown locale")
	ErrMissingPhrase  = errors.New("locale: missing phrase")
	ErrInvalidCatalog = errors.New("locale: invalid catalog")
	ErrNoCalendars    = errors.New("locale: no calendars registered")
)
