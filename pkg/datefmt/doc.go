// Package datefmt formats dates with date-fns style token patterns and converts
// loosely typed values into time.Time.
//
// # Basic Usage
//
//	s, err := datefmt.Format(time.Now(), "Do MMMM YYYY, h:mm a", datefmt.Options{})
//	// "5th March 2017, 9:04 am"
//
//	s, err = datefmt.Format(t, "dddd D. MMMM", datefmt.Options{Locale: "de"})
//	// "Sonntag 5. März"
//
// # Escaping
//
// Wrap literal text in square brackets or prefix single characters with a
// backslash:
//
//	datefmt.Format(t, "[Today is] dddd", datefmt.Options{})
//
// # Parsing
//
// Parse accepts time values, Unix milliseconds, ISO 8601 strings and
// database/sql driver values, including pgx nullable types:
//
//	t, err := datefmt.Parse(pgtype.Timestamptz{Time: now, Valid: true})
package datefmt
