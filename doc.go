// Package datefilter provides a date formatting filter for Go templates.
//
// A filter formats any date-like value either with a token pattern
// ("DD MMMM YYYY") or, for the format "for humans", as the distance to the
// current time ("3 days ago"). Defaults for the format and the options are
// captured when the filter is built and overlaid per call.
//
// # Quick Start
//
// Add the filter to a template's function map:
//
//	tmpl := template.Must(template.New("post").
//	    Funcs(template.FuncMap(datefilter.Funcs())).
//	    Parse(`{{ .CreatedAt | date "Do MMMM YYYY" }}`))
//
// Template pipelines pass the piped value last, so the date comes after the
// format and options:
//
//	{{ .CreatedAt | date }}
//	{{ .CreatedAt | date "DD.MM.YYYY HH:mm" }}
//	{{ .CreatedAt | date "for humans" (dateOptions "addSuffix" true "locale" "es") }}
//
// # Defaults
//
//	f := datefilter.New(
//	    datefilter.WithDefaultFormat("for humans"),
//	    datefilter.WithDefaultOptions(datefilter.Options{AddSuffix: datefilter.Bool(true)}),
//	)
//
// A "for humans" default makes every call relative, even when a call passes
// its own format. Call-site options override defaults field by field without
// modifying them.
//
// # Falsy Dates
//
// nil, "", 0, NaN, false, the zero time.Time and SQL NULL values
// (sql.NullTime, pgtype.Timestamptz) render as an empty string.
//
// # Installing into a Host
//
// Install registers the filter as "date" on a FilterRegistry and as the
// "$date" instance method on a MethodRegistry. The view package provides an
// html/template engine implementing both:
//
//	engine := view.New(templates)
//	if _, err := datefilter.Install(engine, engine); err != nil {
//	    return err
//	}
//
//	// page.html
//	// {{ .Call "$date" .Data.PublishedAt "for humans" }}
//
// # Token Patterns and Locales
//
// Patterns are rendered by package datefmt, relative distances by package
// distance. Both resolve languages through package locale, which ships
// English, Spanish and French phrases and CLDR calendar names for more
// languages. Use WithLocales to register additional ones.
//
// # Configuration
//
// Config carries env tags for github.com/caarlos0/env:
//
//	DATE_DEFAULT_FORMAT   default format or "for humans"
//	DATE_LOCALE           default locale (en)
//	DATE_TIMEZONE         IANA zone applied before absolute formatting
//	DATE_ADD_SUFFIX       "in X" / "X ago" in relative mode (true)
//	DATE_INCLUDE_SECONDS  sub-minute precision in relative mode (false)
package datefilter
