// Package locale provides the language data used to format dates: CLDR month
// and weekday names, plural rules, and phrase catalogs for relative distances.
//
// Calendar data comes from github.com/go-playground/locales. Phrases are
// registered on github.com/go-playground/universal-translator translators so
// that pluralization follows each language's CLDR cardinal and ordinal rules.
// Tags are parsed and matched with golang.org/x/text/language.
//
// # Basic Usage
//
//	reg := locale.DefaultRegistry()
//
//	sk, err := reg.Lookup("sk-SK")
//	if err != nil {
//		return err
//	}
//	fmt.Println(sk.Calendar().MonthWide(time.March))
//
//	en, _ := reg.Lookup("en")
//	phrase, _ := en.Phrase("xDays", 3)   // "3 days"
//	out, _ := en.Suffix(phrase, false)   // "3 days ago"
//
// # Catalogs
//
// The registry ships English, Spanish and French catalogs. Calendars without a
// catalog (German, Slovak and Arabic by default) format month and weekday names
// natively and borrow phrases from the default locale.
//
// Additional catalogs are YAML files named after the language:
//
//	distance:
//	  xDays:
//	    one: "{0} day"
//	    other: "{0} days"
//	suffix:
//	  future: "in {0}"
//	  past: "{0} ago"
//
//	reg, err := locale.NewRegistry(
//		locale.WithCalendars(pl.New()),
//		locale.WithCatalogFS(catalogsFS),
//	)
//
// # Accept-Language
//
// Match picks the best registered locale for an HTTP Accept-Language header:
//
//	loc := reg.Match("sk-SK,sk;q=0.9,en;q=0.8")
//
// # Thread Safety
//
// Registry and Locale are immutable after construction and safe for concurrent use.
package locale
