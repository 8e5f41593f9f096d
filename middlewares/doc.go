// Package middlewares provides net/http middleware for locale-aware date rendering.
//
// All middlewares have the func(http.Handler) http.Handler shape and plug into
// chi or any other standard router.
//
// # Locale
//
// Locale resolves the request locale from the "lang" query parameter, the
// "lang" cookie and the Accept-Language header, in that order, falling back to
// the registry default. The result is stored in the request context and
// announced in the Content-Language response header.
//
//	r := chi.NewRouter()
//	r.Use(middlewares.Locale(locale.DefaultRegistry()))
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//		loc := middlewares.LocaleFromContext(r.Context())
//		...
//	}
//
// Use LocaleExtractor with logger.New to add the locale to request logs:
//
//	log := logger.New(middlewares.LocaleExtractor())
//
// # Date Filter
//
// DateFilter stores a request-scoped filter defaulting to the negotiated
// locale. Mount it after Locale:
//
//	r.Use(
//		middlewares.Locale(reg),
//		middlewares.DateFilter(filter),
//	)
//
//	s, err := middlewares.DateFilterFromContext(r.Context()).Format(order.PlacedAt, "for humans", datefilter.Options{})
//
// # Recover
//
// Recover converts handler panics into a 500 response and logs them at error
// level with an optional stack trace:
//
//	r.Use(middlewares.Recover(middlewares.WithRecoverLogger(log)))
package middlewares
