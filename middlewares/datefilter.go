package middlewares

import (
	"context"
	"net/http"

	"github.com/dmitrymomot/datefilter"
	"github.com/dmitrymomot/datefilter/pkg/locale"
)

type dateFilterKey struct{}

// DateFilter returns middleware that stores a request-scoped copy of f in the
// context. When the Locale middleware ran first, the copy defaults to the
// negotiated locale; call-site options still win.
func DateFilter(f *datefilter.Filter) func(http.Handler) http.Handler {
	if f == nil {
		f = datefilter.Default
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			scoped := f
			if loc, ok := locale.FromContext(r.Context()); ok {
				scoped = f.WithOptions(datefilter.Options{Locale: loc.String()})
			}
			ctx := context.WithValue(r.Context(), dateFilterKey{}, scoped)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// DateFilterFromContext returns the filter stored by DateFilter, or
// datefilter.Default when the middleware is not used.
func DateFilterFromContext(ctx context.Context) *datefilter.Filter {
	if f, ok := ctx.Value(dateFilterKey{}).(*datefilter.Filter); ok {
		return f
	}
	return datefilter.Default
}
