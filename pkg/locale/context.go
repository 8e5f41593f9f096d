package locale

import "context"

type localeCtxKey struct{}

// WithContext returns a copy of ctx carrying loc.
func WithContext(ctx context.Context, loc *Locale) context.Context {
	return context.WithValue(ctx, localeCtxKey{}, loc)
}

// FromContext returns the locale stored by WithContext.
func FromContext(ctx context.Context) (*Locale, bool) {
	if ctx == nil {
		return nil, false
	}
	loc, ok := ctx.Value(localeCtxKey{}).(*Locale)
	return loc, ok && loc != nil
}
