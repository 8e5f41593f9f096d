package view

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// DateFunc formats a date with instance-method argument order.
// (*datefilter.Filter).Call satisfies it.
type DateFunc func(date any, args ...any) (string, error)

// Date returns a templ component writing the escaped result of fn:
//
//	@view.Date(filter.Call, post.CreatedAt, "for humans")
//
// When the render context carries a negotiated locale and args hold no
// options, the locale is passed along as options.
func Date(fn DateFunc, date any, args ...any) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		s, err := fn(date, withContextLocale(ctx, args)...)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, templ.EscapeString(s))
		return err
	})
}

func withContextLocale(ctx context.Context, args []any) []any {
	inst := Instance{ctx: ctx}
	tag := inst.Locale()
	if tag == "" || len(args) > 1 {
		return args
	}
	if len(args) == 1 {
		if _, isFormat := args[0].(string); !isFormat {
			return args
		}
		return []any{args[0], map[string]any{"locale": tag}}
	}
	return []any{map[string]any{"locale": tag}}
}
