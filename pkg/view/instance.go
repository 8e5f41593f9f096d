package view

import (
	"context"
	"fmt"
	"reflect"

	"github.com/dmitrymomot/datefilter/pkg/locale"
)

// Instance is the value every view and page is executed with.
// Templates reach the caller's data through .Data and registered instance
// methods through .Call.
type Instance struct {
	Data any

	ctx     context.Context
	methods map[string]reflect.Value
}

// Context returns the context of the render call.
func (i *Instance) Context() context.Context {
	if i.ctx == nil {
		return context.Background()
	}
	return i.ctx
}

// Locale returns the request locale tag stored in the render context,
// or an empty string when none was negotiated.
func (i *Instance) Locale() string {
	if loc, ok := locale.FromContext(i.Context()); ok {
		return loc.String()
	}
	return ""
}

// Call invokes the instance method registered under name with args.
func (i *Instance) Call(name string, args ...any) (any, error) {
	fn, ok := i.methods[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, name)
	}

	in, err := callArgs(name, fn.Type(), args)
	if err != nil {
		return nil, err
	}

	out := fn.Call(in)
	if len(out) == 2 && !out[1].IsNil() {
		return nil, out[1].Interface().(error)
	}
	return out[0].Interface(), nil
}

// callArgs converts template arguments to the parameter types of a method.
func callArgs(name string, t reflect.Type, args []any) ([]reflect.Value, error) {
	numIn := t.NumIn()
	if t.IsVariadic() {
		if len(args) < numIn-1 {
			return nil, fmt.Errorf("%w: %s: want at least %d arguments, got %d", ErrRenderFailed, name, numIn-1, len(args))
		}
	} else if len(args) != numIn {
		return nil, fmt.Errorf("%w: %s: want %d arguments, got %d", ErrRenderFailed, name, numIn, len(args))
	}

	in := make([]reflect.Value, len(args))
	for idx, arg := range args {
		var pt reflect.Type
		if t.IsVariadic() && idx >= numIn-1 {
			pt = t.In(numIn - 1).Elem()
		} else {
			pt = t.In(idx)
		}

		if arg == nil {
			in[idx] = reflect.Zero(pt)
			continue
		}

		v := reflect.ValueOf(arg)
		if !v.Type().AssignableTo(pt) {
			return nil, fmt.Errorf("%w: %s: argument %d is %s, want %s", ErrRenderFailed, name, idx, v.Type(), pt)
		}
		in[idx] = v
	}
	return in, nil
}
