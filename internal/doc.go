// Package internal provides the core types and implementation of the date filter.
//
// This package is internal and should not be used directly. Import
// "github.com/dmitrymomot/datefilter" instead, which re-exports the public API.
//
// # Core Types
//
//   - Filter: formats dates with defaults captured at construction
//   - Options: presence-aware formatting options, merged without mutation
//   - Mode: Absolute{Pattern} or Relative{}, decided from the format string
//   - FilterRegistry, MethodRegistry: host extension points used by Install
//
// # Modes
//
// A format matching "for humans" (any letter case) selects relative mode,
// as does a filter whose default format matches it. Every other format is a
// token pattern handled by the absolute formatter:
//
//	f := internal.New(internal.WithDefaultFormat("DD.MM.YYYY"))
//	f.Format(t, "", internal.Options{})           // "05.03.2017"
//	f.Format(t, "for humans", internal.Options{}) // "3 days"
//
// # Options Merge
//
// Call-site options overlay the defaults field by field. Merge always returns
// a new value, so defaults stay untouched across calls and filters sharing the
// same defaults never observe each other's calls.
package internal
