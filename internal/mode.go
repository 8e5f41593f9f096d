package internal

import "regexp"

// humansPattern selects relative formatting.
var humansPattern = regexp.MustCompile(`(?i)for humans`)

// Mode is the formatting strategy of a call: Absolute or Relative.
type Mode interface {
	isMode()
}

// Absolute formats the date with a token pattern.
// An empty pattern means the formatter's default pattern.
type Absolute struct {
	Pattern string
}

// Relative formats the distance between a reference instant and the date.
type Relative struct{}

func (Absolute) isMode() {}
func (Relative) isMode() {}

// IsRelative reports whether format requests relative ("for humans") formatting.
func IsRelative(format string) bool {
	return humansPattern.MatchString(format)
}

// ParseMode converts a format string into a Mode.
func ParseMode(format string) Mode {
	if IsRelative(format) {
		return Relative{}
	}
	return Absolute{Pattern: format}
}

// resolveMode picks the mode of a call. A relative default wins over any
// call format; otherwise a non-empty call format replaces the default.
func resolveMode(format string, def Mode) Mode {
	if _, ok := def.(Relative); ok {
		return def
	}
	if format == "" {
		return def
	}
	return ParseMode(format)
}
