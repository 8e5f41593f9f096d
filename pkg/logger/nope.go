package logger

import "log/slog"

// NewNope returns a logger that discards everything.
// Filters, engines and middlewares use it until a real logger is supplied.
func NewNope() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
