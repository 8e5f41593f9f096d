package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Output encodings accepted by Config.Format.
const (
	FormatJSON = "json"
	FormatText = "text"
)

// Config selects the level and encoding of the stdout handler.
type Config struct {
	Level  slog.Level `env:"LOG_LEVEL" envDefault:"info"`
	Format string     `env:"LOG_FORMAT" envDefault:"json"`
}

// New creates a JSON logger writing info and above to stdout.
func New(extractors ...ContextExtractor) *slog.Logger {
	return NewWithConfig(Config{Level: slog.LevelInfo, Format: FormatJSON}, os.Stdout, extractors...)
}

// NewWithConfig creates a logger writing to w with the configured level and format.
// Unknown formats fall back to JSON.
func NewWithConfig(cfg Config, w io.Writer, extractors ...ContextExtractor) *slog.Logger {
	return slog.New(NewLogHandlerDecorator(newHandler(cfg, w), extractors...))
}

func newHandler(cfg Config, w io.Writer) slog.Handler {
	opts := &slog.HandlerOptions{Level: cfg.Level}
	if strings.EqualFold(cfg.Format, FormatText) {
		return slog.NewTextHandler(w, opts)
	}
	return slog.NewJSONHandler(w, opts)
}
