package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"golang.org/x/term"
)

// Options controls the process-wide logger built by Init.
type Options struct {
	Level      string
	Format     string // "json" or "text"
	OutputPath string // "stdout", "stderr" or a file path
	// Verbose shows the caller location on every level instead of warn and above.
	Verbose bool
}

var (
	defaultLogger *slog.Logger
	level         = new(slog.LevelVar)
)

func Init(opts Options) error {
	level.Set(ParseLevel(opts.Level))

	w, err := openOutput(opts.OutputPath)
	if err != nil {
		return err
	}

	sourceFrom := slog.LevelWarn
	if opts.Verbose {
		sourceFrom = slog.LevelDebug
	}

	defaultLogger = slog.New(newSourceHandler(newBaseHandler(w, opts.Format), sourceFrom))
	slog.SetDefault(defaultLogger)
	return nil
}

func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func SetLevel(l slog.Level) {
	level.Set(l)
}

// Get returns the process logger, building a text logger on stdout if Init was never called.
func Get() *slog.Logger {
	if defaultLogger == nil {
		defaultLogger = slog.New(newSourceHandler(newBaseHandler(os.Stdout, "text"), slog.LevelWarn))
	}
	return defaultLogger
}

func openOutput(path string) (io.Writer, error) {
	switch strings.ToLower(path) {
	case "", "stdout":
		return os.Stdout, nil
	case "stderr":
		return os.Stderr, nil
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}

func newBaseHandler(w io.Writer, format string) slog.Handler {
	if format == "json" {
		return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	}
	return tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.DateTime,
		NoColor:    !isTerminal(w),
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if err, ok := a.Value.Any().(error); ok && a.Key == "error" {
				return tint.Err(err)
			}
			return a
		},
	})
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
