package log

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	charmlog "github.com/charmbracelet/log"

	"github.com/MacroPower/layoutfix/pkg/layouterrors"
)

const (
	JSONFormat   = "json"
	TextFormat   = "text"
	LogfmtFormat = "logfmt"
)

// CreateHandler creates a [slog.Handler] writing to w from level and format
// strings, as passed to the --log_level and --log_format flags.
func CreateHandler(w io.Writer, logLevel, logFormat string) (slog.Handler, error) {
	level, err := GetLevel(logLevel)
	if err != nil {
		return nil, err
	}

	var formatter charmlog.Formatter

	switch strings.ToLower(logFormat) {
	case JSONFormat:
		return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}), nil
	case TextFormat, "":
		formatter = charmlog.TextFormatter
	case LogfmtFormat:
		formatter = charmlog.LogfmtFormatter
	default:
		return nil, fmt.Errorf("%w: unknown log format %q", layouterrors.ErrInvalidArguments, logFormat)
	}

	return charmlog.NewWithOptions(w, charmlog.Options{
		Level:           charmlog.Level(level),
		Formatter:       formatter,
		ReportTimestamp: formatter == charmlog.LogfmtFormatter,
	}), nil
}

// GetLevel parses a log level name.
func GetLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "error", "fatal", "panic":
		return slog.LevelError, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "debug", "trace":
		return slog.LevelDebug, nil
	default:
		return slog.LevelInfo, fmt.Errorf("%w: unknown log level %q", layouterrors.ErrInvalidArguments, level)
	}
}

// SetDefault installs a handler created by [CreateHandler] as the default
// [slog] logger. It panics on invalid input and is meant for hard-coded
// defaults in main packages.
func SetDefault(w io.Writer, logLevel, logFormat string) {
	h, err := CreateHandler(w, logLevel, logFormat)
	if err != nil {
		panic(err)
	}

	slog.SetDefault(slog.New(h))
}
