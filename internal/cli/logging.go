package cli

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// newLogger builds the stderr console logger. Command output goes to
// stdout, diagnostics stay on stderr so JSON output remains parseable.
func newLogger(level string) zerolog.Logger {
	lvl := zerolog.WarnLevel
	switch strings.ToLower(level) {
	case "debug":
		lvl = zerolog.DebugLevel
	case "info":
		lvl = zerolog.InfoLevel
	case "warn", "warning":
		lvl = zerolog.WarnLevel
	case "error", "err":
		lvl = zerolog.ErrorLevel
	}
	w := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}
