package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Setup initializes a zerolog.Logger on stderr. format can be "text"
// (human-friendly console) or "json" (structured); level is a zerolog
// level name and falls back to info when empty or unknown.
func Setup(format, level string) zerolog.Logger {
	log, err := New(os.Stderr, format, level)
	if err != nil {
		log.Warn().Err(err).Msg("falling back to info level")
	}
	return log
}

// New builds a logger writing to w. An unparseable level yields an
// info-level logger and an error.
func New(w io.Writer, format, level string) (zerolog.Logger, error) {
	if format == "text" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: !isTerminal(w)}
	}
	log := zerolog.New(w).With().Timestamp().Logger()

	if level == "" {
		return log.Level(zerolog.InfoLevel), nil
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		return log.Level(zerolog.InfoLevel), fmt.Errorf("unknown log level %q", level)
	}
	return log.Level(lvl), nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	return err == nil && info.Mode()&os.ModeCharDevice != 0
}
