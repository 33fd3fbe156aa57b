package lcd1602

import (
	"os"

	"github.com/rs/zerolog"
)

var logger = zerolog.Nop()

func init() {
	if os.Getenv("LCD_DEBUG") != "" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(zerolog.DebugLevel).
			With().Timestamp().Str("component", "lcd1602").
			Logger()
	}
}

// SetLogger replaces the package logger.
func SetLogger(l zerolog.Logger) {
	logger = l
}
