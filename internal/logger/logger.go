package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/rhyrak/go-timetable/internal/config"
)

// New creates a zerolog logger tagged with component. Console output is used
// when cfg asks for it or APP_ENV is "dev"; JSON otherwise.
func New(component string, cfg config.LoggingConfig) zerolog.Logger {
	return NewWithWriter(os.Stdout, component, cfg)
}

func NewWithWriter(out io.Writer, component string, cfg config.LoggingConfig) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}
	if cfg.Format == "console" || strings.ToLower(os.Getenv("APP_ENV")) == "dev" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}
	return zerolog.New(out).Level(level).With().Timestamp().Str("component", component).Logger()
}
