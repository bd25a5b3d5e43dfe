package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init zet de globale zerolog logger op; GIN_MODE=release geeft JSON, anders console output.
func Init() {
	InitWith(os.Stdout, os.Getenv("LOG_LEVEL"), os.Getenv("GIN_MODE") == "release")
}

// InitWith is Init met expliciete uitvoer, zodat de CLI naar stderr kan loggen
func InitWith(out io.Writer, level string, jsonOutput bool) {
	var l zerolog.Logger
	if jsonOutput {
		l = zerolog.New(out)
	} else {
		l = zerolog.New(zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339})
	}
	log.Logger = l.With().Timestamp().Logger().Level(parseLevel(level))
}

func parseLevel(s string) zerolog.Level {
	s = strings.TrimSpace(s)
	if s == "" {
		return zerolog.InfoLevel
	}
	level, err := zerolog.ParseLevel(strings.ToLower(s))
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}
