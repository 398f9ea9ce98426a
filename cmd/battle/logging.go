package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// loggerSetup is the logger for one command plus the file behind it.
type loggerSetup struct {
	*log.Logger
	file *os.File
}

func (l loggerSetup) Close() {
	if l.file != nil {
		l.file.Close()
	}
}

// newLogger builds the logger from --log-file and --log-level. Without a
// file interactive commands discard logs, since the terminal belongs to
// the game; fallback is used otherwise.
func newLogger(fallback io.Writer) (loggerSetup, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return loggerSetup{}, fmt.Errorf("invalid --log-level: %w", err)
	}

	var setup loggerSetup
	out := fallback
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return loggerSetup{}, fmt.Errorf("cannot open log file: %w", err)
		}
		setup.file = f
		out = f
	}
	if out == nil {
		out = io.Discard
	}

	setup.Logger = log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "battle",
		Level:           level,
	})
	return setup, nil
}
