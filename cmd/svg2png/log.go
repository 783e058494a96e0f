package main

import (
	"io"

	"github.com/charmbracelet/log"
)

// newLogger creates the diagnostic logger. Only warnings and errors are
// shown unless verbose is set, so the default run prints just its status.
func newLogger(w io.Writer, verbose bool) *log.Logger {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
		Prefix:          "svg2png",
	})
}
