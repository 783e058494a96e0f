package main

import (
	"errors"

	svg2png "github.com/alnah/go-svg2png"
	"github.com/alnah/go-svg2png/internal/config"
)

// Exit codes for the svg2png CLI.
// A missing renderer and a failed render share code 1.
const (
	ExitSuccess = 0 // PNG written
	ExitFailure = 1 // DependencyMissing or RenderError
	ExitUsage   = 2 // Invalid flags, config, or command
)

// ErrUsage marks command line errors (bad flags, extra arguments).
var ErrUsage = errors.New("invalid usage")

// exitCodeFor returns the exit code for an error.
// It uses errors.Is, so callers must wrap with %w.
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Conversion outcomes first: a render error may wrap a validation sentinel
	if errors.Is(err, svg2png.ErrRendererUnavailable) ||
		errors.Is(err, svg2png.ErrRender) {
		return ExitFailure
	}

	if errors.Is(err, ErrUsage) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrInvalidConfig) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, svg2png.ErrUnknownRenderer) ||
		errors.Is(err, svg2png.ErrInvalidDimensions) {
		return ExitUsage
	}

	return ExitFailure
}
