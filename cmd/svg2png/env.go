package main

import (
	"io"
	"os"

	svg2png "github.com/alnah/go-svg2png"
	"github.com/alnah/go-svg2png/internal/fileutil"
)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Stdout io.Writer
	Stderr io.Writer

	// ExecutableDir locates the default base directory.
	ExecutableDir func() (string, error)

	// Renderer replaces the registry lookup when non-nil.
	Renderer svg2png.Renderer
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Stdout:        os.Stdout,
		Stderr:        os.Stderr,
		ExecutableDir: fileutil.ExecutableDir,
	}
}
