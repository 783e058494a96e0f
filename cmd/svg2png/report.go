package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"

	svg2png "github.com/alnah/go-svg2png"
	"github.com/alnah/go-svg2png/internal/hints"
)

const onlineConverterURL = "https://convertio.co/svg-png/"

var (
	colorRed  = lipgloss.Color("167")
	colorBlue = lipgloss.Color("75")
	colorGray = lipgloss.Color("245")
)

// reporter prints the user-facing status lines. Colors are emitted only
// when the writer is a terminal.
type reporter struct {
	stdout, stderr io.Writer
	heading        lipgloss.Style
	link           lipgloss.Style
	reason         lipgloss.Style
}

func newReporter(env *Environment) *reporter {
	errRenderer := lipgloss.NewRenderer(env.Stderr)
	return &reporter{
		stdout:  env.Stdout,
		stderr:  env.Stderr,
		heading: errRenderer.NewStyle().Foreground(colorRed),
		link:    errRenderer.NewStyle().Foreground(colorBlue).Underline(true),
		reason:  errRenderer.NewStyle().Foreground(colorGray),
	}
}

// convert prints the message for one of the three conversion outcomes.
func (r *reporter) convert(s *settings, res *svg2png.Result, err error) {
	switch svg2png.OutcomeOf(err) {
	case svg2png.OutcomeSuccess:
		fmt.Fprintf(r.stdout, "✅ PNG created successfully: %s\n", res.Destination)
	case svg2png.OutcomeDependencyMissing:
		r.dependencyMissing(s, err)
	default:
		r.renderError(s, err)
	}
}

func (r *reporter) dependencyMissing(s *settings, err error) {
	name := s.renderer
	if name == "" {
		name = svg2png.DefaultRenderer
	}

	fmt.Fprintf(r.stderr, "❌ %s not installed.\n", name)
	fmt.Fprintln(r.stderr, r.reason.Render(err.Error())+hints.ForRendererMissing(name))
	if cmd := hints.InstallCommand(name); cmd != "" {
		fmt.Fprintf(r.stderr, "Run: %s\n", cmd)
	}
	fmt.Fprintln(r.stderr)
	fmt.Fprintln(r.stderr, r.heading.Render("Or use one of these methods:"))
	r.alternatives(s, 3)
}

func (r *reporter) renderError(s *settings, err error) {
	fmt.Fprintf(r.stderr, "❌ Error: %v%s\n", err, hintFor(err))
	fmt.Fprintln(r.stderr)
	fmt.Fprintln(r.stderr, r.heading.Render("Alternative methods:"))
	r.alternatives(s, 2)
}

// alternatives prints the first n manual export methods.
func (r *reporter) alternatives(s *settings, n int) {
	lines := []string{
		fmt.Sprintf("1. Open %s in Preview (Mac) → File → Export → PNG", filepath.Base(s.source)),
		"2. Use online converter: " + r.link.Render(onlineConverterURL),
		fmt.Sprintf("3. Open %s in browser and take screenshot", filepath.Base(s.preview)),
	}
	for _, line := range lines[:n] {
		fmt.Fprintln(r.stderr, line)
	}
}

// failure prints a generic error line for commands other than convert.
func (r *reporter) failure(err error) {
	fmt.Fprintf(r.stderr, "❌ Error: %v\n", err)
}

func (r *reporter) previewWritten(path string) {
	fmt.Fprintf(r.stdout, "✅ Preview written: %s\n", path)
	fmt.Fprintln(r.stdout, "Open it in a browser and take a screenshot.")
}

// hintFor returns actionable guidance for known render failures.
func hintFor(err error) string {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return hints.ForTimeout()
	case errors.Is(err, svg2png.ErrBrowserConnect):
		return hints.ForBrowserConnect()
	default:
		return ""
	}
}
