package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	flag "github.com/spf13/pflag"

	svg2png "github.com/alnah/go-svg2png"
	"github.com/alnah/go-svg2png/internal/config"
)

// settings is the merged result of defaults, config file and flags.
// Paths are still relative to the base directory.
type settings struct {
	dir      string
	source   string
	dest     string
	preview  string
	width    int
	height   int
	renderer string
	timeout  time.Duration
	strict   bool
}

// resolveSettings merges flags over the config file (or the defaults when
// no --config is given) and validates the result.
func resolveSettings(flags *convertFlags) (*settings, error) {
	cfg := config.DefaultConfig()
	if flags.config != "" {
		var err error
		cfg, err = config.LoadConfig(flags.config)
		if err != nil {
			return nil, err
		}
	}

	mergeFlags(flags, cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	timeout, err := cfg.TimeoutDuration()
	if err != nil {
		return nil, err
	}

	return &settings{
		dir:      flags.dir,
		source:   cfg.Source,
		dest:     cfg.Destination,
		preview:  cfg.Preview,
		width:    cfg.Width,
		height:   cfg.Height,
		renderer: cfg.Renderer,
		timeout:  timeout,
		strict:   cfg.Strict,
	}, nil
}

// mergeFlags overrides config values with explicitly set flags.
func mergeFlags(flags *convertFlags, cfg *config.Config) {
	if flags.input != "" {
		cfg.Source = flags.input
	}
	if flags.output != "" {
		cfg.Destination = flags.output
	}
	if flags.preview != "" {
		cfg.Preview = flags.preview
	}
	if flags.width != 0 {
		cfg.Width = flags.width
	}
	if flags.height != 0 {
		cfg.Height = flags.height
	}
	if flags.renderer != "" {
		cfg.Renderer = flags.renderer
	}
	if flags.timeout != "" {
		cfg.Timeout = flags.timeout
	}
	if flags.strict {
		cfg.Strict = true
	}
	// Renderer names match case-insensitively; hints are keyed by the lowercase name
	cfg.Renderer = strings.ToLower(cfg.Renderer)
}

// resolveBaseDir returns the absolute directory relative paths are joined to:
// --dir when given, otherwise the directory holding the executable.
func resolveBaseDir(dir string, env *Environment) (string, error) {
	if dir == "" {
		exeDir, err := env.ExecutableDir()
		if err != nil {
			return "", fmt.Errorf("%w: locating executable: %v", svg2png.ErrRender, err)
		}
		return exeDir, nil
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("%w: resolving %s: %v", svg2png.ErrRender, dir, err)
	}
	return abs, nil
}

// resolvePath joins a relative path to base. Absolute paths are kept.
func resolvePath(base, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(base, path)
}

// request builds the conversion request with paths resolved against base.
func (s *settings) request(base string) svg2png.Request {
	return svg2png.Request{
		Source:      resolvePath(base, s.source),
		Destination: resolvePath(base, s.dest),
		Width:       s.width,
		Height:      s.height,
	}
}

// runConvertCmd converts once and reports the outcome.
func runConvertCmd(ctx context.Context, args []string, env *Environment) int {
	flags, err := parseConvertFlags("convert", args, env.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return ExitSuccess
	}
	if err != nil {
		fmt.Fprintf(env.Stderr, "Error: %v\n", err)
		return ExitUsage
	}

	s, err := resolveSettings(flags)
	if err != nil {
		fmt.Fprintf(env.Stderr, "Error: %v\n", err)
		return exitCodeFor(err)
	}

	logger := newLogger(env.Stderr, flags.verbose)
	res, err := convert(ctx, s, env, logger)
	return finishConvert(env, s, res, err)
}

// finishConvert prints the outcome and returns the exit code. Usage errors
// surfacing from the converter are reported like flag errors, without the
// manual alternatives.
func finishConvert(env *Environment, s *settings, res *svg2png.Result, err error) int {
	code := exitCodeFor(err)
	if code == ExitUsage {
		fmt.Fprintf(env.Stderr, "Error: %v\n", err)
		return code
	}
	newReporter(env).convert(s, res, err)
	return code
}

// convert runs a single conversion. The converter is closed before returning.
func convert(ctx context.Context, s *settings, env *Environment, logger *log.Logger) (*svg2png.Result, error) {
	base, err := resolveBaseDir(s.dir, env)
	if err != nil {
		return nil, err
	}

	opts := []svg2png.Option{
		svg2png.WithRendererName(s.renderer),
		svg2png.WithTimeout(s.timeout),
		svg2png.WithStrict(s.strict),
		svg2png.WithLogger(logger),
	}
	if env.Renderer != nil {
		opts = append(opts, svg2png.WithRenderer(env.Renderer))
	}

	conv, err := svg2png.NewConverter(opts...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := conv.Close(); cerr != nil {
			logger.Warn("closing renderer", "err", cerr)
		}
	}()

	logger.Debug("base directory", "dir", base)
	return conv.Convert(ctx, s.request(base))
}

// runPreviewCmd writes the HTML preview page next to the SVG.
func runPreviewCmd(args []string, env *Environment) int {
	flags, err := parseConvertFlags("preview", args, env.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return ExitSuccess
	}
	if err != nil {
		fmt.Fprintf(env.Stderr, "Error: %v\n", err)
		return ExitUsage
	}

	s, err := resolveSettings(flags)
	if err != nil {
		fmt.Fprintf(env.Stderr, "Error: %v\n", err)
		return exitCodeFor(err)
	}

	r := newReporter(env)
	base, err := resolveBaseDir(s.dir, env)
	if err != nil {
		r.failure(err)
		return ExitFailure
	}

	dest := resolvePath(base, s.preview)
	if err := svg2png.WritePreview(resolvePath(base, s.source), dest, s.width, s.height); err != nil {
		r.failure(err)
		return ExitFailure
	}
	r.previewWritten(dest)
	return ExitSuccess
}
