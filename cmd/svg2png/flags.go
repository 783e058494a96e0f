package main

import (
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// convertFlags holds flags shared by convert and preview.
// Zero values mean "not set": the config file or defaults apply.
type convertFlags struct {
	input    string
	output   string
	preview  string
	width    int
	height   int
	renderer string
	dir      string
	config   string
	timeout  string
	strict   bool
	verbose  bool
}

// parseConvertFlags parses flags for the named command.
// Positional arguments are rejected: the paths come from flags or config.
func parseConvertFlags(name string, args []string, stderr io.Writer) (*convertFlags, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	f := &convertFlags{}

	fs.StringVarP(&f.input, "input", "i", "", "SVG file (default: abel-labs-logo.svg)")
	fs.StringVarP(&f.output, "output", "o", "", "PNG file (default: abel-labs-logo.png)")
	fs.StringVar(&f.preview, "preview", "", "HTML preview page (default: render-logo.html)")
	fs.IntVarP(&f.width, "width", "W", 0, "output width in pixels (default: 880)")
	fs.IntVarP(&f.height, "height", "H", 0, "output height in pixels (default: 240)")
	fs.StringVarP(&f.renderer, "renderer", "r", "", "renderer: rsvg, native, browser")
	fs.StringVarP(&f.dir, "dir", "C", "", "base directory for relative paths (default: executable's directory)")
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVar(&f.timeout, "timeout", "", "render timeout (e.g., 30s, 2m)")
	fs.BoolVar(&f.strict, "strict", false, "native renderer rejects unsupported SVG elements")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug logs")

	fs.Usage = func() {
		if name == "preview" {
			printPreviewUsage(stderr)
			return
		}
		printConvertUsage(stderr)
	}

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("%w: unexpected argument %q", ErrUsage, fs.Arg(0))
	}

	return f, nil
}
