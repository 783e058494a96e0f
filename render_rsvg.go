package svg2png

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"os/exec"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
)

// rsvgBinary is the librsvg command line converter.
const rsvgBinary = "rsvg-convert"

// rsvgRenderer shells out to rsvg-convert.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
type rsvgRenderer struct {
	bin      string
	lookPath func(string) (string, error)
	logger   *log.Logger
}

func newRsvgRenderer(opts RendererOptions) *rsvgRenderer {
	return &rsvgRenderer{
		bin:      rsvgBinary,
		lookPath: exec.LookPath,
		logger:   loggerOrDiscard(opts.Logger),
	}
}

func (r *rsvgRenderer) Name() string { return RendererRsvg }

// Available checks that rsvg-convert is on PATH.
func (r *rsvgRenderer) Available() error {
	if _, err := r.lookPath(r.bin); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrRendererUnavailable, r.bin, err)
	}
	return nil
}

// Render pipes svg through rsvg-convert and decodes the PNG it writes to stdout.
func (r *rsvgRenderer) Render(ctx context.Context, svg []byte, width, height int) (image.Image, error) {
	path, err := r.lookPath(r.bin)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrRendererUnavailable, r.bin, err)
	}

	args := []string{
		"-f", "png",
		"-w", strconv.Itoa(width),
		"-h", strconv.Itoa(height),
	}
	r.logger.Debug("running renderer", "bin", path, "args", strings.Join(args, " "))

	cmd := exec.CommandContext(ctx, path, args...) // #nosec G204 -- fixed binary, numeric args
	cmd.Stdin = bytes.NewReader(svg)

	var out, errBuf bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errBuf

	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("%s: %v: %s", r.bin, err, strings.TrimSpace(errBuf.String()))
	}
	if out.Len() == 0 {
		return nil, fmt.Errorf("%s: no output", r.bin)
	}

	img, err := png.Decode(&out)
	if err != nil {
		return nil, fmt.Errorf("%s: decoding output: %w", r.bin, err)
	}
	return img, nil
}

// Close is a no-op: each render is a separate process.
func (r *rsvgRenderer) Close() error { return nil }
