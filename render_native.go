package svg2png

import (
	"bytes"
	"context"
	"fmt"
	"image"

	"github.com/charmbracelet/log"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// nativeRenderer rasterizes in-process with oksvg and rasterx.
// It supports paths, shapes and gradients but not text.
type nativeRenderer struct {
	strict bool
	logger *log.Logger
}

func newNativeRenderer(opts RendererOptions) *nativeRenderer {
	return &nativeRenderer{strict: opts.Strict, logger: loggerOrDiscard(opts.Logger)}
}

func (r *nativeRenderer) Name() string { return RendererNative }

// Available always succeeds: the renderer is compiled in.
func (r *nativeRenderer) Available() error { return nil }

// Render stretches the SVG view box onto a width x height RGBA canvas.
func (r *nativeRenderer) Render(ctx context.Context, svg []byte, width, height int) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	mode := oksvg.IgnoreErrorMode
	if r.strict {
		mode = oksvg.StrictErrorMode
	}

	icon, err := oksvg.ReadIconStream(bytes.NewReader(svg), mode)
	if err != nil {
		return nil, fmt.Errorf("parsing SVG: %w", err)
	}
	// Non-SVG XML and unsized <svg> parse cleanly but leave an empty view box
	if icon.ViewBox.W <= 0 || icon.ViewBox.H <= 0 {
		return nil, fmt.Errorf("parsing SVG: %w", ErrNoViewBox)
	}
	r.logger.Debug("parsed SVG", "viewBoxW", icon.ViewBox.W, "viewBoxH", icon.ViewBox.H)

	icon.SetTarget(0, 0, float64(width), float64(height))

	rgba := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, rgba, rgba.Bounds())
	raster := rasterx.NewDasher(width, height, scanner)
	icon.Draw(raster, 1.0)

	return rgba, nil
}

func (r *nativeRenderer) Close() error { return nil }
