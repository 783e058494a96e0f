package svg2png

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image/png"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/alnah/go-svg2png/internal/fileutil"
)

// filePermissions for written PNG and HTML files (rw-r--r--).
const filePermissions = 0o644

// Converter performs vector-to-raster conversions with one Renderer.
// Create with NewConverter, use Convert, and Close when done.
type Converter struct {
	cfg      converterConfig
	renderer Renderer
	logger   *log.Logger
}

// NewConverter creates a Converter with the default renderer.
// Use options to customize behavior (e.g., WithRendererName, WithTimeout).
// Returns ErrUnknownRenderer if the selected name is not registered.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg: converterConfig{
			timeout:      defaultTimeout,
			rendererName: DefaultRenderer,
		},
		logger: log.New(io.Discard),
	}

	for _, opt := range opts {
		opt(c)
	}

	// Create renderer if not injected (e.g., by tests)
	if c.renderer == nil {
		r, err := NewRenderer(c.cfg.rendererName, RendererOptions{
			Timeout: c.cfg.timeout,
			Strict:  c.cfg.strict,
			Logger:  c.logger,
		})
		if err != nil {
			return nil, err
		}
		c.renderer = r
	}

	return c, nil
}

// RendererName returns the name of the active renderer.
func (c *Converter) RendererName() string {
	return c.renderer.Name()
}

// Available reports whether the active renderer can be loaded.
// The error always wraps ErrRendererUnavailable.
func (c *Converter) Available() error {
	err := c.renderer.Available()
	if err == nil || errors.Is(err, ErrRendererUnavailable) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrRendererUnavailable, err)
}

// Convert performs exactly one render of req.Source into req.Destination.
//
// Renderer availability is checked before any file is read or written, so
// an ErrRendererUnavailable result leaves the destination untouched. Every
// other failure, including a missing source file, wraps ErrRender.
// The destination is replaced atomically on success.
func (c *Converter) Convert(ctx context.Context, req Request) (*Result, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRender, err)
	}

	if err := c.Available(); err != nil {
		return nil, err
	}

	start := time.Now()
	c.logger.Debug("converting", "source", req.Source, "destination", req.Destination,
		"width", req.Width, "height", req.Height, "renderer", c.renderer.Name())

	svg, err := os.ReadFile(req.Source) // #nosec G304 -- path is user-provided
	if err != nil {
		return nil, fmt.Errorf("%w: reading SVG: %w", ErrRender, err)
	}

	data, err := c.Render(ctx, svg, req.Width, req.Height)
	if err != nil {
		return nil, err
	}

	if err := fileutil.WriteFileAtomic(req.Destination, data, filePermissions); err != nil {
		return nil, fmt.Errorf("%w: writing PNG: %w", ErrRender, err)
	}

	result := &Result{
		Destination: req.Destination,
		Width:       req.Width,
		Height:      req.Height,
		Renderer:    c.renderer.Name(),
		Bytes:       len(data),
		Duration:    time.Since(start),
	}
	c.logger.Info("PNG written", "path", result.Destination, "bytes", result.Bytes,
		"elapsed", result.Duration.Round(time.Millisecond))

	return result, nil
}

// Render rasterizes svg and returns PNG bytes of exactly width x height.
// Errors wrap ErrRender, or ErrRendererUnavailable if the backend vanished.
func (c *Converter) Render(ctx context.Context, svg []byte, width, height int) ([]byte, error) {
	if err := ValidateDimensions(width, height); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRender, err)
	}
	if len(bytes.TrimSpace(svg)) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrRender, ErrEmptySVG)
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.timeout)
	defer cancel()

	img, err := c.renderer.Render(ctx, svg, width, height)
	if err != nil {
		if errors.Is(err, ErrRendererUnavailable) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %s: %w", ErrRender, c.renderer.Name(), err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, fitToSize(img, width, height)); err != nil {
		return nil, fmt.Errorf("%w: encoding PNG: %w", ErrRender, err)
	}
	return buf.Bytes(), nil
}

// Close releases renderer resources (headless Chrome for the browser backend).
func (c *Converter) Close() error {
	if c.renderer != nil {
		return c.renderer.Close()
	}
	return nil
}
