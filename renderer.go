package svg2png

import (
	"context"
	"fmt"
	"image"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/image/draw"
)

// Renderer names accepted by NewRenderer.
const (
	RendererRsvg    = "rsvg"
	RendererNative  = "native"
	RendererBrowser = "browser"

	// DefaultRenderer is librsvg, the cairo-based renderer.
	DefaultRenderer = RendererRsvg
)

// Renderer is a vector-to-raster rendering capability.
//
// Available reports whether the capability can be loaded on this machine.
// It must not touch the filesystem beyond lookups, so a missing renderer
// never modifies the destination.
type Renderer interface {
	Name() string
	Available() error
	Render(ctx context.Context, svg []byte, width, height int) (image.Image, error)
	Close() error
}

// Compile-time interface checks
var (
	_ Renderer = (*rsvgRenderer)(nil)
	_ Renderer = (*nativeRenderer)(nil)
	_ Renderer = (*browserRenderer)(nil)
)

// RendererOptions configures a backend created by NewRenderer.
type RendererOptions struct {
	Timeout time.Duration // browser page load timeout
	Strict  bool          // native: reject unsupported SVG elements
	Logger  *log.Logger
}

// RendererNames returns the accepted renderer names, default first.
func RendererNames() []string {
	return []string{RendererRsvg, RendererNative, RendererBrowser}
}

// IsValidRenderer reports whether name selects a known backend.
// Empty means the default.
func IsValidRenderer(name string) bool {
	if name == "" {
		return true
	}
	for _, n := range RendererNames() {
		if strings.EqualFold(name, n) {
			return true
		}
	}
	return false
}

// NewRenderer creates the backend registered under name.
// An empty name selects DefaultRenderer.
func NewRenderer(name string, opts RendererOptions) (Renderer, error) {
	opts.Logger = loggerOrDiscard(opts.Logger)
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}

	switch strings.ToLower(name) {
	case "", RendererRsvg:
		return newRsvgRenderer(opts), nil
	case RendererNative:
		return newNativeRenderer(opts), nil
	case RendererBrowser:
		return newBrowserRenderer(opts), nil
	default:
		return nil, fmt.Errorf("%w: %q (available: %s)",
			ErrUnknownRenderer, name, strings.Join(RendererNames(), ", "))
	}
}

// loggerOrDiscard returns l, or a logger that drops everything when l is nil.
func loggerOrDiscard(l *log.Logger) *log.Logger {
	if l == nil {
		return log.New(io.Discard)
	}
	return l
}

// fitToSize returns img scaled to exactly width x height.
// Backends that already honor the size are returned untouched.
func fitToSize(img image.Image, width, height int) image.Image {
	b := img.Bounds()
	if b.Min.X == 0 && b.Min.Y == 0 && b.Dx() == width && b.Dy() == height {
		return img
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
