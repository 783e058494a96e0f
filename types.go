package svg2png

import (
	"fmt"
	"path/filepath"
	"time"
)

// Fixed file names of the logo assets, resolved relative to a base directory.
const (
	SourceName      = "abel-labs-logo.svg"
	DestinationName = "abel-labs-logo.png"
	PreviewName     = "render-logo.html"
)

// Output dimensions. The logo is drawn at 220x60 and exported at 4x.
const (
	BaseWidth     = 220
	BaseHeight    = 60
	Scale         = 4
	DefaultWidth  = BaseWidth * Scale  // 880
	DefaultHeight = BaseHeight * Scale // 240

	// MaxDimension bounds either side to keep the RGBA buffer reasonable.
	MaxDimension = 16384
)

// defaultTimeout bounds a single render call.
const defaultTimeout = 30 * time.Second

// Request describes one vector-to-raster conversion.
type Request struct {
	Source      string // SVG input path
	Destination string // PNG output path, overwritten if present
	Width       int    // output width in pixels
	Height      int    // output height in pixels
}

// DefaultRequest returns the logo conversion rooted at dir.
func DefaultRequest(dir string) Request {
	return Request{
		Source:      filepath.Join(dir, SourceName),
		Destination: filepath.Join(dir, DestinationName),
		Width:       DefaultWidth,
		Height:      DefaultHeight,
	}
}

// Validate checks that paths are set and dimensions are in range.
func (r Request) Validate() error {
	if r.Source == "" {
		return fmt.Errorf("%w: source", ErrEmptyPath)
	}
	if r.Destination == "" {
		return fmt.Errorf("%w: destination", ErrEmptyPath)
	}
	return ValidateDimensions(r.Width, r.Height)
}

// ValidateDimensions checks that width and height are within 1..MaxDimension.
func ValidateDimensions(width, height int) error {
	if width < 1 || width > MaxDimension {
		return fmt.Errorf("%w: width %d (must be 1-%d)", ErrInvalidDimensions, width, MaxDimension)
	}
	if height < 1 || height > MaxDimension {
		return fmt.Errorf("%w: height %d (must be 1-%d)", ErrInvalidDimensions, height, MaxDimension)
	}
	return nil
}

// Result reports a successful conversion.
type Result struct {
	Destination string
	Width       int
	Height      int
	Renderer    string
	Bytes       int // size of the written PNG
	Duration    time.Duration
}
