package svg2png

import "errors"

// Sentinel errors for library operations.
var (
	// ErrRendererUnavailable means the rendering capability cannot be loaded
	// (binary not installed, browser not found). Nothing was written.
	ErrRendererUnavailable = errors.New("renderer not available")

	// ErrRender means the renderer was available but the conversion failed:
	// unreadable source, malformed SVG, failed write.
	ErrRender = errors.New("render failed")

	ErrUnknownRenderer = errors.New("unknown renderer")
	ErrEmptySVG        = errors.New("SVG content cannot be empty")
	ErrNoViewBox       = errors.New("no <svg> root or zero view box")

	// Request validation errors.
	ErrEmptyPath         = errors.New("path cannot be empty")
	ErrInvalidDimensions = errors.New("invalid dimensions")

	// Browser backend errors.
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageLoad       = errors.New("failed to load page")
	ErrScreenshot     = errors.New("screenshot capture failed")
)
