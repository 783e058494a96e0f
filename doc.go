// Package svg2png converts an SVG file into a PNG at a fixed pixel size.
//
// # Quick Start
//
// Create a converter, convert, and close when done:
//
//	conv, err := svg2png.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer conv.Close()
//
//	res, err := conv.Convert(ctx, svg2png.DefaultRequest("logo-assets"))
//	switch svg2png.OutcomeOf(err) {
//	case svg2png.OutcomeDependencyMissing:
//	    // install the renderer or export manually
//	case svg2png.OutcomeRenderError:
//	    // inspect err
//	}
//
// # Renderers
//
// Rasterization is delegated to a Renderer backend:
//
//   - rsvg (default): librsvg's rsvg-convert binary
//   - native: pure Go via oksvg/rasterx, always available, no text support
//   - browser: headless Chrome via go-rod, never auto-downloaded
//
// Select one with WithRendererName. Whatever the backend returns is scaled
// to the exact requested size before PNG encoding, and PNG encoding is
// deterministic, so repeated conversions produce identical files.
//
// # Errors
//
// Convert returns errors wrapping ErrRendererUnavailable when the backend
// cannot be loaded (the destination is left untouched) and ErrRender for
// any other failure. OutcomeOf maps an error onto these two cases.
//
// # Manual Fallback
//
// BuildPreviewHTML and WritePreview produce a page showing the SVG at the
// target size, for a browser screenshot when no renderer is installed.
package svg2png
