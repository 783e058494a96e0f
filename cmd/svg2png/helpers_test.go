package main

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/draw"
	_ "image/png"
	"os"
	"path/filepath"
	"sync"
	"testing"

	svg2png "github.com/alnah/go-svg2png"
)

// ---------------------------------------------------------------------------
// Test Infrastructure - Fake renderer and environment
// ---------------------------------------------------------------------------

// fakeRenderer paints a solid image, or fails as configured.
type fakeRenderer struct {
	mu        sync.Mutex
	name      string
	availErr  error
	renderErr error
	renders   int
	closed    bool
}

func (f *fakeRenderer) Name() string {
	if f.name == "" {
		return svg2png.RendererRsvg
	}
	return f.name
}

func (f *fakeRenderer) Available() error { return f.availErr }

func (f *fakeRenderer) Render(_ context.Context, _ []byte, width, height int) (image.Image, error) {
	f.mu.Lock()
	f.renders++
	f.mu.Unlock()
	if f.renderErr != nil {
		return nil, f.renderErr
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: color.RGBA{R: 0x1a, G: 0x2b, B: 0x3c, A: 0xff}}, image.Point{}, draw.Src)
	return img, nil
}

func (f *fakeRenderer) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

const logoSVG = `<svg xmlns="http://www.w3.org/2000/svg" width="220" height="60" viewBox="0 0 220 60">
  <rect width="220" height="60" fill="#1a2b3c"/>
</svg>`

// newTestEnv returns an environment whose executable directory is dir.
func newTestEnv(dir string, r svg2png.Renderer) (*Environment, *bytes.Buffer, *bytes.Buffer) {
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	env := &Environment{
		Stdout:        stdout,
		Stderr:        stderr,
		ExecutableDir: func() (string, error) { return dir, nil },
		Renderer:      r,
	}
	return env, stdout, stderr
}

// writeLogoSVG creates the default SVG in dir.
func writeLogoSVG(t *testing.T, dir string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, svg2png.SourceName), []byte(logoSVG), 0o600); err != nil {
		t.Fatal(err)
	}
}

// decodePNGFile decodes the PNG at path.
func decodePNGFile(t *testing.T, path string) image.Image {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening %s: %v", path, err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		t.Fatalf("decoding %s: %v", path, err)
	}
	return img
}
