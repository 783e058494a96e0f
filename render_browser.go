package svg2png

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/alnah/go-svg2png/internal/fileutil"
	"github.com/alnah/go-svg2png/internal/process"
)

// browserRenderer screenshots the preview page in headless Chrome via go-rod.
// Unlike rod's default it never downloads Chromium: a missing browser is
// reported through Available.
type browserRenderer struct {
	browser  *rod.Browser
	launcher *launcher.Launcher
	timeout  time.Duration
	lookPath func() (string, bool)
	logger   *log.Logger
}

func newBrowserRenderer(opts RendererOptions) *browserRenderer {
	return &browserRenderer{
		timeout:  opts.Timeout,
		lookPath: launcher.LookPath,
		logger:   loggerOrDiscard(opts.Logger),
	}
}

func (r *browserRenderer) Name() string { return RendererBrowser }

// FindBrowser returns the Chrome binary to use: ROD_BROWSER_BIN when set,
// otherwise whatever rod's launcher finds on this system.
func FindBrowser() (string, bool) {
	return findBrowser(launcher.LookPath)
}

func findBrowser(lookPath func() (string, bool)) (string, bool) {
	if bin := os.Getenv("ROD_BROWSER_BIN"); bin != "" {
		return bin, fileutil.FileExists(bin)
	}
	return lookPath()
}

// Available checks that a Chrome/Chromium binary exists.
func (r *browserRenderer) Available() error {
	path, found := findBrowser(r.lookPath)
	if !found {
		if path != "" {
			return fmt.Errorf("%w: Chrome not found at %s", ErrRendererUnavailable, path)
		}
		return fmt.Errorf("%w: Chrome/Chromium not found", ErrRendererUnavailable)
	}
	return nil
}

// ensureBrowser lazily launches and connects to the browser.
func (r *browserRenderer) ensureBrowser() error {
	if r.browser != nil {
		return nil
	}

	bin, found := findBrowser(r.lookPath)
	if !found {
		return fmt.Errorf("%w: Chrome/Chromium not found", ErrRendererUnavailable)
	}

	l := launcher.New().Bin(bin)

	// NoSandbox required for CI and containerized environments
	if os.Getenv("CI") == "true" || os.Getenv("ROD_NO_SANDBOX") == "1" {
		l = l.NoSandbox(true)
	}

	u, err := l.Launch()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}
	r.launcher = l
	r.logger.Debug("browser launched", "bin", bin, "pid", l.PID())

	r.browser = rod.New().ControlURL(u)
	if err := r.browser.Connect(); err != nil {
		r.browser = nil
		r.killLauncher()
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}
	return nil
}

// Render loads the preview page sized to width x height and captures the viewport.
func (r *browserRenderer) Render(ctx context.Context, svg []byte, width, height int) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := r.ensureBrowser(); err != nil {
		return nil, err
	}

	htmlContent, err := BuildPreviewHTML(svg, width, height)
	if err != nil {
		return nil, err
	}
	tmpPath, cleanup, err := fileutil.WriteTempFile(htmlContent, "html")
	if err != nil {
		return nil, err
	}
	defer cleanup()

	raw, err := r.browser.Page(proto.TargetCreateTarget{URL: "file://" + tmpPath})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageLoad, err)
	}
	defer raw.Close()

	timeout := r.timeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
		if timeout <= 0 {
			return nil, context.DeadlineExceeded
		}
	}
	page := bindPage(ctx, raw, timeout)

	err = page.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
		Width:             width,
		Height:            height,
		DeviceScaleFactor: 1,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: setting viewport: %w", ErrPageLoad, err)
	}

	if err := page.WaitLoad(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("%w: %v", ErrPageLoad, err)
	}

	data, err := page.Screenshot(false, &proto.PageCaptureScreenshot{
		Format: proto.PageCaptureScreenshotFormatPng,
		Clip: &proto.PageViewport{
			Width:  float64(width),
			Height: float64(height),
			Scale:  1,
		},
	})
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("%w: %v", ErrScreenshot, err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: decoding: %v", ErrScreenshot, err)
	}
	return img, nil
}

// bindPage ties page calls to ctx so a canceled render stops waiting at once.
// The unbound page must still be used for Close.
func bindPage(ctx context.Context, page *rod.Page, timeout time.Duration) *rod.Page {
	return page.Context(ctx).Timeout(timeout)
}

// Close releases browser resources and kills leftover Chrome processes.
func (r *browserRenderer) Close() error {
	var err error
	if r.browser != nil {
		err = r.browser.Close()
		r.browser = nil
	}
	r.killLauncher()
	return err
}

func (r *browserRenderer) killLauncher() {
	if r.launcher == nil {
		return
	}
	// Chrome spawns helpers in its own group; launcher.Kill only reaches the leader
	process.KillProcessGroup(r.launcher.PID())
	r.launcher.Kill()
	r.launcher = nil
}
