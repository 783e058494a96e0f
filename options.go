package svg2png

import (
	"time"

	"github.com/charmbracelet/log"
)

// converterConfig holds settings applied by options.
type converterConfig struct {
	timeout      time.Duration
	rendererName string
	strict       bool
}

// Option configures a Converter.
type Option func(*Converter)

// WithTimeout bounds a single render call. Non-positive values are ignored.
func WithTimeout(d time.Duration) Option {
	return func(c *Converter) {
		if d > 0 {
			c.cfg.timeout = d
		}
	}
}

// WithRendererName selects a registered backend (rsvg, native, browser).
func WithRendererName(name string) Option {
	return func(c *Converter) {
		if name != "" {
			c.cfg.rendererName = name
		}
	}
}

// WithRenderer injects a Renderer, bypassing the registry.
func WithRenderer(r Renderer) Option {
	return func(c *Converter) {
		c.renderer = r
	}
}

// WithStrict makes the native renderer reject unsupported SVG elements.
func WithStrict(strict bool) Option {
	return func(c *Converter) {
		c.cfg.strict = strict
	}
}

// WithLogger sets the diagnostic logger. Nil keeps the discard logger.
func WithLogger(l *log.Logger) Option {
	return func(c *Converter) {
		if l != nil {
			c.logger = l
		}
	}
}
