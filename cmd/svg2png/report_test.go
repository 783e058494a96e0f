package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	svg2png "github.com/alnah/go-svg2png"
)

func TestReporter_Alternatives_UseConfiguredNames(t *testing.T) {
	t.Parallel()

	env, _, stderr := newTestEnv(t.TempDir(), nil)
	s := &settings{source: "assets/brand.svg", preview: "assets/brand.html", renderer: "browser"}

	newReporter(env).convert(s, nil, fmt.Errorf("%w: Chrome/Chromium not found", svg2png.ErrRendererUnavailable))

	out := stderr.String()
	for _, want := range []string{
		"❌ browser not installed.",
		"Chrome/Chromium not found",
		"1. Open brand.svg in Preview (Mac)",
		"3. Open brand.html in browser and take screenshot",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("stderr should contain %q, got:\n%s", want, out)
		}
	}
}

func TestReporter_NativeHasNoInstallLine(t *testing.T) {
	t.Parallel()

	env, _, stderr := newTestEnv(t.TempDir(), nil)
	s := &settings{source: "a.svg", preview: "a.html", renderer: svg2png.RendererNative}

	newReporter(env).convert(s, nil, svg2png.ErrRendererUnavailable)

	if strings.Contains(stderr.String(), "Run: ") {
		t.Errorf("native needs no install command, got:\n%s", stderr)
	}
}

func TestHintFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		contains string // empty: no hint expected
	}{
		{"timeout", fmt.Errorf("%w: %w", svg2png.ErrRender, context.DeadlineExceeded), "--timeout"},
		{"plain render error", fmt.Errorf("%w: bad path", svg2png.ErrRender), ""},
		{"unrelated", errors.New("boom"), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := hintFor(tt.err)
			if tt.contains == "" {
				if got != "" {
					t.Errorf("hintFor() = %q, want empty", got)
				}
				return
			}
			if !strings.Contains(got, tt.contains) {
				t.Errorf("hintFor() = %q, want it to contain %q", got, tt.contains)
			}
		})
	}
}
