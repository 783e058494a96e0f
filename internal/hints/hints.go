// Package hints provides actionable guidance for renderer failures.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"os"
	"runtime"
	"strings"

	"github.com/alnah/go-svg2png/internal/fileutil"
)

// IsInContainer detects if running inside a Docker container or similar.
// Checks for /.dockerenv file which Docker creates automatically.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// goos is the platform used to pick install commands. Tests override it.
var goos = runtime.GOOS

// InstallCommand returns the one-line instruction that installs the named
// renderer on this platform. Empty for renderers that need nothing.
func InstallCommand(renderer string) string {
	switch renderer {
	case "rsvg":
		switch goos {
		case "darwin":
			return "brew install librsvg"
		case "windows":
			return "choco install rsvg-convert"
		default:
			return "apt install librsvg2-bin"
		}
	case "browser":
		switch goos {
		case "darwin":
			return "brew install --cask google-chrome"
		case "windows":
			return "winget install Google.Chrome"
		default:
			return "apt install chromium"
		}
	default:
		return ""
	}
}

// ForRendererMissing suggests the alternatives to a missing renderer.
func ForRendererMissing(renderer string) string {
	var hints []string
	if renderer == "browser" && os.Getenv("ROD_BROWSER_BIN") == "" {
		hints = append(hints, "set ROD_BROWSER_BIN to use a custom Chrome")
	}
	if renderer != "native" {
		hints = append(hints, "or use --renderer native (no text support)")
	}
	return formatHints(hints)
}

// ForBrowserConnect returns hints for browser connection errors.
// Detects CI/Docker environment and suggests relevant environment variables.
func ForBrowserConnect() string {
	var hints []string

	inCI := os.Getenv("CI") != "" ||
		os.Getenv("GITHUB_ACTIONS") != "" ||
		os.Getenv("GITLAB_CI") != "" ||
		os.Getenv("JENKINS_URL") != ""

	if (inCI || IsInContainer()) && os.Getenv("ROD_NO_SANDBOX") != "1" {
		hints = append(hints, "set ROD_NO_SANDBOX=1 for Docker/CI")
	}

	if os.Getenv("ROD_BROWSER_BIN") == "" {
		hints = append(hints, "set ROD_BROWSER_BIN to use custom Chrome")
	}

	return formatHints(hints)
}

// ForTimeout returns a hint about increasing timeout for slow renders.
func ForTimeout() string {
	return format("for complex drawings, use --timeout flag")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
