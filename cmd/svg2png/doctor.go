package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	svg2png "github.com/alnah/go-svg2png"
	"github.com/alnah/go-svg2png/internal/hints"
)

// versionTimeout bounds "<binary> --version" probes.
const versionTimeout = 5 * time.Second

// doctorResult holds all diagnostic information.
type doctorResult struct {
	Status    string         `json:"status"` // "ready", "warnings", "errors"
	Default   string         `json:"default_renderer"`
	Renderers []rendererInfo `json:"renderers"`
	Env       envInfo        `json:"environment"`
	System    systemInfo     `json:"system"`
	Warnings  []string       `json:"warnings,omitempty"`
	Errors    []string       `json:"errors,omitempty"`
}

// rendererInfo holds availability of one backend.
type rendererInfo struct {
	Name      string `json:"name"`
	Available bool   `json:"available"`
	Path      string `json:"path,omitempty"`
	Version   string `json:"version,omitempty"`
	Reason    string `json:"reason,omitempty"`
	Install   string `json:"install,omitempty"`
}

// envInfo holds environment detection results.
type envInfo struct {
	OS            string `json:"os"`
	Arch          string `json:"arch"`
	Container     bool   `json:"container"`
	ContainerHint string `json:"container_hint,omitempty"`
	CI            bool   `json:"ci"`
	NoSandbox     string `json:"rod_no_sandbox"`
	BrowserBin    string `json:"rod_browser_bin"`
}

// systemInfo holds system check results.
type systemInfo struct {
	TempWritable bool `json:"temp_writable"`
}

// doctorProbe locates renderer binaries. Tests replace it.
type doctorProbe struct {
	newRenderer func(name string) (svg2png.Renderer, error)
	binaryPath  func(name string) string
	version     func(bin string) string
}

func defaultProbe() doctorProbe {
	return doctorProbe{
		newRenderer: func(name string) (svg2png.Renderer, error) {
			return svg2png.NewRenderer(name, svg2png.RendererOptions{})
		},
		binaryPath: binaryPath,
		version:    binaryVersion,
	}
}

// runDoctorCmd executes the doctor command and returns an exit code.
// Exit codes: 0 = the default renderer works (warnings allowed), 1 = errors found.
func runDoctorCmd(args []string, env *Environment) int {
	jsonOutput := false
	for _, arg := range args {
		if arg == "--json" {
			jsonOutput = true
		}
	}

	result := runDoctor(defaultProbe())

	if jsonOutput {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(result)
	} else {
		printDoctorResult(env.Stdout, result)
	}

	if result.Status == "errors" {
		return ExitFailure
	}
	return ExitSuccess
}

// runDoctor performs all diagnostic checks.
func runDoctor(probe doctorProbe) *doctorResult {
	result := &doctorResult{
		Status:  "ready",
		Default: svg2png.DefaultRenderer,
		Env: envInfo{
			OS:         runtime.GOOS,
			Arch:       runtime.GOARCH,
			NoSandbox:  os.Getenv("ROD_NO_SANDBOX"),
			BrowserBin: os.Getenv("ROD_BROWSER_BIN"),
		},
	}

	checkRenderers(result, probe)
	checkEnvironment(result)
	checkSystem(result)

	if len(result.Errors) > 0 {
		result.Status = "errors"
	} else if len(result.Warnings) > 0 {
		result.Status = "warnings"
	}

	return result
}

// checkRenderers records availability of every backend. Only a missing
// default renderer is an error: it breaks the no-argument conversion.
func checkRenderers(result *doctorResult, probe doctorProbe) {
	for _, name := range svg2png.RendererNames() {
		info := rendererInfo{Name: name}

		r, err := probe.newRenderer(name)
		if err == nil {
			err = r.Available()
		}

		if err != nil {
			info.Reason = err.Error()
			info.Install = hints.InstallCommand(name)
			msg := fmt.Sprintf("%s renderer unavailable", name)
			if info.Install != "" {
				msg += fmt.Sprintf(" (install: %s)", info.Install)
			}
			if name == svg2png.DefaultRenderer {
				result.Errors = append(result.Errors, msg)
			} else {
				result.Warnings = append(result.Warnings, msg)
			}
		} else {
			info.Available = true
			info.Path = probe.binaryPath(name)
			if info.Path != "" {
				info.Version = probe.version(info.Path)
			}
		}

		result.Renderers = append(result.Renderers, info)
	}
}

// binaryPath returns the external program a renderer runs, if any.
func binaryPath(name string) string {
	switch name {
	case svg2png.RendererRsvg:
		path, err := exec.LookPath("rsvg-convert")
		if err != nil {
			return ""
		}
		return path
	case svg2png.RendererBrowser:
		path, found := svg2png.FindBrowser()
		if !found {
			return ""
		}
		return path
	default:
		return ""
	}
}

// binaryVersion runs "<bin> --version" and returns its first line.
func binaryVersion(bin string) string {
	ctx, cancel := context.WithTimeout(context.Background(), versionTimeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, bin, "--version").Output() // #nosec G204 -- located renderer binary
	if err != nil {
		return ""
	}
	line, _, _ := strings.Cut(strings.TrimSpace(string(out)), "\n")
	return line
}

// checkEnvironment detects container and CI environments.
func checkEnvironment(result *doctorResult) {
	result.Env.Container, result.Env.ContainerHint = isContainer()

	ciVars := []string{"CI", "GITHUB_ACTIONS", "GITLAB_CI", "JENKINS_URL", "CIRCLECI"}
	for _, v := range ciVars {
		if os.Getenv(v) != "" {
			result.Env.CI = true
			break
		}
	}

	// Only Chrome cares about the sandbox
	if (result.Env.Container || result.Env.CI) && result.Env.NoSandbox != "1" {
		result.Warnings = append(result.Warnings,
			"Container/CI detected but ROD_NO_SANDBOX not set. Set ROD_NO_SANDBOX=1 for --renderer browser")
	}
}

// isContainer detects if running in a container environment.
// Returns (isContainer, hint) where hint indicates which signal was detected.
func isContainer() (bool, string) {
	if os.Getenv("SVG2PNG_CONTAINER") == "1" {
		return true, "SVG2PNG_CONTAINER=1"
	}
	if hints.IsInContainer() {
		return true, "/.dockerenv"
	}
	if v := os.Getenv("container"); v != "" {
		return true, "container=" + v
	}
	if os.Getenv("KUBERNETES_SERVICE_HOST") != "" {
		return true, "KUBERNETES_SERVICE_HOST"
	}
	return false, ""
}

// checkSystem verifies the temp directory used by the browser renderer.
func checkSystem(result *doctorResult) {
	tmpDir := os.TempDir()
	testFile := filepath.Join(tmpDir, "svg2png-doctor-test")
	if err := os.WriteFile(testFile, []byte("test"), 0o600); err != nil {
		result.Errors = append(result.Errors,
			fmt.Sprintf("Temp directory not writable: %s", tmpDir))
	} else {
		_ = os.Remove(testFile)
		result.System.TempWritable = true
	}
}

// printDoctorResult outputs human-readable diagnostic results.
func printDoctorResult(w io.Writer, r *doctorResult) {
	fmt.Fprintln(w, "svg2png doctor")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Renderers")
	for _, info := range r.Renderers {
		label := info.Name
		if info.Name == r.Default {
			label += " (default)"
		}
		if !info.Available {
			level := "WARN"
			if info.Name == r.Default {
				level = "ERROR"
			}
			fmt.Fprintf(w, "  [%s] %s: not available\n", level, label)
			continue
		}
		detail := "built in"
		if info.Path != "" {
			detail = info.Path
		}
		if info.Version != "" {
			detail += ", " + info.Version
		}
		fmt.Fprintf(w, "  [OK] %s: %s\n", label, detail)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Environment")
	fmt.Fprintf(w, "  [OK] Platform: %s/%s\n", r.Env.OS, r.Env.Arch)
	if r.Env.Container {
		fmt.Fprintf(w, "  [OK] Container: detected (%s)\n", r.Env.ContainerHint)
	}
	if r.Env.CI {
		fmt.Fprintln(w, "  [OK] CI: detected")
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "System")
	if r.System.TempWritable {
		fmt.Fprintln(w, "  [OK] Temp directory: writable")
	} else {
		fmt.Fprintln(w, "  [ERROR] Temp directory: not writable")
	}
	fmt.Fprintln(w)

	if len(r.Warnings) > 0 {
		fmt.Fprintln(w, "Warnings:")
		for _, warn := range r.Warnings {
			fmt.Fprintf(w, "  [WARN] %s\n", warn)
		}
		fmt.Fprintln(w)
	}

	if len(r.Errors) > 0 {
		fmt.Fprintln(w, "Errors:")
		for _, err := range r.Errors {
			fmt.Fprintf(w, "  [ERROR] %s\n", err)
		}
		fmt.Fprintln(w)
	}

	switch r.Status {
	case "ready":
		fmt.Fprintln(w, "Status: Ready to convert")
	case "warnings":
		fmt.Fprintln(w, "Status: Ready with warnings")
	case "errors":
		fmt.Fprintln(w, "Status: Not ready (see errors above)")
	}
}
