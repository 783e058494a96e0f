//go:build windows

// Package process terminates browser process trees left behind by a renderer.
package process

import (
	"os/exec"
	"strconv"
)

// KillProcessGroup terminates pid and its children with taskkill /T.
func KillProcessGroup(pid int) {
	if pid <= 0 {
		return
	}
	// Errors ignored: the tree may already be gone, launcher.Kill follows
	_ = exec.Command("taskkill", "/F", "/T", "/PID", strconv.Itoa(pid)).Run() // #nosec G204 -- numeric pid
}
