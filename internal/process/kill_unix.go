//go:build !windows

// Package process terminates browser process trees left behind by a renderer.
package process

import "syscall"

// KillProcessGroup sends SIGKILL to the process group led by pid.
// Chrome helpers (GPU, renderer) share the group of the launched binary.
func KillProcessGroup(pid int) {
	if pid <= 0 {
		return
	}
	// Errors ignored: the group may already be gone, launcher.Kill follows
	_ = syscall.Kill(-pid, syscall.SIGKILL)
}
