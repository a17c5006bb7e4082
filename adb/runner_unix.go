//go:build unix

package adb

import (
	"os/exec"
	"syscall"
)

// killGroupOnCancel runs the bridge in its own process group so that cancellation
// kills every process it spawned
func killGroupOnCancel(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Cancel = func() error {
		return syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
	}
}
