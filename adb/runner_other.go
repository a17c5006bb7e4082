//go:build !unix

package adb

import "os/exec"

func killGroupOnCancel(cmd *exec.Cmd) {}
