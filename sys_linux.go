//go:build linux
// +build linux

package monitor

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"

	"github.com/shirou/gopsutil/v4/host"
	"golang.org/x/sys/unix"
)

// osDetail returns the uname version field (kernel build string), falling
// back to the distribution name and version when uname fails.
func osDetail(hi *host.InfoStat) string {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return fmt.Sprintf("%s %s", hi.Platform, hi.PlatformVersion)
	}
	return utsField(uts.Version[:])
}

func utsField(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return string(b)
}

// lscpuOutput returns the raw output of lscpu, or a diagnostic message when
// the command is unavailable or fails.
func lscpuOutput() string {
	out, err := exec.Command("lscpu").Output()
	if err != nil {
		if ee, ok := err.(*exec.ExitError); ok {
			return fmt.Sprintf("Error running lscpu: %s",
				strings.TrimSpace(string(ee.Stderr)))
		}
		return "lscpu command not found (Linux only)"
	}
	return string(out)
}
