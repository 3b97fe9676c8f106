//go:build !linux
// +build !linux

package monitor

import (
	"fmt"

	"github.com/shirou/gopsutil/v4/host"
)

func osDetail(hi *host.InfoStat) string {
	return fmt.Sprintf("%s %s", hi.Platform, hi.PlatformVersion)
}

func lscpuOutput() string {
	return "lscpu command not found (Linux only)"
}
