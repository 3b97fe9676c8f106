package monitor

import (
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
)

// CPUUsage holds a single busy-percent sample across all logical CPUs.
type CPUUsage struct {
	Overall float64   `json:"overall_percent"`
	PerCPU  []float64 `json:"per_cpu_percent"`
	InUse   int       `json:"active_cpus"`
	High    int       `json:"high_usage_cpus"`
}

// SampleCPUUsage blocks for interval per sample and returns busy percents
// for the whole system and for each logical CPU, along with counts of CPUs
// above the in-use and high-usage thresholds.
func SampleCPUUsage(interval time.Duration) (*CPUUsage, error) {
	overall, err := cpu.Percent(interval, false)
	if err != nil {
		return nil, Errorf(NoCPUUsage, "overall CPU usage: %s", err)
	}
	perCPU, err := cpu.Percent(interval, true)
	if err != nil {
		return nil, Errorf(NoCPUUsage, "per-CPU usage: %s", err)
	}

	u := &CPUUsage{PerCPU: perCPU}
	if len(overall) > 0 {
		u.Overall = overall[0]
	}
	for _, p := range perCPU {
		if p > cpuInUseThreshold {
			u.InUse++
		}
		if p > cpuHighThreshold {
			u.High++
		}
	}
	return u, nil
}
