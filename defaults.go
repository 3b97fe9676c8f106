package monitor

import "time"

// Report defaults.
const (
	DefaultUsageInterval = 1 * time.Second
	DefaultQuiet         = false
)

// CPU usage thresholds, in percent of a single logical CPU.
const (
	cpuInUseThreshold = 5.0
	cpuHighThreshold  = 50.0
)

// Bench defaults.
var (
	DefaultBenchSamples = []int{5000000, 10000000, 20000000, 40000000}
	DefaultBenchWorkers = []int{1, 2, 4, 8, 16}
)

const benchSeedBase = 1234
