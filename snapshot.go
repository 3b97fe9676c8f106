package monitor

// SystemSnapshot is an immutable point-in-time record of collected host
// metrics. It is constructed once per run by Collect and read-only after
// that.
type SystemSnapshot struct {
	OSName        string `json:"os_name"`
	OSVersion     string `json:"os_version"`
	OSDetail      string `json:"os_detail"`
	NumCPU        int    `json:"cpus"`
	TotalRAM      uint64 `json:"total_ram_bytes"`
	AvailableRAM  uint64 `json:"available_ram_bytes"`
	ActiveThreads int    `json:"active_threads"`

	// Clamped is set when the platform reported more available than total
	// memory and AvailableRAM was clamped to TotalRAM.
	Clamped bool `json:"clamped,omitempty"`
}
