package monitor

import (
	"os"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
	"github.com/shirou/gopsutil/v4/process"
)

// Prober is the narrow platform interface behind Collect. All methods are
// read-only queries against the host. Tests may substitute their own
// implementation.
type Prober interface {
	// OSInfo returns the OS name, version and a free-form detail string.
	OSInfo() (name, version, detail string, err error)

	// CPUCount returns the number of logical CPUs.
	CPUCount() (int, error)

	// MemoryStats returns total and available physical memory in bytes.
	MemoryStats() (total, available uint64, err error)

	// ThreadCount returns the number of OS threads active in the current
	// process.
	ThreadCount() (int, error)
}

// SysProber probes the host through gopsutil.
type SysProber struct{}

func (SysProber) OSInfo() (string, string, string, error) {
	hi, err := host.Info()
	if err != nil {
		return "", "", "", err
	}
	return hi.OS, hi.KernelVersion, osDetail(hi), nil
}

func (SysProber) CPUCount() (int, error) {
	return cpu.Counts(true)
}

func (SysProber) MemoryStats() (uint64, uint64, error) {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return 0, 0, err
	}
	return vm.Total, vm.Available, nil
}

func (SysProber) ThreadCount() (int, error) {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return 0, err
	}
	n, err := p.NumThreads()
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

// Collect queries the host once through p and returns a fully populated
// snapshot, or an Error naming the first metric that could not be obtained.
// No partial snapshots are returned.
func Collect(p Prober) (*SystemSnapshot, error) {
	name, version, detail, err := p.OSInfo()
	if err != nil {
		return nil, Errorf(NoOSInfo, "OS identity: %s", err)
	}

	ncpu, err := p.CPUCount()
	if err != nil {
		return nil, Errorf(NoCPUCount, "CPU count: %s", err)
	}

	total, avail, err := p.MemoryStats()
	if err != nil {
		return nil, Errorf(NoMemoryStats, "memory stats: %s", err)
	}

	nthr, err := p.ThreadCount()
	if err != nil {
		return nil, Errorf(NoThreadCount, "thread count: %s", err)
	}

	s := &SystemSnapshot{
		OSName:        name,
		OSVersion:     version,
		OSDetail:      detail,
		NumCPU:        ncpu,
		TotalRAM:      total,
		AvailableRAM:  avail,
		ActiveThreads: nthr,
	}

	// available > total indicates a platform accounting anomaly
	if s.AvailableRAM > s.TotalRAM {
		s.AvailableRAM = s.TotalRAM
		s.Clamped = true
	}

	return s, nil
}

// processRSS returns the resident set size of the current process in bytes.
func processRSS() (uint64, error) {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return 0, Errorf(NoProcessMemory, "process handle: %s", err)
	}
	mi, err := p.MemoryInfo()
	if err != nil {
		return 0, Errorf(NoProcessMemory, "process memory: %s", err)
	}
	return mi.RSS, nil
}
