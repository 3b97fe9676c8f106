package monitor

import (
	"fmt"
	"strings"
)

const reportWidth = 50

// binary units
const (
	bytesPerGB = 1 << 30
	bytesPerMB = 1 << 20
)

// FormatReport renders the fixed bordered report block for a snapshot. It is
// a total function of the snapshot and never fails.
func FormatReport(s *SystemSnapshot) string {
	border := strings.Repeat("=", reportWidth)

	avail := s.AvailableRAM
	if avail > s.TotalRAM {
		avail = s.TotalRAM
	}

	var b strings.Builder
	fmt.Fprintln(&b, border)
	fmt.Fprintln(&b, "System Information")
	fmt.Fprintln(&b, border)
	fmt.Fprintf(&b, "Current OS: %s %s (%s)\n", s.OSName, s.OSVersion, s.OSDetail)
	fmt.Fprintf(&b, "Number of CPUs: %d\n", s.NumCPU)
	fmt.Fprintf(&b, "Total RAM: %s\n", formatGB(s.TotalRAM))
	fmt.Fprintf(&b, "Available RAM: %s\n", formatGB(avail))
	fmt.Fprintf(&b, "Number of active threads: %d\n", s.ActiveThreads)
	fmt.Fprintln(&b, border)
	return b.String()
}

// FormatCPUUsage renders the supplemental CPU usage section, with one line
// per logical CPU.
func FormatCPUUsage(u *CPUUsage, numCPU int) string {
	rule := strings.Repeat("-", reportWidth)

	var b strings.Builder
	fmt.Fprintln(&b, "CPU Usage:")
	fmt.Fprintln(&b, rule)
	fmt.Fprintf(&b, "Overall CPU Usage: %.2f%%\n", u.Overall)
	fmt.Fprintf(&b, "CPUs Currently in Use (>%.0f%%): %d / %d\n",
		cpuInUseThreshold, u.InUse, numCPU)
	fmt.Fprintf(&b, "CPUs with High Usage (>%.0f%%): %d / %d\n",
		cpuHighThreshold, u.High, numCPU)
	fmt.Fprintln(&b, rule)
	for i, p := range u.PerCPU {
		status := "idle"
		if p > cpuInUseThreshold {
			status = "IN USE"
		}
		fmt.Fprintf(&b, "CPU %d: %6.2f%% [%s]\n", i, p, status)
	}
	return b.String()
}

// FormatLSCPU renders the supplemental lscpu section.
func FormatLSCPU(out string) string {
	rule := strings.Repeat("-", reportWidth)

	var b strings.Builder
	fmt.Fprintln(&b, "lscpu output:")
	fmt.Fprintln(&b, rule)
	fmt.Fprint(&b, out)
	if !strings.HasSuffix(out, "\n") {
		fmt.Fprintln(&b)
	}
	return b.String()
}

// formatGB converts bytes to binary gigabytes with two decimal places.
func formatGB(bytes uint64) string {
	return fmt.Sprintf("%.2f GB", float64(bytes)/bytesPerGB)
}

// formatMB converts bytes to binary megabytes with two decimal places.
func formatMB(bytes uint64) string {
	return fmt.Sprintf("%.2f MB", float64(bytes)/bytesPerMB)
}
