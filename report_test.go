package monitor

import (
	"strings"
	"testing"
)

func specimenSnapshot() *SystemSnapshot {
	return &SystemSnapshot{
		OSName:        "Linux",
		OSVersion:     "6.8.0",
		OSDetail:      "generic",
		NumCPU:        8,
		TotalRAM:      17179869184,
		AvailableRAM:  4294967296,
		ActiveThreads: 3,
	}
}

func TestFormatReportContents(t *testing.T) {
	out := FormatReport(specimenSnapshot())

	expected := []string{
		"Current OS: Linux 6.8.0 (generic)",
		"Number of CPUs: 8",
		"Total RAM: 16.00 GB",
		"Available RAM: 4.00 GB",
		"Number of active threads: 3",
	}
	for _, line := range expected {
		if !strings.Contains(out, line) {
			t.Errorf("expected to find %q in report, but it's missing", line)
		}
	}
}

func TestFormatReportStructure(t *testing.T) {
	out := FormatReport(specimenSnapshot())

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 9 {
		t.Fatalf("expected 9 report lines, got %d", len(lines))
	}

	border := strings.Repeat("=", 50)
	for _, i := range []int{0, 2, 8} {
		if lines[i] != border {
			t.Errorf("line %d: expected 50 '=' border, got %q", i, lines[i])
		}
	}
	if lines[1] != "System Information" {
		t.Errorf("expected title line, got %q", lines[1])
	}

	// exactly 5 metric lines between the inner border and the closing border
	for i, line := range lines[3:8] {
		if strings.Contains(line, "=") {
			t.Errorf("metric line %d looks like a border: %q", i, line)
		}
	}
}

func TestFormatReportDeterministic(t *testing.T) {
	s := specimenSnapshot()
	if FormatReport(s) != FormatReport(s) {
		t.Error("two formats of the same snapshot differ")
	}
}

func TestFormatReportClampsAvailable(t *testing.T) {
	s := &SystemSnapshot{
		OSName:        "Linux",
		OSVersion:     "6.8.0",
		OSDetail:      "generic",
		NumCPU:        1,
		TotalRAM:      1073741824,
		AvailableRAM:  2147483648,
		ActiveThreads: 1,
	}
	out := FormatReport(s)
	if !strings.Contains(out, "Available RAM: 1.00 GB") {
		t.Errorf("expected available clamped to total, got:\n%s", out)
	}
	if strings.Contains(out, "2.00 GB") {
		t.Errorf("rendered available above total:\n%s", out)
	}
}

func TestFormatGB(t *testing.T) {
	cases := []struct {
		bytes uint64
		want  string
	}{
		{1073741824, "1.00 GB"},
		{4294967296, "4.00 GB"},
		{17179869184, "16.00 GB"},
		{1610612736, "1.50 GB"},
		{0, "0.00 GB"},
	}
	for _, c := range cases {
		if got := formatGB(c.bytes); got != c.want {
			t.Errorf("formatGB(%d) = %q, want %q", c.bytes, got, c.want)
		}
	}
}

func TestFormatCPUUsage(t *testing.T) {
	u := &CPUUsage{
		Overall: 12.5,
		PerCPU:  []float64{80.0, 3.0},
		InUse:   1,
		High:    1,
	}
	out := FormatCPUUsage(u, 2)

	expected := []string{
		"Overall CPU Usage: 12.50%",
		"CPUs Currently in Use (>5%): 1 / 2",
		"CPUs with High Usage (>50%): 1 / 2",
		"CPU 0:  80.00% [IN USE]",
		"CPU 1:   3.00% [idle]",
	}
	for _, line := range expected {
		if !strings.Contains(out, line) {
			t.Errorf("expected to find %q in usage section, but it's missing", line)
		}
	}
	if strings.Contains(out, "=") {
		t.Error("usage section must not contain '=' border characters")
	}
}

func TestFormatLSCPU(t *testing.T) {
	out := FormatLSCPU("Architecture: x86_64")
	if !strings.Contains(out, "lscpu output:") {
		t.Errorf("missing section header:\n%s", out)
	}
	if !strings.HasSuffix(out, "Architecture: x86_64\n") {
		t.Errorf("expected newline-terminated output, got %q", out)
	}
}
