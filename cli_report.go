package monitor

import (
	"fmt"
	"io"
	"time"

	flag "github.com/ogier/pflag"
)

func reportUsage() {
	setBufio()
	printf("Usage: report [options]")
	printf("")
	printf("Options:")
	printf("--------")
	printf("")
	printf("-i interval    CPU usage sampling interval (default %s)", DefaultUsageInterval)
	printf("               0 skips the CPU usage section entirely")
	printf("-q             quiet, print only the bordered report block")
}

// ReportConfig defines the report command configuration.
type ReportConfig struct {
	UsageInterval time.Duration
	Quiet         bool
}

// NewDefaultReportConfig returns a new ReportConfig with the default
// settings.
func NewDefaultReportConfig() *ReportConfig {
	return &ReportConfig{
		UsageInterval: DefaultUsageInterval,
		Quiet:         DefaultQuiet,
	}
}

// runReport executes the collect, sample and format pipeline. Nothing is
// written to w until every query has succeeded, so a failed run emits no
// partial report.
func runReport(w io.Writer, p Prober, cfg *ReportConfig) error {
	snap, err := Collect(p)
	if err != nil {
		return err
	}

	var usage *CPUUsage
	if !cfg.Quiet && cfg.UsageInterval > 0 {
		usage, err = SampleCPUUsage(cfg.UsageInterval)
		if err != nil {
			return err
		}
	}

	fmt.Fprint(w, FormatReport(snap))
	if usage != nil {
		fmt.Fprintln(w)
		fmt.Fprint(w, FormatCPUUsage(usage, snap.NumCPU))
	}
	if !cfg.Quiet {
		fmt.Fprintln(w)
		fmt.Fprint(w, FormatLSCPU(lscpuOutput()))
	}
	return nil
}

// runReportCLI runs the report command line interface.
func runReportCLI(args []string) {
	fs := flag.NewFlagSet("report", 0)
	fs.Usage = func() {
		usageAndExit(reportUsage, exitCodeBadCommandLine)
	}
	var interval = fs.DurationP("i", "i", DefaultUsageInterval, "usage interval")
	var quiet = fs.BoolP("q", "q", DefaultQuiet, "quiet")
	fs.Parse(args)

	cfg := NewDefaultReportConfig()
	cfg.UsageInterval = *interval
	cfg.Quiet = *quiet

	err := runReport(printTo, SysProber{}, cfg)
	exitOnError(err, exitCodeRuntimeError)
	flush()
}
