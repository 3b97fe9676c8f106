package monitor

import "os"

const exitCodeSuccess = 0

const exitCodeRuntimeError = 1

const exitCodeBadCommandLine = 2

type command struct {
	name  string
	desc  string
	run   func([]string)
	usage func()
}

var commands []command

func registerCommand(name, desc string, run func([]string), usage func()) {
	commands = append(commands, command{name, desc, run, usage})
}

func getCommand(name string) *command {
	for _, c := range commands {
		if c.name == name {
			return &c
		}
	}
	return nil
}

func init() {
	registerCommand("report", "prints the system information report", runReportCLI, reportUsage)
	registerCommand("bench", "runs the Monte Carlo pi benchmark", runBench, nil)
	registerCommand("version", "shows the version", runVersion, nil)
}

// RunCLI runs the command line interface with the given arguments (typically
// os.Args). Invocation without a command runs the report with defaults.
func RunCLI(args []string) {
	if len(args) < 2 {
		runReportCLI(nil)
		return
	}

	unknownCommandAndExit := func(cmd string) {
		printf("Error: unknown command %s\n", cmd)
		usageAndExit(cliUsage, exitCodeBadCommandLine)
	}

	if args[1] == "help" {
		if len(args) < 3 {
			usageAndExit(cliUsage, exitCodeBadCommandLine)
		}
		c := getCommand(args[2])
		if c == nil {
			unknownCommandAndExit(args[2])
		}
		if c.usage == nil {
			printf("%s: %s", c.name, c.desc)
			os.Exit(exitCodeSuccess)
		}
		usageAndExit(c.usage, exitCodeSuccess)
	}

	c := getCommand(args[1])
	if c == nil {
		unknownCommandAndExit(args[1])
	}
	c.run(args[2:])
}

func cliUsage() {
	setTabWriter(0)
	printf("load-monitor: reports host OS, CPU, RAM and thread information")
	printf("")
	printf("Usage:")
	printf("")
	printf("\t\t\t\tload-monitor [command] [arguments]")
	printf("\t\t\t\tload-monitor help command")
	printf("")
	printf("Running without a command prints the system information report.")
	printf("")
	printf("Commands:")
	printf("")
	for _, c := range commands {
		printf("\t\t\t\t%s\t%s\t", c.name, c.desc)
	}
}

func usageAndExit(usage func(), exitCode int) {
	if exitCode != exitCodeSuccess {
		printTo = os.Stderr
	}
	usage()
	flush()
	os.Exit(exitCode)
}
