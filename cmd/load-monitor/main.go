package main

import (
	"os"

	monitor "github.com/yasandu0505/load-monitor"
)

func main() {
	monitor.RunCLI(os.Args)
}
