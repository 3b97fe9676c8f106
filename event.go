package monitor

import "fmt"

// Code uniquely identifies events and errors to improve context.
type Code int

// Collection error codes, one per metric that can fail.
const (
	NoOSInfo Code = -1 * (iota + 1)
	NoCPUCount
	NoMemoryStats
	NoThreadCount
	NoCPUUsage
	NoProcessMemory
)

func (c Code) String() string {
	switch c {
	case NoOSInfo:
		return "NoOSInfo"
	case NoCPUCount:
		return "NoCPUCount"
	case NoMemoryStats:
		return "NoMemoryStats"
	case NoThreadCount:
		return "NoThreadCount"
	case NoCPUUsage:
		return "NoCPUUsage"
	case NoProcessMemory:
		return "NoProcessMemory"
	}
	return fmt.Sprintf("Code(%d)", int(c))
}

// Event is a coded occurrence with formatted detail.
type Event struct {
	Code   Code
	format string
	Detail []interface{}
}

// Eventf returns a new Event.
func Eventf(code Code, format string, detail ...interface{}) *Event {
	return &Event{code, format, detail}
}

func (e *Event) String() string {
	msg := fmt.Sprintf(e.format, e.Detail...)
	return fmt.Sprintf("[%s] %s", e.Code.String(), msg)
}
