package monitor

// Error is a load-monitor error.
type Error struct {
	*Event
}

// Errorf returns a new Error.
func Errorf(code Code, format string, detail ...interface{}) *Error {
	return &Error{Eventf(code, format, detail...)}
}

func (e *Error) Error() string {
	return e.Event.String()
}
