package monitor

// Version is the load-monitor version number (replaced during build).
var Version = "0.1.0"

// BuildDate is the build date (replaced during build).
var BuildDate = "unknown"
