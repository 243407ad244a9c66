package cmdutil

import (
	"flag"
	"strconv"
)

// LogToStderr and Verbose mirror the persistent logging flags, so error
// paths can tell how much detail is already reaching the terminal.
var (
	LogToStderr bool
	Verbose     int
)

// InitLogging ensures glog has been initialized with the given settings.
// glog is configurable only through its package flags, so this parses the
// flag package's command line and then pokes the values in directly.
func InitLogging(logToStderr bool, verbose int) {
	flag.Parse()
	if logToStderr {
		flag.Lookup("logtostderr").Value.Set("true")
	}
	if verbose > 0 {
		flag.Lookup("v").Value.Set(strconv.Itoa(verbose))
	}
	LogToStderr = logToStderr
	Verbose = verbose
}
