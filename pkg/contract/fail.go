package contract

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/golang/glog"
)

const failMsg = "A failure has occurred"

// Fail unconditionally abandons the process.
func Fail() {
	failfast(failMsg)
}

// Failf unconditionally abandons the process, formatting and logging the
// given message.
func Failf(msg string, args ...interface{}) {
	failfast(fmt.Sprintf("%v: %v", failMsg, fmt.Sprintf(msg, args...)))
}

// failfast logs and aborts the process in a way that is friendly to
// debugging.
func failfast(msg string) {
	if f := flag.Lookup("logtostderr"); f != nil {
		if g, ok := f.Value.(flag.Getter); ok {
			if enabled, _ := g.Get().(bool); enabled {
				// glog won't print the stack when logging to stderr, so do it here.
				fmt.Fprintf(os.Stderr, "fatal: %v\n", msg)
				debug.PrintStack()
			}
		}
	}
	glog.Fatal(msg)
}
