package cmdutil

import (
	"fmt"
	"os"

	"github.com/golang/glog"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// RunFunc wraps an error-returning run func with standard error handling.
// Every jitxpr command wraps itself in this so that failures leave through a
// single door: no os.Exit calls from the middle of a callstack, and no cobra
// usage dump for an ordinary evaluation failure.
func RunFunc(run func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		if err := run(cmd, args); err != nil {
			// When stderr logging is on, the user already opted into detail,
			// so show stack traces; otherwise keep the message short and put
			// the detail behind a verbose log.
			var msg string
			if LogToStderr {
				msg = DetailedError(err)
			} else {
				msg = errorMessage(err)
				glog.V(3).Infof("%s", DetailedError(err))
			}
			ExitError(msg)
		}
	}
}

// Exit exits with a given error.
func Exit(err error) {
	ExitError(errorMessage(err))
}

// ExitError issues an error and exits with a standard error exit code.
func ExitError(msg string, args ...interface{}) {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	fmt.Fprintf(os.Stderr, "error: %s\n", msg)
	glog.Flush()
	os.Exit(-1)
}

// DetailedError extracts a detailed error message, including stack traces
// when the error chain carries them.
func DetailedError(err error) string {
	msg := errorMessage(err)
	hasstack := false
	for {
		stackerr, ok := err.(interface {
			StackTrace() errors.StackTrace
		})
		if !ok {
			break
		}

		msg += "\n"
		if hasstack {
			msg += "CAUSED BY...\n"
		}
		hasstack = true
		for _, f := range stackerr.StackTrace() {
			msg += fmt.Sprintf("%+v\n", f)
		}

		cause := errors.Cause(err)
		if cause == err || cause == nil {
			break
		}
		err = cause
	}
	return msg
}

// errorMessage flattens multierrors into a numbered list and otherwise
// returns the error's message unchanged.
func errorMessage(err error) string {
	multi, ok := err.(*multierror.Error)
	if !ok {
		return err.Error()
	}

	wr := multi.WrappedErrors()
	if len(wr) == 1 {
		return errorMessage(wr[0])
	}
	msg := fmt.Sprintf("%d errors occurred:", len(wr))
	for i, werr := range wr {
		msg += fmt.Sprintf("\n    %d) %s", i+1, errorMessage(werr))
	}
	return msg
}
