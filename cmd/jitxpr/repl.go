package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MustafaAamir/JITxpr/pkg/cmdutil"
	"github.com/MustafaAamir/JITxpr/pkg/env"
	"github.com/MustafaAamir/JITxpr/pkg/eval"
	"github.com/MustafaAamir/JITxpr/pkg/rpn"
	"github.com/MustafaAamir/JITxpr/pkg/vm"
)

var (
	replPrompt = env.String("JITXPR_PROMPT", "<rpn> ")
	replTrace  = env.Bool("JITXPR_TRACE", false)
)

func newReplCmd() *cobra.Command {
	var trace bool
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Read expressions interactively, print postfix and value for each",
		Args:  cobra.NoArgs,
		Run: cmdutil.RunFunc(func(cmd *cobra.Command, args []string) error {
			if trace || *replTrace {
				vm.TraceOut = os.Stderr
			}
			return runRepl(os.Stdin, os.Stdout, vm.Compiler{})
		}),
	}
	cmd.Flags().BoolVar(&trace, "trace", false,
		"Print every executed instruction and the machine stack to stderr")
	return cmd
}

// runRepl drives the read-eval-print loop until EOF or a quit command. A
// line that fails anywhere in the pipeline gets an error report and the
// loop keeps going; only I/O trouble on the input ends it with an error.
func runRepl(in io.Reader, out io.Writer, be rpn.Backend) error {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, *replPrompt)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
			continue
		case "quit", "exit":
			return nil
		}

		res, err := eval.Evaluate(line, be)
		if err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
			continue
		}
		fmt.Fprintf(out, "%s -> %d\n", res.Postfix, res.Value)
	}
}
