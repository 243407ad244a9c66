package main

import (
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/MustafaAamir/JITxpr/pkg/cmdutil"
	"github.com/MustafaAamir/JITxpr/pkg/eval"
	"github.com/MustafaAamir/JITxpr/pkg/vm"
)

func newEvalCmd() *cobra.Command {
	var jobs int
	cmd := &cobra.Command{
		Use:   "eval EXPRESSION [EXPRESSION...]",
		Short: "Evaluate expressions, printing postfix and value for each",
		Args:  cobra.MinimumNArgs(1),
		Run: cmdutil.RunFunc(func(cmd *cobra.Command, args []string) error {
			return runEval(os.Stdout, args, jobs)
		}),
	}
	cmd.Flags().IntVarP(&jobs, "jobs", "j", 1,
		"Number of expressions to evaluate concurrently")
	return cmd
}

// runEval evaluates every argument, each on its own compiled program.
// Output order always follows argument order regardless of --jobs; failures
// are collected so one bad expression never hides the others.
func runEval(out io.Writer, args []string, jobs int) error {
	if jobs < 1 {
		return errors.Errorf("--jobs must be at least 1, got %d", jobs)
	}

	results := make([]eval.Result, len(args))
	errs := make([]error, len(args))

	// The backend is stateless and every invocation runs on its own
	// machine, so expressions can compile and run in parallel.
	var g errgroup.Group
	g.SetLimit(jobs)
	for i, arg := range args {
		i, arg := i, arg
		g.Go(func() error {
			results[i], errs[i] = eval.Evaluate(arg, vm.Compiler{})
			return nil
		})
	}
	_ = g.Wait()

	var result *multierror.Error
	for i, arg := range args {
		if errs[i] != nil {
			result = multierror.Append(result, errors.Wrapf(errs[i], "%q", arg))
			continue
		}
		fmt.Fprintf(out, "%s -> %d\n", results[i].Postfix, results[i].Value)
	}
	return result.ErrorOrNil()
}
