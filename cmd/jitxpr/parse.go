package main

import (
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/MustafaAamir/JITxpr/pkg/cmdutil"
	"github.com/MustafaAamir/JITxpr/pkg/eval"
)

func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse EXPRESSION [EXPRESSION...]",
		Short: "Print the postfix rendering of expressions without running them",
		Long: "parse runs only the front half of the pipeline, so it also accepts\n" +
			"expressions with name leaves and operators the machine cannot execute,\n" +
			"like \"a + b\" or \"f . g !\".",
		Args: cobra.MinimumNArgs(1),
		Run: cmdutil.RunFunc(func(cmd *cobra.Command, args []string) error {
			return runParse(os.Stdout, args)
		}),
	}
}

func runParse(out io.Writer, args []string) error {
	var result *multierror.Error
	for _, arg := range args {
		postfix, err := eval.Postfix(arg)
		if err != nil {
			result = multierror.Append(result, errors.Wrapf(err, "%q", arg))
			continue
		}
		fmt.Fprintln(out, postfix)
	}
	return result.ErrorOrNil()
}
