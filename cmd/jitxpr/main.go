package main

import (
	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/MustafaAamir/JITxpr/pkg/cmdutil"
	"github.com/MustafaAamir/JITxpr/pkg/env"
)

// NewJitxprCmd creates the root jitxpr Cmd instance.
func NewJitxprCmd() *cobra.Command {
	var logToStderr bool
	var verbose int
	cmd := &cobra.Command{
		Use:   "jitxpr",
		Short: "jitxpr parses infix expressions and runs them on a stack machine",
		Long: "jitxpr parses infix expressions with a binding-power (Pratt) parser,\n" +
			"flattens the tree into a postfix program, and executes the program on a\n" +
			"small stack-machine backend. Every command prints the postfix rendering;\n" +
			"evaluating commands print the computed value as well.",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmdutil.InitLogging(logToStderr, verbose)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			glog.Flush()
		},
	}

	cmd.PersistentFlags().BoolVar(&logToStderr, "logtostderr", false, "Log to stderr instead of to files")
	cmd.PersistentFlags().IntVarP(
		&verbose, "verbose", "v", 0, "Enable verbose logging (e.g., v=3); anything >3 is very verbose")

	cmd.AddCommand(newReplCmd())
	cmd.AddCommand(newEvalCmd())
	cmd.AddCommand(newParseCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func main() {
	env.Parse()
	if err := NewJitxprCmd().Execute(); err != nil {
		cmdutil.Exit(err)
	}
}
