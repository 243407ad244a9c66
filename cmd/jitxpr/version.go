package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MustafaAamir/JITxpr/pkg/cmdutil"
	"github.com/MustafaAamir/JITxpr/pkg/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print jitxpr's version number",
		Run: cmdutil.RunFunc(func(cmd *cobra.Command, args []string) error {
			fmt.Printf("jitxpr version %v\n", version.Semver())
			return nil
		}),
	}
}
