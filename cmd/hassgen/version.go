package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/syssam/hassgen/internal/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the hassgen version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "hassgen %s (%s)\n", version.Tag, runtime.Version())
		},
	}
}
