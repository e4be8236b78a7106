package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Set via ldflags.
var version = "dev"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the chippick version",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "chippick %s\n", version)
			return err
		},
	}
}
