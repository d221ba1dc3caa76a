package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/polyraster"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "polyraster %s\n", polyraster.Version)
			return err
		},
	}
}
