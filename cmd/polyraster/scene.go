package main

import (
	"github.com/spf13/cobra"

	"github.com/gogpu/polyraster/internal/scenefile"
)

func newSceneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scene",
		Short: "print the built-in scene as YAML",
		Long:  "print the built-in scene as YAML, a starting point for custom scene files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return scenefile.Encode(cmd.OutOrStdout(), scenefile.Default())
		},
	}
}
