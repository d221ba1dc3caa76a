// Command polyraster renders polygon scenes to bitmap or PNG images.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gogpu/polyraster"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// globalFlags are shared by every subcommand.
type globalFlags struct {
	logLevel string
	debug    bool
}

func newRootCmd() *cobra.Command {
	var g globalFlags

	cmd := &cobra.Command{
		Use:          "polyraster",
		Short:        "rasterize polygon scenes",
		Long:         "polyraster outlines and scanline-fills closed polygons and writes the canvas as a 24-bit bitmap or PNG.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return g.setupLogger(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	cmd.PersistentFlags().StringVar(&g.logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	cmd.PersistentFlags().BoolVar(&g.debug, "debug", false, "shorthand for --log-level=debug")

	cmd.AddCommand(
		newRenderCmd(),
		newBatchCmd(),
		newProbeCmd(),
		newSceneCmd(),
		newVersionCmd(),
	)
	return cmd
}

// setupLogger installs a text logger on stderr for the library and the CLI.
func (g globalFlags) setupLogger(cmd *cobra.Command) error {
	level, err := parseLevel(g.logLevel)
	if err != nil {
		return err
	}
	if g.debug {
		level = slog.LevelDebug
	}
	polyraster.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: level,
	})))
	return nil
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return 0, fmt.Errorf("invalid --log-level %q: %w", s, err)
	}
	return level, nil
}
