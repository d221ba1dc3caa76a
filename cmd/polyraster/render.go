package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/gogpu/polyraster"
	"github.com/gogpu/polyraster/internal/scenefile"
)

type renderFlags struct {
	scene  string
	output string
	width  int
	height int
	out    outputFlags
}

func newRenderCmd() *cobra.Command {
	var f renderFlags

	cmd := &cobra.Command{
		Use:   "render",
		Short: "render a scene to an image",
		Long:  "render a scene file, or the built-in scene when --scene is omitted, to a bitmap or PNG image",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, f)
		},
	}
	cmd.Flags().StringVarP(&f.scene, "scene", "s", "", "scene YAML file (default: built-in scene)")
	cmd.Flags().StringVarP(&f.output, "output", "o", "out.bmp", "output file")
	cmd.Flags().IntVar(&f.width, "width", 0, "override canvas width")
	cmd.Flags().IntVar(&f.height, "height", 0, "override canvas height")
	cmd.Flags().StringVarP(&f.out.format, "format", "f", formatAuto, "output format: bmp, png or auto (from extension)")
	cmd.Flags().BoolVar(&f.out.upright, "upright", false, "write bitmap rows bottom-up so viewers show row 0 on top")
	return cmd
}

func runRender(cmd *cobra.Command, f renderFlags) error {
	scene := scenefile.Default()
	if f.scene != "" {
		var err error
		if scene, err = scenefile.Load(f.scene); err != nil {
			return err
		}
	}
	flags := cmd.Flags()
	if flags.Changed("width") {
		if f.width <= 0 {
			return fmt.Errorf("invalid --width %d: must be positive", f.width)
		}
		scene.Width = f.width
	}
	if flags.Changed("height") {
		if f.height <= 0 {
			return fmt.Errorf("invalid --height %d: must be positive", f.height)
		}
		scene.Height = f.height
	}

	fb, stats, err := scene.Render()
	if err != nil {
		return err
	}

	size, err := f.out.write(f.output, fb)
	if err != nil {
		return err
	}

	polyraster.Logger().Info("rendered",
		slog.String("output", f.output),
		slog.Int("polygons", stats.Polygons),
		slog.Int("pixels", stats.Pixels),
	)
	_, err = printer.Fprintf(cmd.OutOrStdout(), "wrote %s (%dx%d, %d polygons, %d bytes)\n",
		f.output, fb.Width(), fb.Height(), stats.Polygons, size)
	if err != nil {
		return fmt.Errorf("write summary: %w", err)
	}
	return nil
}
