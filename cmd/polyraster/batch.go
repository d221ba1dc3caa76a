package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/gogpu/polyraster"
	"github.com/gogpu/polyraster/internal/scenefile"
)

type batchFlags struct {
	outdir string
	jobs   int
	out    outputFlags
}

func newBatchCmd() *cobra.Command {
	var f batchFlags

	cmd := &cobra.Command{
		Use:   "batch <scene.yaml>...",
		Short: "render several scene files concurrently",
		Long:  "render each scene file into <outdir>/<name>.<format>; every scene gets its own framebuffer",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(cmd, f, args)
		},
	}
	cmd.Flags().StringVarP(&f.outdir, "outdir", "d", ".", "output directory")
	cmd.Flags().IntVarP(&f.jobs, "jobs", "j", runtime.GOMAXPROCS(0), "maximum scenes rendered at once")
	cmd.Flags().StringVarP(&f.out.format, "format", "f", formatBMP, "output format: bmp or png")
	cmd.Flags().BoolVar(&f.out.upright, "upright", false, "write bitmap rows bottom-up so viewers show row 0 on top")
	return cmd
}

// batchResult is the outcome of one scene.
type batchResult struct {
	scene  string
	output string
	size   int64
}

func runBatch(cmd *cobra.Command, f batchFlags, scenes []string) error {
	if f.out.format == formatAuto {
		return fmt.Errorf("batch needs an explicit --format (bmp or png)")
	}
	if _, err := f.out.resolveFormat(""); err != nil {
		return err
	}
	outputs, err := batchOutputs(f, scenes)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(f.outdir, 0o750); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(max(f.jobs, 1))

	// Each goroutine writes only its own slot.
	results := make([]batchResult, len(scenes))
	for i, path := range scenes {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			scene, err := scenefile.Load(path)
			if err != nil {
				return err
			}
			fb, stats, err := scene.Render()
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			out := outputs[i]
			size, err := f.out.write(out, fb)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			polyraster.Logger().Info("rendered",
				slog.String("scene", path),
				slog.String("output", out),
				slog.Int("polygons", stats.Polygons),
			)

			results[i] = batchResult{scene: path, output: out, size: size}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	var total int64
	for _, r := range results {
		total += r.size
		if _, err := printer.Fprintf(w, "%s -> %s (%d bytes)\n", r.scene, r.output, r.size); err != nil {
			return fmt.Errorf("write summary: %w", err)
		}
	}
	if _, err := printer.Fprintf(w, "%d scenes, %d bytes\n", len(results), total); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}
	return nil
}

// batchOutputs maps every scene to its output path. Two scenes that would
// write the same file are rejected before anything renders.
func batchOutputs(f batchFlags, scenes []string) ([]string, error) {
	outputs := make([]string, len(scenes))
	seen := make(map[string]string, len(scenes))
	for i, path := range scenes {
		name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		out := filepath.Join(f.outdir, name+f.out.extension())
		if prev, ok := seen[out]; ok {
			return nil, fmt.Errorf("%s and %s both write %s", prev, path, out)
		}
		seen[out] = path
		outputs[i] = out
	}
	return outputs, nil
}
