package main

import (
	"fmt"
	"image"
	_ "image/png" // register PNG decoder
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"
	_ "golang.org/x/image/bmp" // register BMP decoder

	"github.com/gogpu/polyraster"
)

func newProbeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "probe <image> <x> <y>",
		Short: "print the color of one pixel of a bitmap or PNG",
		Long: "probe decodes an image and prints the pixel at (x, y) as RGB(r, g, b). " +
			"Bitmaps written in buffer order appear vertically flipped to decoders.",
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid x %q: %w", args[1], err)
			}
			y, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("invalid y %q: %w", args[2], err)
			}

			c, err := probe(args[0], x, y)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), c)
			return err
		},
	}
}

// probe returns the color at (x, y) of the image file at path.
func probe(path string, x, y int) (polyraster.Color, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return polyraster.Color{}, fmt.Errorf("open image: %w", err)
	}
	defer func() { _ = f.Close() }()

	img, format, err := image.Decode(f)
	if err != nil {
		return polyraster.Color{}, fmt.Errorf("decode image: %w", err)
	}
	polyraster.Logger().Debug("probe", "path", path, "format", format, "bounds", img.Bounds().String())

	p := image.Pt(x, y).Add(img.Bounds().Min)
	if !p.In(img.Bounds()) {
		return polyraster.Color{}, fmt.Errorf("%w: (%d, %d) in %v", polyraster.ErrOutOfRange, x, y, img.Bounds())
	}
	return polyraster.FromColor(img.At(p.X, p.Y)), nil
}
