package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/polyraster"
	"github.com/gogpu/polyraster/bmp"
)

// outputFlags select how a rendered framebuffer is written.
type outputFlags struct {
	format  string
	upright bool
}

const (
	formatAuto = "auto"
	formatBMP  = "bmp"
	formatPNG  = "png"
)

// resolveFormat picks the output format, deriving it from the file extension
// when the flag is "auto".
func (o outputFlags) resolveFormat(path string) (string, error) {
	f := strings.ToLower(o.format)
	switch f {
	case formatBMP, formatPNG:
		return f, nil
	case formatAuto, "":
		if strings.EqualFold(filepath.Ext(path), ".png") {
			return formatPNG, nil
		}
		return formatBMP, nil
	default:
		return "", fmt.Errorf("unknown format %q (want bmp, png or auto)", o.format)
	}
}

// extension returns the file extension for an explicit format.
func (o outputFlags) extension() string {
	if strings.EqualFold(o.format, formatPNG) {
		return ".png"
	}
	return ".bmp"
}

// write saves fb to path and returns the written file size.
func (o outputFlags) write(path string, fb *polyraster.Framebuffer) (int64, error) {
	format, err := o.resolveFormat(path)
	if err != nil {
		return 0, err
	}

	switch format {
	case formatPNG:
		err = fb.SavePNG(path)
	default:
		opts := &bmp.Options{Orientation: bmp.BufferOrder}
		if o.upright {
			opts.Orientation = bmp.Upright
		}
		err = bmp.WriteFile(path, fb, opts)
	}
	if err != nil {
		return 0, err
	}

	info, err := os.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("stat output: %w", err)
	}
	return info.Size(), nil
}

// printer formats summary lines with grouped digits.
var printer = message.NewPrinter(language.English)
