// Package bmp writes framebuffers as uncompressed 24-bit bitmap files.
//
// The file is a 14-byte file header followed by a 40-byte info header and
// BGR pixel rows. Widths that are a multiple of 4 produce rows without
// padding; other widths are padded to 4 bytes as readers expect.
package bmp

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/gogpu/polyraster"
)

const (
	fileHeaderLen = 14
	infoHeaderLen = 40
	headerLen     = fileHeaderLen + infoHeaderLen
	bitsPerPixel  = 24
)

// Encoding errors.
var (
	// ErrEmptySource is returned when the source has no pixels or its
	// snapshot does not match its dimensions.
	ErrEmptySource = errors.New("bmp: empty or inconsistent source")

	// ErrTooLarge is returned when the image does not fit the 32-bit size fields.
	ErrTooLarge = errors.New("bmp: image too large")
)

// Source is the encoder's view of a framebuffer: dimensions plus a row-major
// pixel snapshot.
type Source interface {
	Width() int
	Height() int
	Snapshot() []polyraster.Color
}

// Orientation selects the order in which rows are written.
type Orientation int

const (
	// BufferOrder writes row 0 first under a positive height. Bitmap readers
	// treat the first row as the bottom one, so the picture appears flipped
	// vertically.
	BufferOrder Orientation = iota

	// Upright writes the last row first so readers show row 0 at the top.
	Upright
)

// String returns the orientation name.
func (o Orientation) String() string {
	switch o {
	case BufferOrder:
		return "buffer"
	case Upright:
		return "upright"
	default:
		return fmt.Sprintf("Orientation(%d)", int(o))
	}
}

// Options configures the encoder. A nil *Options uses BufferOrder.
type Options struct {
	Orientation Orientation
}

// fileHeader is the BITMAPFILEHEADER structure.
type fileHeader struct {
	Type      [2]byte // "BM"
	Size      uint32  // whole file size in bytes
	Reserved1 uint16
	Reserved2 uint16
	OffBits   uint32 // offset of the pixel array
}

// infoHeader is the BITMAPINFOHEADER structure.
type infoHeader struct {
	Size            uint32
	Width           int32
	Height          int32
	Planes          uint16
	BitCount        uint16
	Compression     uint32
	SizeImage       uint32
	XPixelsPerM     int32
	YPixelsPerM     int32
	ColorsUsed      uint32
	ColorsImportant uint32
}

// rowStride returns the padded byte length of one pixel row.
func rowStride(width int) int {
	return (width*3 + 3) &^ 3
}

// FileSize returns the size in bytes of the encoded file for the given dimensions.
func FileSize(width, height int) int {
	return headerLen + rowStride(width)*height
}

// Encode writes src to w as a 24-bit uncompressed bitmap.
func Encode(w io.Writer, src Source, opts *Options) error {
	var o Options
	if opts != nil {
		o = *opts
	}

	width, height := src.Width(), src.Height()
	pix := src.Snapshot()
	if width <= 0 || height <= 0 || len(pix) != width*height {
		return fmt.Errorf("%w: %dx%d with %d pixels", ErrEmptySource, width, height, len(pix))
	}

	stride := rowStride(width)
	dataSize := stride * height
	if int64(headerLen)+int64(dataSize) > math.MaxUint32 || width > math.MaxInt32 || height > math.MaxInt32 {
		return fmt.Errorf("%w: %dx%d", ErrTooLarge, width, height)
	}

	fh := fileHeader{
		Type:    [2]byte{'B', 'M'},
		Size:    uint32(headerLen + dataSize),
		OffBits: headerLen,
	}
	ih := infoHeader{
		Size:      infoHeaderLen,
		Width:     int32(width),
		Height:    int32(height),
		Planes:    1,
		BitCount:  bitsPerPixel,
		SizeImage: uint32(dataSize),
	}

	bw := bufio.NewWriter(w)
	if err := binary.Write(bw, binary.LittleEndian, fh); err != nil {
		return fmt.Errorf("bmp: write file header: %w", err)
	}
	if err := binary.Write(bw, binary.LittleEndian, ih); err != nil {
		return fmt.Errorf("bmp: write info header: %w", err)
	}

	row := make([]byte, stride)
	for i := 0; i < height; i++ {
		y := i
		if o.Orientation == Upright {
			y = height - 1 - i
		}
		for x, c := range pix[y*width : (y+1)*width] {
			row[x*3+0] = c.B
			row[x*3+1] = c.G
			row[x*3+2] = c.R
		}
		if _, err := bw.Write(row); err != nil {
			return fmt.Errorf("bmp: write pixels: %w", err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("bmp: flush: %w", err)
	}
	return nil
}

// WriteFile encodes src into the file at path, creating or truncating it.
func WriteFile(path string, src Source, opts *Options) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("bmp: create file: %w", err)
	}

	if err := Encode(f, src, opts); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
