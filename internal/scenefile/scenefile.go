// Package scenefile loads and saves render scenes as YAML.
//
//	width: 800
//	height: 800
//	background: "#000000"
//	outline: "#ffffff"
//	fills: ["#00ff00", "#000000"]
//	polygons:
//	  - points: [[413, 177], [448, 159], [502, 88]]
//
// Omitted fields take the values of Default.
package scenefile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/polyraster"
)

// Scene file errors.
var (
	// ErrInvalidSize is returned for a non-positive width or height.
	ErrInvalidSize = errors.New("scenefile: width and height must be positive")

	// ErrNoFills is returned when the fill list is present but empty.
	ErrNoFills = errors.New("scenefile: fills must not be empty")

	// ErrInvalidPoint is returned for a point that is not an [x, y] pair.
	ErrInvalidPoint = errors.New("scenefile: point must have exactly two coordinates")

	// ErrInvalidColor is returned for a color that is not a hex string.
	ErrInvalidColor = errors.New("scenefile: invalid color")
)

// document is the YAML representation of a scene.
type document struct {
	Width      *int      `yaml:"width,omitempty"`
	Height     *int      `yaml:"height,omitempty"`
	Background string    `yaml:"background,omitempty"`
	Outline    string    `yaml:"outline,omitempty"`
	Fills      []string  `yaml:"fills,flow,omitempty"`
	Polygons   []polygon `yaml:"polygons"`
}

type polygon struct {
	Points [][]float64 `yaml:"points,flow"`
}

// Load reads a scene from the YAML file at path.
func Load(path string) (polyraster.Scene, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return polyraster.Scene{}, fmt.Errorf("scenefile: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	s, err := Decode(f)
	if err != nil {
		return polyraster.Scene{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Decode reads a scene from r. Unknown fields are rejected.
func Decode(r io.Reader) (polyraster.Scene, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return polyraster.Scene{}, fmt.Errorf("scenefile: decode: %w", err)
	}
	return doc.scene()
}

// Encode writes s to w as YAML.
func Encode(w io.Writer, s polyraster.Scene) error {
	doc := document{
		Width:      &s.Width,
		Height:     &s.Height,
		Background: s.Background.Hex(),
		Outline:    s.Outline.Hex(),
	}
	for _, c := range s.Fills.Colors() {
		doc.Fills = append(doc.Fills, c.Hex())
	}
	for _, p := range s.Polygons {
		pts := make([][]float64, len(p))
		for i, v := range p {
			pts[i] = []float64{v.X, v.Y}
		}
		doc.Polygons = append(doc.Polygons, polygon{Points: pts})
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("scenefile: encode: %w", err)
	}
	return enc.Close()
}

// scene validates the document and fills in defaults.
func (d document) scene() (polyraster.Scene, error) {
	s := Default()
	s.Polygons = nil

	if d.Width != nil {
		s.Width = *d.Width
	}
	if d.Height != nil {
		s.Height = *d.Height
	}
	if s.Width <= 0 || s.Height <= 0 {
		return polyraster.Scene{}, fmt.Errorf("%w: %dx%d", ErrInvalidSize, s.Width, s.Height)
	}

	var err error
	if s.Background, err = parseColor("background", d.Background, s.Background); err != nil {
		return polyraster.Scene{}, err
	}
	if s.Outline, err = parseColor("outline", d.Outline, s.Outline); err != nil {
		return polyraster.Scene{}, err
	}

	if d.Fills != nil {
		if len(d.Fills) == 0 {
			return polyraster.Scene{}, ErrNoFills
		}
		colors := make([]polyraster.Color, len(d.Fills))
		for i, f := range d.Fills {
			if colors[i], err = parseColor(fmt.Sprintf("fills[%d]", i), f, polyraster.Color{}); err != nil {
				return polyraster.Scene{}, err
			}
		}
		if s.Fills, err = polyraster.NewPalette(colors...); err != nil {
			return polyraster.Scene{}, err
		}
	}

	for i, p := range d.Polygons {
		poly := make(polyraster.Polygon, len(p.Points))
		for j, pt := range p.Points {
			if len(pt) != 2 {
				return polyraster.Scene{}, fmt.Errorf("%w: polygons[%d].points[%d] has %d", ErrInvalidPoint, i, j, len(pt))
			}
			poly[j] = polyraster.Pt(pt[0], pt[1])
		}
		s.Polygons = append(s.Polygons, poly)
	}
	return s, nil
}

func parseColor(field, value string, fallback polyraster.Color) (polyraster.Color, error) {
	if value == "" {
		return fallback, nil
	}
	c, err := polyraster.Hex(value)
	if err != nil {
		return polyraster.Color{}, fmt.Errorf("%w: %s: %w", ErrInvalidColor, field, err)
	}
	return c, nil
}
