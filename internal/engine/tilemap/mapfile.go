package tilemap

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// MapFile is the YAML form of a tile layer. Tiles may be given flat
// (row-major) or as one list per row, not both.
type MapFile struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	Tiles  []int   `yaml:"tiles,omitempty"`
	Rows   [][]int `yaml:"rows,omitempty"`
	Hidden bool    `yaml:"hidden,omitempty"`
}

// ParseMap decodes and validates a YAML map document.
func ParseMap(data []byte) (Layer, error) {
	var f MapFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Layer{}, fmt.Errorf("parsing map: %w", err)
	}
	return f.Layer()
}

// Layer validates the file and builds the layer it describes.
func (f MapFile) Layer() (Layer, error) {
	if f.Width <= 0 || f.Height <= 0 {
		return Layer{}, fmt.Errorf("invalid map dimensions: %dx%d", f.Width, f.Height)
	}
	if len(f.Tiles) > 0 && len(f.Rows) > 0 {
		return Layer{}, fmt.Errorf("map sets both tiles and rows")
	}

	tiles := f.Tiles
	if len(f.Rows) > 0 {
		if len(f.Rows) != f.Height {
			return Layer{}, fmt.Errorf("map has %d rows, want %d", len(f.Rows), f.Height)
		}
		tiles = make([]int, 0, f.Width*f.Height)
		for y, row := range f.Rows {
			if len(row) != f.Width {
				return Layer{}, fmt.Errorf("map row %d has %d tiles, want %d", y, len(row), f.Width)
			}
			tiles = append(tiles, row...)
		}
	}

	if len(tiles) != f.Width*f.Height {
		return Layer{}, fmt.Errorf("map has %d tiles, want %d", len(tiles), f.Width*f.Height)
	}

	l := NewLayer(tiles, f.Width, f.Height)
	l.Visible = !f.Hidden
	return l, nil
}

// MarshalMap encodes a layer as a YAML map document, one row per line.
func MarshalMap(l Layer) ([]byte, error) {
	f := MapFile{Width: l.Width, Height: l.Height, Hidden: !l.Visible}
	f.Rows = make([][]int, l.Height)
	for y := range f.Rows {
		f.Rows[y] = l.Tiles[y*l.Width : (y+1)*l.Width]
	}

	var doc yaml.Node
	if err := doc.Encode(f); err != nil {
		return nil, fmt.Errorf("encoding map: %w", err)
	}
	for i := 0; i+1 < len(doc.Content); i += 2 {
		if doc.Content[i].Value != "rows" {
			continue
		}
		for _, row := range doc.Content[i+1].Content {
			row.Style = yaml.FlowStyle
		}
	}
	return yaml.Marshal(&doc)
}
