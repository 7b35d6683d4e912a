// Package texture decodes sprite sheet and tile set images into RGBA pixel
// data and describes uploaded textures with an opaque handle.
package texture

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/png" // register PNG decoder
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
)

// Texture is an opaque handle to an uploaded image. ID is the backend's
// name for it (a GL texture object); Width and Height are in pixels.
type Texture struct {
	ID     uint32
	Width  int
	Height int
}

// Valid reports whether the handle refers to an uploaded texture.
func (t Texture) Valid() bool {
	return t.ID != 0 && t.Width > 0 && t.Height > 0
}

// Decode decodes image data, choosing the decoder from the file extension of
// name. TGA and BMP are handled explicitly; anything else goes through the
// registered image decoders.
func Decode(name string, data []byte) (image.Image, error) {
	var (
		img image.Image
		err error
	)
	switch strings.ToLower(filepath.Ext(name)) {
	case ".tga":
		img, err = DecodeTGA(data)
	case ".bmp":
		img, err = bmp.Decode(bytes.NewReader(data))
	default:
		img, _, err = image.Decode(bytes.NewReader(data))
	}
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", name, err)
	}
	return img, nil
}

// ToRGBA converts img to a tightly packed *image.RGBA anchored at (0,0).
// When key is non-nil, pixels matching it exactly become transparent black.
func ToRGBA(img image.Image, key *color.RGBA) *image.RGBA {
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)

	if key != nil {
		for i := 0; i+3 < len(rgba.Pix); i += 4 {
			if rgba.Pix[i] == key.R && rgba.Pix[i+1] == key.G && rgba.Pix[i+2] == key.B {
				rgba.Pix[i], rgba.Pix[i+1], rgba.Pix[i+2], rgba.Pix[i+3] = 0, 0, 0, 0
			}
		}
	}
	return rgba
}

// ParseColorKey parses "#rrggbb" into a color key. An empty string means no key.
func ParseColorKey(s string) (*color.RGBA, error) {
	if s == "" {
		return nil, nil
	}
	var c color.RGBA
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
		return nil, fmt.Errorf("invalid color key %q: %w", s, err)
	}
	c.A = 0xff
	return &c, nil
}
