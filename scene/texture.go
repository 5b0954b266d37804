package scene

import (
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg" // texture formats
	_ "image/png"
	"io"
	"os"
	"path/filepath"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
)

// Texture holds CPU-side pixel data for a 2D texture.
// Pixels are RGBA8, 4 bytes per pixel, with rows ordered bottom to top so
// texcoord (0,0) lands on the lower-left corner of the source image.
type Texture struct {
	Name   string
	Width  int
	Height int
	Pixels []byte
}

// LoadTexture reads a PNG, JPEG or BMP file and returns it as RGBA8.
func LoadTexture(path string) (*Texture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open texture %q: %w", ErrMalformedAsset, path, err)
	}
	defer f.Close()

	return DecodeTexture(f, filepath.Base(path))
}

// DecodeTexture decodes an image of any registered format and flips it
// vertically into OpenGL row order.
func DecodeTexture(r io.Reader, name string) (*Texture, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: decode texture %s: %v", ErrMalformedAsset, name, err)
	}
	b := img.Bounds()
	if b.Empty() {
		return nil, fmt.Errorf("%w: texture %s is empty", ErrMalformedAsset, name)
	}

	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)

	return &Texture{
		Name:   name,
		Width:  b.Dx(),
		Height: b.Dy(),
		Pixels: flipRows(rgba.Pix, rgba.Stride, b.Dy()),
	}, nil
}

func flipRows(pix []byte, stride, rows int) []byte {
	out := make([]byte, len(pix))
	for y := 0; y < rows; y++ {
		copy(out[(rows-1-y)*stride:(rows-y)*stride], pix[y*stride:(y+1)*stride])
	}
	return out
}

// NewSolidTexture creates a 1x1 texture of a single colour.
func NewSolidTexture(name string, c color.RGBA) *Texture {
	return &Texture{
		Name:   name,
		Width:  1,
		Height: 1,
		Pixels: []byte{c.R, c.G, c.B, c.A},
	}
}

// NewCheckerTexture creates a size x size texture of cells x cells squares
// alternating between a and b, starting with a in the lower-left corner.
func NewCheckerTexture(name string, size, cells int, a, b color.RGBA) *Texture {
	if size < 1 {
		size = 1
	}
	if cells < 1 {
		cells = 1
	}
	cell := max(size/cells, 1)
	pix := make([]byte, 0, size*size*4)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := a
			if (x/cell+y/cell)%2 == 1 {
				c = b
			}
			pix = append(pix, c.R, c.G, c.B, c.A)
		}
	}
	return &Texture{Name: name, Width: size, Height: size, Pixels: pix}
}

// Validate checks that the pixel buffer matches the declared size.
func (t *Texture) Validate() error {
	if t.Width <= 0 || t.Height <= 0 {
		return fmt.Errorf("%w: texture %s is %dx%d", ErrMalformedAsset, t.Name, t.Width, t.Height)
	}
	if len(t.Pixels) != t.Width*t.Height*4 {
		return fmt.Errorf("%w: texture %s has %d bytes for %dx%d RGBA8",
			ErrMalformedAsset, t.Name, len(t.Pixels), t.Width, t.Height)
	}
	return nil
}
