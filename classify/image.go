package classify

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	"github.com/katalvlaran/orienteer/grid"
)

// FromImage classifies every pixel of img into a new grid of the same
// extent, reading rows top to bottom and each row left to right. The image
// origin maps to (0,0). A nil palette selects DefaultPalette.
func FromImage(img image.Image, palette Palette) (*grid.Grid, error) {
	if palette == nil {
		palette = DefaultPalette()
	}
	b := img.Bounds()
	g, err := grid.New(b.Dx(), b.Dy())
	if err != nil {
		return nil, fmt.Errorf("classify: image %dx%d: %w", b.Dx(), b.Dy(), err)
	}

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			n := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			cat := palette.Lookup(color.RGBA{R: n.R, G: n.G, B: n.B, A: n.A})
			g.SetTerrain(grid.Coordinate{X: x - b.Min.X, Y: y - b.Min.Y}, cat)
		}
	}
	return g, nil
}

// DecodePNG decodes a PNG stream and classifies it with FromImage.
func DecodePNG(r io.Reader, palette Palette) (*grid.Grid, error) {
	img, err := png.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("classify: decode png: %w", err)
	}
	return FromImage(img, palette)
}

// LoadPNG opens the PNG file at path and classifies it with FromImage.
func LoadPNG(path string, palette Palette) (*grid.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("classify: open map: %w", err)
	}
	defer f.Close()

	return DecodePNG(f, palette)
}
