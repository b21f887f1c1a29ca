package classify

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/orienteer/terrain"
)

// ErrInvalidColor indicates a palette key that is not "#rrggbb" or "#rrggbbaa".
var ErrInvalidColor = errors.New("classify: invalid colour")

// Palette maps exact pixel colours to terrain categories.
type Palette map[color.RGBA]terrain.Category

// DefaultPalette returns the ISOM colour table of the reference map.
// Both opaque and fully transparent black denote footpaths.
func DefaultPalette() Palette {
	return Palette{
		{R: 248, G: 148, B: 18, A: 255}:  terrain.OpenLand,
		{R: 255, G: 192, B: 0, A: 255}:   terrain.RoughMeadow,
		{R: 255, G: 255, B: 255, A: 255}: terrain.EasyForest,
		{R: 2, G: 208, B: 60, A: 255}:    terrain.SlowForest,
		{R: 2, G: 136, B: 40, A: 255}:    terrain.DenseForest,
		{R: 5, G: 73, B: 24, A: 255}:     terrain.Impassable,
		{R: 0, G: 0, B: 255, A: 255}:     terrain.Water,
		{R: 71, G: 51, B: 3, A: 255}:     terrain.Road,
		{R: 0, G: 0, B: 0, A: 255}:       terrain.Path,
		{R: 0, G: 0, B: 0, A: 0}:         terrain.Path,
		{R: 205, G: 0, B: 101, A: 255}:   terrain.OutOfBounds,
	}
}

// Clone returns an independent copy of p.
func (p Palette) Clone() Palette {
	out := make(Palette, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Lookup returns the category of c, or terrain.Unset when c is unmapped.
func (p Palette) Lookup(c color.RGBA) terrain.Category {
	return p[c] // zero value is Unset
}

// ParseColor reads "#rrggbb" or "#rrggbbaa" (the leading '#' is optional).
// Six digits imply an opaque colour.
func ParseColor(s string) (color.RGBA, error) {
	raw, err := hex.DecodeString(strings.TrimPrefix(strings.TrimSpace(s), "#"))
	if err != nil || (len(raw) != 3 && len(raw) != 4) {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	c := color.RGBA{R: raw[0], G: raw[1], B: raw[2], A: 255}
	if len(raw) == 4 {
		c.A = raw[3]
	}
	return c, nil
}

// DecodePalette reads a JSON object of colour keys to category names and
// returns DefaultPalette with those entries added or replaced.
func DecodePalette(r io.Reader) (Palette, error) {
	var raw map[string]string
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("classify: decode palette: %w", err)
	}

	p := DefaultPalette()
	for key, name := range raw {
		c, err := ParseColor(key)
		if err != nil {
			return nil, err
		}
		cat, err := terrain.Parse(name)
		if err != nil {
			return nil, fmt.Errorf("classify: palette entry %s: %w", key, err)
		}
		p[c] = cat
	}
	return p, nil
}

// LoadPalette reads a palette override file; see DecodePalette.
func LoadPalette(path string) (Palette, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("classify: open palette: %w", err)
	}
	defer f.Close()

	return DecodePalette(f)
}
