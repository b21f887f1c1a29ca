package classify

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/katalvlaran/orienteer/grid"
	"github.com/katalvlaran/orienteer/terrain"
)

// ErrInvalidMap indicates a MapConfig that failed validation.
var ErrInvalidMap = errors.New("classify: config validation")

// MapConfig is a text map: one string per row, one character per cell.
//
//	{
//	  "name": "meadow crossing",
//	  "layout": ["..R..", ".#R#.", "..R.."],
//	  "legend": {".": "open_land", "#": "impassable", "R": "road"},
//	  "start": {"x": 0, "y": 0},
//	  "goal":  {"x": 4, "y": 2}
//	}
//
// A nil Legend selects DefaultLegend.
type MapConfig struct {
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	Layout      []string          `json:"layout"`
	Legend      map[string]string `json:"legend,omitempty"`
	Start       *grid.Coordinate  `json:"start,omitempty"`
	Goal        *grid.Coordinate  `json:"goal,omitempty"`
}

// DefaultLegend returns the built-in character set for text layouts.
func DefaultLegend() map[string]string {
	return map[string]string{
		".": "open_land",
		",": "rough_meadow",
		"e": "easy_forest",
		"s": "slow_forest",
		"d": "dense_forest",
		"#": "impassable",
		"~": "water",
		"R": "road",
		"P": "path",
		"X": "out_of_bounds",
	}
}

// Width returns the rune count of the first layout row.
func (m *MapConfig) Width() int {
	if len(m.Layout) == 0 {
		return 0
	}
	return utf8.RuneCountInString(m.Layout[0])
}

// Height returns the number of layout rows.
func (m *MapConfig) Height() int { return len(m.Layout) }

// categories resolves the legend into a rune lookup table.
func (m *MapConfig) categories() (map[rune]terrain.Category, error) {
	legend := m.Legend
	if legend == nil {
		legend = DefaultLegend()
	}

	out := make(map[rune]terrain.Category, len(legend))
	for key, name := range legend {
		if utf8.RuneCountInString(key) != 1 {
			return nil, fmt.Errorf("%w: legend key %q must be a single character", ErrInvalidMap, key)
		}
		cat, err := terrain.Parse(name)
		if err != nil {
			return nil, fmt.Errorf("%w: legend[%q]: %w", ErrInvalidMap, key, err)
		}
		r, _ := utf8.DecodeRuneInString(key)
		out[r] = cat
	}
	return out, nil
}

// ValidateMapConfig checks that m describes a rectangular layout whose every
// character is in the legend, and that start and goal (when set) lie inside it.
func ValidateMapConfig(m *MapConfig) error {
	if m == nil {
		return fmt.Errorf("%w: config is nil", ErrInvalidMap)
	}
	if m.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidMap)
	}
	if len(m.Layout) == 0 {
		return fmt.Errorf("%w: layout must have at least one row", ErrInvalidMap)
	}

	width := m.Width()
	if width == 0 {
		return fmt.Errorf("%w: layout rows must not be empty", ErrInvalidMap)
	}

	cats, err := m.categories()
	if err != nil {
		return err
	}

	for i, row := range m.Layout {
		if n := utf8.RuneCountInString(row); n != width {
			return fmt.Errorf("%w: row %d must have %d characters, got %d", ErrInvalidMap, i+1, width, n)
		}
		col := 0
		for _, ch := range row {
			col++
			if _, ok := cats[ch]; !ok {
				return fmt.Errorf("%w: invalid character '%c' at row %d, col %d", ErrInvalidMap, ch, i+1, col)
			}
		}
	}

	inside := func(c grid.Coordinate) bool {
		return c.X >= 0 && c.Y >= 0 && c.X < width && c.Y < len(m.Layout)
	}
	if m.Start != nil && !inside(*m.Start) {
		return fmt.Errorf("%w: start %s is outside the %dx%d layout", ErrInvalidMap, *m.Start, width, len(m.Layout))
	}
	if m.Goal != nil && !inside(*m.Goal) {
		return fmt.Errorf("%w: goal %s is outside the %dx%d layout", ErrInvalidMap, *m.Goal, width, len(m.Layout))
	}

	return nil
}

// Grid validates m and builds the terrain grid it describes.
func (m *MapConfig) Grid() (*grid.Grid, error) {
	if err := ValidateMapConfig(m); err != nil {
		return nil, err
	}
	cats, err := m.categories()
	if err != nil {
		return nil, err
	}

	g, err := grid.New(m.Width(), m.Height())
	if err != nil {
		return nil, err
	}
	for y, row := range m.Layout {
		x := 0
		for _, ch := range row {
			g.SetTerrain(grid.Coordinate{X: x, Y: y}, cats[ch])
			x++
		}
	}
	return g, nil
}

// DecodeMapConfig reads and validates a JSON MapConfig.
func DecodeMapConfig(r io.Reader) (*MapConfig, error) {
	var m MapConfig
	if err := json.NewDecoder(r).Decode(&m); err != nil {
		return nil, fmt.Errorf("classify: decode layout: %w", err)
	}
	if err := ValidateMapConfig(&m); err != nil {
		return nil, err
	}
	return &m, nil
}

// LoadMapConfig reads and validates the JSON MapConfig at path.
func LoadMapConfig(path string) (*MapConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("classify: open layout: %w", err)
	}
	defer f.Close()

	m, err := DecodeMapConfig(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}
