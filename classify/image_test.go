package classify_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/orienteer/classify"
	"github.com/katalvlaran/orienteer/grid"
	"github.com/katalvlaran/orienteer/search"
	"github.com/katalvlaran/orienteer/terrain"
)

var (
	openLand = color.NRGBA{R: 248, G: 148, B: 18, A: 255}
	road     = color.NRGBA{R: 71, G: 51, B: 3, A: 255}
	cliff    = color.NRGBA{R: 5, G: 73, B: 24, A: 255}
	unknown  = color.NRGBA{R: 17, G: 17, B: 17, A: 255}
)

// testImage paints a 4×3 map:
//
//	open open cliff open
//	road road road  road
//	open ???  cliff clear
func testImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 3))
	rows := [][]color.NRGBA{
		{openLand, openLand, cliff, openLand},
		{road, road, road, road},
		{openLand, unknown, cliff, {}},
	}
	for y, row := range rows {
		for x, c := range row {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func encode(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestFromImage_RowMajor(t *testing.T) {
	g, err := classify.FromImage(testImage(), nil)
	require.NoError(t, err)
	require.Equal(t, 4, g.Width())
	require.Equal(t, 3, g.Height())

	assert.Equal(t, terrain.OpenLand, g.Get(grid.Coordinate{X: 0, Y: 0}).Terrain)
	assert.Equal(t, terrain.Impassable, g.Get(grid.Coordinate{X: 2, Y: 0}).Terrain)
	assert.Equal(t, terrain.Road, g.Get(grid.Coordinate{X: 3, Y: 1}).Terrain)
	assert.Equal(t, terrain.Unset, g.Get(grid.Coordinate{X: 1, Y: 2}).Terrain)
	// transparent black is a footpath in the ISOM table
	assert.Equal(t, terrain.Path, g.Get(grid.Coordinate{X: 3, Y: 2}).Terrain)
}

func TestFromImage_OffsetBounds(t *testing.T) {
	img := image.NewNRGBA(image.Rect(10, 20, 12, 21))
	img.SetNRGBA(11, 20, road)

	g, err := classify.FromImage(img, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, g.Width())
	assert.Equal(t, 1, g.Height())
	assert.Equal(t, terrain.Road, g.Get(grid.Coordinate{X: 1, Y: 0}).Terrain)
}

func TestFromImage_EmptyImage(t *testing.T) {
	_, err := classify.FromImage(image.NewNRGBA(image.Rect(0, 0, 0, 5)), nil)
	assert.ErrorIs(t, err, grid.ErrEmptyGrid)
}

func TestFromImage_CustomPalette(t *testing.T) {
	p := classify.Palette{{R: 17, G: 17, B: 17, A: 255}: terrain.Water}
	g, err := classify.FromImage(testImage(), p)
	require.NoError(t, err)
	assert.Equal(t, terrain.Water, g.Get(grid.Coordinate{X: 1, Y: 2}).Terrain)
	assert.Equal(t, terrain.Unset, g.Get(grid.Coordinate{X: 0, Y: 0}).Terrain)
}

func TestDecodePNG_RoundTripThenRoute(t *testing.T) {
	g, err := classify.DecodePNG(bytes.NewReader(encode(t, testImage())), classify.DefaultPalette())
	require.NoError(t, err)

	path := search.FindPath(g, grid.Coordinate{X: 0, Y: 0}, grid.Coordinate{X: 3, Y: 0})
	require.NotEmpty(t, path)
	assert.Equal(t, grid.Coordinate{X: 3, Y: 0}, path[0].Pos)
	for _, c := range path {
		assert.False(t, c.Terrain.Forbidden(), "route crosses %s", c.Pos)
	}
}

func TestDecodePNG_Garbage(t *testing.T) {
	_, err := classify.DecodePNG(bytes.NewReader([]byte("not a png")), nil)
	assert.Error(t, err)
}

func TestLoadPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "map.png")
	require.NoError(t, os.WriteFile(path, encode(t, testImage()), 0o600))

	g, err := classify.LoadPNG(path, nil)
	require.NoError(t, err)
	assert.Equal(t, 12, g.Len())

	_, err = classify.LoadPNG(filepath.Join(t.TempDir(), "nope.png"), nil)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
