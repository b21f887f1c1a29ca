// Package classify turns external map sources into terrain grids.
//
// Two sources are supported:
//
//   - Raster images. Each pixel is looked up in a Palette (exact RGBA match,
//     channels compared un-premultiplied) and the matching terrain.Category
//     is written into the cell at the same column and row. Pixels whose
//     colour is not in the palette stay terrain.Unset, which the search
//     treats as forbidden. DefaultPalette carries the ISOM orienteering
//     colours the reference map was drawn with.
//
//   - Text layouts. A MapConfig holds one string per grid row plus a legend
//     mapping single characters to category names, optionally with a start
//     and a goal. It is read from JSON and validated before use.
//
// Palettes can be overridden from a JSON object of "#rrggbb" or "#rrggbbaa"
// keys to category names (LoadPalette).
//
// Errors:
//
//   - ErrInvalidColor: a palette key is not a hex colour.
//   - ErrInvalidMap:   a MapConfig failed validation.
//   - terrain.ErrUnknownCategory: a palette or legend names no category.
//
// Complexity: O(W×H) for every conversion.
package classify
