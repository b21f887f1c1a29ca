package terrain

import (
	"errors"
	"math"
)

// ErrUnknownCategory indicates that a category name could not be parsed.
var ErrUnknownCategory = errors.New("terrain: unknown category")

// Cost is the price of stepping onto a cell. Sums of costs along a route
// are kept in the same type.
type Cost = int64

// MaxCost is the sentinel cost of forbidden terrain.
const MaxCost Cost = math.MaxInt64

// Category classifies the ground of a single grid cell.
type Category uint8

const (
	// Unset is the zero value: the cell was never classified.
	Unset Category = iota
	// OpenLand is runnable open ground.
	OpenLand
	// RoughMeadow is open ground with tall grass or uneven footing.
	RoughMeadow
	// EasyForest is forest that can be run through at near full speed.
	EasyForest
	// SlowForest is forest with undergrowth that slows running.
	SlowForest
	// DenseForest is forest that can only be walked through.
	DenseForest
	// Impassable is vegetation that cannot be crossed.
	Impassable
	// Water covers lakes, swamps and marshes.
	Water
	// Road is a paved road, the cheapest surface.
	Road
	// Path is a foot path.
	Path
	// OutOfBounds marks areas outside the permitted map.
	OutOfBounds

	numCategories
)

// Reference traversal costs. Forbidden categories are not listed here, they
// all resolve to MaxCost.
const (
	RoadCost        Cost = 1
	PathCost        Cost = 5
	OpenLandCost    Cost = 10
	EasyForestCost  Cost = 12
	RoughMeadowCost Cost = 15
	SlowForestCost  Cost = 20
	DenseForestCost Cost = 25
)

var categoryNames = [numCategories]string{
	Unset:       "unset",
	OpenLand:    "open_land",
	RoughMeadow: "rough_meadow",
	EasyForest:  "easy_forest",
	SlowForest:  "slow_forest",
	DenseForest: "dense_forest",
	Impassable:  "impassable",
	Water:       "water",
	Road:        "road",
	Path:        "path",
	OutOfBounds: "out_of_bounds",
}
