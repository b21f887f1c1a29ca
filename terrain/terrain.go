package terrain

import (
	"fmt"
	"strings"
)

// Cost returns the traversal cost of c. Unknown values are treated as
// forbidden.
func (c Category) Cost() Cost {
	switch c {
	case Road:
		return RoadCost
	case Path:
		return PathCost
	case OpenLand:
		return OpenLandCost
	case EasyForest:
		return EasyForestCost
	case RoughMeadow:
		return RoughMeadowCost
	case SlowForest:
		return SlowForestCost
	case DenseForest:
		return DenseForestCost
	default:
		// Impassable, Water, OutOfBounds, Unset and anything out of range.
		return MaxCost
	}
}

// Forbidden reports whether c must never be traversed.
func (c Category) Forbidden() bool {
	return c.Cost() == MaxCost
}

// Valid reports whether c is one of the declared categories.
func (c Category) Valid() bool {
	return c < numCategories
}

// String returns the snake_case name of c.
func (c Category) String() string {
	if !c.Valid() {
		return fmt.Sprintf("category(%d)", uint8(c))
	}
	return categoryNames[c]
}

// Parse resolves a category name. Matching ignores case, and spaces or
// dashes are accepted in place of underscores ("Open Land", "open-land").
func Parse(name string) (Category, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.NewReplacer(" ", "_", "-", "_").Replace(key)
	for i, n := range categoryNames {
		if n == key {
			return Category(i), nil
		}
	}
	return Unset, fmt.Errorf("%w: %q", ErrUnknownCategory, name)
}

// All returns every declared category in declaration order.
func All() []Category {
	out := make([]Category, 0, numCategories)
	for c := Category(0); c < numCategories; c++ {
		out = append(out, c)
	}
	return out
}
