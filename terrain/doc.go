// Package terrain defines the closed set of terrain categories a grid cell
// can carry and the traversal cost of each.
//
// What:
//
//   - Category is a small enumeration (OpenLand, RoughMeadow, EasyForest,
//     SlowForest, DenseForest, Impassable, Water, Road, Path, OutOfBounds, Unset).
//   - Cost maps every category to an integer traversal cost. The cost is a pure
//     function of the category; nothing is stored per cell.
//   - Impassable, Water, OutOfBounds and Unset all map to MaxCost, the
//     "never traverse" sentinel.
//
// Ordering of costs (cheapest first):
//
//	Road < Path < OpenLand < EasyForest < RoughMeadow < SlowForest < DenseForest
//	     < {Impassable, Water, OutOfBounds, Unset} = MaxCost
//
// Errors:
//
//   - ErrUnknownCategory: Parse received a name that is not a category.
package terrain
