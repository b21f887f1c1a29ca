// Package orienteer computes least-cost routes across orienteering maps.
//
// 🚀 What is orienteer?
//
//	A small, single-goroutine route planner for 2-D terrain grids:
//		• Terrain model: ISOM ground categories with fixed per-step costs
//		• Grid: fixed extent, row-major cells, 8- or 4-connected neighbors
//		• Heuristics: squared Euclidean (default), Manhattan, Chebyshev, zero
//		• Search: best-first expansion with a rolling or discovery parent policy,
//		  linear or heap frontier, cancellation and expansion caps
//		• Classifiers: PNG rasters through a colour palette, JSON text layouts
//		• Surfaces: the orienteer CLI and an MCP tool server
//
// Under the hood the code is organized as:
//
//	terrain/        Category enum and its cost function
//	grid/           Grid, Cell, Coordinate, neighbors, flood-fill regions
//	heuristic/      remaining-cost estimators
//	search/         FindPath, Search, Reconstruct and the frontiers
//	classify/       image and text-layout classifiers
//	report/         text and JSON route output
//	config/         ORIENTEER_* environment configuration
//	transport/mcp/  MCP tools over stdio
//	cmd/orienteer/  the command-line entry point
//
// Quick start:
//
//	g, _ := classify.LoadPNG("forest.png", classify.DefaultPalette())
//	path := search.FindPath(g, grid.Coordinate{X: 10, Y: 20}, grid.Coordinate{X: 300, Y: 410})
//	for _, c := range path { // goal first
//		fmt.Println(report.FormatCell(c))
//	}
package orienteer
