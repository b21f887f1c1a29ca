// Package mcp exposes route search as Model Context Protocol tools.
//
// MCP Tools:
//   - load_layout:   register a text layout (rows plus optional legend) as a map
//   - list_maps:     list registered maps with their extents
//   - describe_cell: terrain, cost and passability of one cell
//   - find_path:     run a search between two cells of a registered map
//
// Maps are kept in memory under generated IDs for the life of the server;
// nothing is persisted. Every find_path call searches its own clone of the
// map, so concurrent calls never share search state.
//
// Usage:
//
//	srv := mcp.NewServer(cfg, logger)
//	id := srv.Register("forest", g, nil, nil)
//	err := srv.ServeStdio()
package mcp
