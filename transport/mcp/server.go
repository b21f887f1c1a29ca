package mcp

import (
	"errors"
	"fmt"
	"io"
	"log"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/katalvlaran/orienteer/config"
	"github.com/katalvlaran/orienteer/grid"
)

// ErrUnknownMap indicates a map ID that is not registered.
var ErrUnknownMap = errors.New("mcp: unknown map id")

// Version is reported to MCP clients.
const Version = "1.0.0"

// mapEntry is one registered terrain grid. The grid is never searched
// directly; find_path works on a clone.
type mapEntry struct {
	id          string
	name        string
	grid        *grid.Grid
	start, goal *grid.Coordinate
}

// MapInfo describes a registered map.
type MapInfo struct {
	ID     string
	Name   string
	Width  int
	Height int
	Start  *grid.Coordinate
	Goal   *grid.Coordinate
}

// Server holds the map registry and the MCP server bound to it.
type Server struct {
	cfg       config.Config
	logger    *log.Logger
	mu        sync.RWMutex
	maps      map[string]*mapEntry
	mcpServer *server.MCPServer
}

// NewServer creates a server whose searches default to cfg. A nil logger
// discards output.
func NewServer(cfg config.Config, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	s := &Server{
		cfg:    cfg,
		logger: logger,
		maps:   make(map[string]*mapEntry),
	}
	s.initMCPServer()
	return s
}

func (s *Server) initMCPServer() {
	s.mcpServer = server.NewMCPServer(
		"orienteer",
		Version,
		server.WithToolCapabilities(true),
		server.WithInstructions(`orienteer - least-cost routes over orienteering terrain

Register a map with load_layout (or use one preloaded by the host), check it
with list_maps and describe_cell, then ask find_path for a route.

Terrain costs per step: road 1, path 5, open_land 10, easy_forest 12,
rough_meadow 15, slow_forest 20, dense_forest 25. impassable, water,
out_of_bounds and unset cells are never entered.

Coordinates are zero-based: x is the column, y is the row.`),
	)
	s.registerTools()
}

// GetMCPServer returns the underlying MCP server.
func (s *Server) GetMCPServer() *server.MCPServer {
	return s.mcpServer
}

// ServeStdio serves the tools on stdin/stdout until the client disconnects.
func (s *Server) ServeStdio() error {
	s.logger.Printf("mcp: serving %d map(s) on stdio", s.Len())
	return server.ServeStdio(s.mcpServer)
}

// Register stores g under a new ID and returns it. start and goal, when
// set, become the defaults of find_path. The caller must not mutate g
// afterwards.
func (s *Server) Register(name string, g *grid.Grid, start, goal *grid.Coordinate) string {
	id := uuid.NewString()

	s.mu.Lock()
	s.maps[id] = &mapEntry{id: id, name: name, grid: g, start: start, goal: goal}
	s.mu.Unlock()

	s.logger.Printf("mcp: registered map %q as %s (%dx%d)", name, id, g.Width(), g.Height())
	return id
}

// Len returns the number of registered maps.
func (s *Server) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.maps)
}

// Maps lists registered maps ordered by name, then ID.
func (s *Server) Maps() []MapInfo {
	s.mu.RLock()
	out := make([]MapInfo, 0, len(s.maps))
	for _, e := range s.maps {
		out = append(out, MapInfo{
			ID: e.id, Name: e.name,
			Width: e.grid.Width(), Height: e.grid.Height(),
			Start: e.start, Goal: e.goal,
		})
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func (s *Server) lookup(id string) (*mapEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.maps[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMap, id)
	}
	return e, nil
}

// registerTools registers all MCP tools.
func (s *Server) registerTools() {
	s.mcpServer.AddTool(mcp.Tool{
		Name:        "load_layout",
		Description: "Register a text map: one string per row, one character per cell",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"name": map[string]interface{}{
					"type":        "string",
					"description": "Human-readable map name",
				},
				"layout": map[string]interface{}{
					"type":        "array",
					"items":       map[string]interface{}{"type": "string"},
					"description": "Rows of the map, all the same length",
				},
				"legend": map[string]interface{}{
					"type":        "object",
					"description": "Character to terrain name, e.g. {\".\": \"open_land\", \"#\": \"impassable\"}. Defaults to the built-in legend",
				},
			},
			Required: []string{"name", "layout"},
		},
	}, s.handleLoadLayout)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "list_maps",
		Description: "List registered maps",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, s.handleListMaps)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "describe_cell",
		Description: "Describe the terrain of one cell",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"map_id": map[string]interface{}{
					"type":        "string",
					"description": "Map ID from load_layout or list_maps",
				},
				"x": map[string]interface{}{
					"type":        "integer",
					"description": "Column, zero-based",
				},
				"y": map[string]interface{}{
					"type":        "integer",
					"description": "Row, zero-based",
				},
			},
			Required: []string{"map_id", "x", "y"},
		},
	}, s.handleDescribeCell)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "find_path",
		Description: "Find a least-cost route between two cells. The route is listed goal first",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"map_id": map[string]interface{}{
					"type":        "string",
					"description": "Map ID from load_layout or list_maps",
				},
				"start_x": map[string]interface{}{"type": "integer", "description": "Start column (defaults to the map's start)"},
				"start_y": map[string]interface{}{"type": "integer", "description": "Start row (defaults to the map's start)"},
				"goal_x":  map[string]interface{}{"type": "integer", "description": "Goal column (defaults to the map's goal)"},
				"goal_y":  map[string]interface{}{"type": "integer", "description": "Goal row (defaults to the map's goal)"},
				"frontier": map[string]interface{}{
					"type":        "string",
					"enum":        []string{"linear", "heap"},
					"description": "Open-set implementation",
				},
				"parent": map[string]interface{}{
					"type":        "string",
					"enum":        []string{"rolling", "discovery"},
					"description": "Predecessor policy",
				},
				"heuristic": map[string]interface{}{
					"type":        "string",
					"enum":        []string{"squared_euclidean", "manhattan", "chebyshev", "zero"},
					"description": "Remaining-cost estimator",
				},
				"format": map[string]interface{}{
					"type":        "string",
					"enum":        []string{"text", "json"},
					"description": "Output format (default text)",
				},
			},
			Required: []string{"map_id"},
		},
	}, s.handleFindPath)
}
