package mcp

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/katalvlaran/orienteer/classify"
	"github.com/katalvlaran/orienteer/grid"
	"github.com/katalvlaran/orienteer/heuristic"
	"github.com/katalvlaran/orienteer/report"
	"github.com/katalvlaran/orienteer/search"
)

func (s *Server) handleLoadLayout(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, _ := request.Params.Arguments.(map[string]interface{})
	name, _ := args["name"].(string)

	rows, err := stringList(args["layout"])
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	m := &classify.MapConfig{Name: name, Layout: rows}
	if raw, ok := args["legend"].(map[string]interface{}); ok {
		m.Legend = make(map[string]string, len(raw))
		for k, v := range raw {
			str, ok := v.(string)
			if !ok {
				return mcp.NewToolResultError(fmt.Sprintf("legend[%q] must be a string", k)), nil
			}
			m.Legend[k] = str
		}
	}

	g, err := m.Grid()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	id := s.Register(name, g, nil, nil)

	return mcp.NewToolResultText(fmt.Sprintf("map_id: %s\nname: %s\nsize: %dx%d", id, name, g.Width(), g.Height())), nil
}

func (s *Server) handleListMaps(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	maps := s.Maps()
	if len(maps) == 0 {
		return mcp.NewToolResultText("no maps registered; use load_layout"), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d map(s):\n", len(maps))
	for _, m := range maps {
		fmt.Fprintf(&b, "- %s  %q  %dx%d", m.ID, m.Name, m.Width, m.Height)
		if m.Start != nil && m.Goal != nil {
			fmt.Fprintf(&b, "  start=%s goal=%s", *m.Start, *m.Goal)
		}
		b.WriteByte('\n')
	}
	return mcp.NewToolResultText(b.String()), nil
}

func (s *Server) handleDescribeCell(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, _ := request.Params.Arguments.(map[string]interface{})
	mapID, _ := args["map_id"].(string)

	e, err := s.lookup(mapID)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	c, err := coordinate(args, "x", "y", nil)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if !e.grid.InBounds(c) {
		return mcp.NewToolResultError(fmt.Sprintf("cell %s is out of bounds; map is %dx%d (x 0-%d, y 0-%d)",
			c, e.grid.Width(), e.grid.Height(), e.grid.Width()-1, e.grid.Height()-1)), nil
	}

	cat := e.grid.Get(c).Terrain
	var b strings.Builder
	fmt.Fprintf(&b, "cell %s\nterrain: %s\n", c, cat)
	if cat.Forbidden() {
		b.WriteString("passable: no\n")
	} else {
		fmt.Fprintf(&b, "passable: yes\ncost: %d\n", cat.Cost())
	}
	return mcp.NewToolResultText(b.String()), nil
}

func (s *Server) handleFindPath(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, _ := request.Params.Arguments.(map[string]interface{})
	mapID, _ := args["map_id"].(string)

	e, err := s.lookup(mapID)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	start, err := coordinate(args, "start_x", "start_y", e.start)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	goal, err := coordinate(args, "goal_x", "goal_y", e.goal)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	opts, err := s.searchOptions(ctx, args)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	res, err := search.Search(e.grid.Clone(), start, goal, opts...)
	if err != nil {
		s.logger.Printf("mcp: find_path on %s failed: %v", e.id, err)
		return mcp.NewToolResultError(err.Error()), nil
	}
	s.logger.Printf("mcp: find_path on %s %s->%s: %s", e.id, start, goal, res.Status)

	route := report.NewRoute(start, goal, res)
	var buf bytes.Buffer
	if format, _ := args["format"].(string); format == "json" {
		err = route.WriteJSON(&buf)
	} else {
		err = route.WriteText(&buf)
	}
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(buf.String()), nil
}

// searchOptions layers per-call overrides on the server configuration.
func (s *Server) searchOptions(ctx context.Context, args map[string]interface{}) ([]search.Option, error) {
	opts, err := s.cfg.SearchOptions()
	if err != nil {
		return nil, err
	}
	opts = append(opts, search.WithContext(ctx), search.WithLogger(s.logger))

	if v, ok := args["frontier"].(string); ok && v != "" {
		kind, err := search.ParseFrontier(v)
		if err != nil {
			return nil, err
		}
		opts = append(opts, search.WithFrontier(kind))
	}
	if v, ok := args["parent"].(string); ok && v != "" {
		p, err := search.ParseParentPolicy(v)
		if err != nil {
			return nil, err
		}
		opts = append(opts, search.WithParentPolicy(p))
	}
	if v, ok := args["heuristic"].(string); ok && v != "" {
		fn, err := heuristic.ByName(v)
		if err != nil {
			return nil, err
		}
		opts = append(opts, search.WithHeuristic(fn))
	}
	return opts, nil
}

// coordinate reads an (x, y) pair of numeric arguments. When both are
// absent it falls back to def; a missing default is an error.
func coordinate(args map[string]interface{}, xKey, yKey string, def *grid.Coordinate) (grid.Coordinate, error) {
	xv, hasX := args[xKey]
	yv, hasY := args[yKey]
	if !hasX && !hasY && def != nil {
		return *def, nil
	}
	if !hasX || !hasY {
		return grid.Coordinate{}, fmt.Errorf("%s and %s are required", xKey, yKey)
	}
	x, err := intArg(xKey, xv)
	if err != nil {
		return grid.Coordinate{}, err
	}
	y, err := intArg(yKey, yv)
	if err != nil {
		return grid.Coordinate{}, err
	}
	return grid.Coordinate{X: x, Y: y}, nil
}

// intArg accepts JSON numbers (decoded as float64) and Go integers.
func intArg(key string, v interface{}) (int, error) {
	switch n := v.(type) {
	case float64:
		if n != float64(int(n)) {
			return 0, fmt.Errorf("%s must be a whole number, got %v", key, n)
		}
		return int(n), nil
	case int:
		return n, nil
	case int64:
		return int(n), nil
	}
	return 0, fmt.Errorf("%s must be a number, got %T", key, v)
}

func stringList(v interface{}) ([]string, error) {
	switch rows := v.(type) {
	case []string:
		return rows, nil
	case []interface{}:
		out := make([]string, len(rows))
		for i, r := range rows {
			str, ok := r.(string)
			if !ok {
				return nil, fmt.Errorf("layout row %d must be a string", i+1)
			}
			out[i] = str
		}
		return out, nil
	}
	return nil, fmt.Errorf("layout must be an array of strings")
}
