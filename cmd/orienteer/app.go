package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/urfave/cli/v3"

	"github.com/katalvlaran/orienteer/classify"
	"github.com/katalvlaran/orienteer/config"
	"github.com/katalvlaran/orienteer/grid"
	"github.com/katalvlaran/orienteer/report"
	"github.com/katalvlaran/orienteer/search"
	transportmcp "github.com/katalvlaran/orienteer/transport/mcp"
)

// Version of the orienteer command.
const Version = "1.0.0"

// app carries what every command needs: the environment configuration and
// the output streams.
type app struct {
	base      config.Config
	out, diag io.Writer
}

// newApp builds the command tree. Results go to out, logs to diag.
func newApp(base config.Config, out, diag io.Writer) *cli.Command {
	a := &app{base: base, out: out, diag: diag}

	return &cli.Command{
		Name:      "orienteer",
		Usage:     "least-cost routes across orienteering terrain",
		Version:   Version,
		Writer:    out,
		ErrWriter: diag,
		Commands: []*cli.Command{
			{
				Name:   "route",
				Usage:  "find a route between two cells",
				Flags:  append(sourceFlags(), append(searchFlags(), endpointFlags()...)...),
				Action: a.route,
			},
			{
				Name:  "analyze",
				Usage: "print terrain statistics and passable regions",
				Flags: append(sourceFlags(), append(endpointFlags(),
					&cli.StringFlag{Name: "conn", Usage: "neighbor connectivity: conn8 or conn4", Sources: cli.EnvVars(config.EnvConn)},
					&cli.Int64Flag{Name: "top", Value: 5, Usage: "number of largest regions to list (0 lists all)"},
				)...),
				Action: a.analyze,
			},
			{
				Name:   "mcp",
				Usage:  "serve the route tools over MCP on stdio",
				Flags:  append(sourceFlags(), append(searchFlags(), endpointFlags()...)...),
				Action: a.serveMCP,
			},
		},
		DefaultCommand: "route",
	}
}

func sourceFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "map", Usage: "PNG map to classify", Sources: cli.EnvVars(config.EnvMap)},
		&cli.StringFlag{Name: "layout", Usage: "JSON text layout", Sources: cli.EnvVars(config.EnvLayout)},
		&cli.StringFlag{Name: "palette", Usage: "JSON palette overrides for --map", Sources: cli.EnvVars(config.EnvPalette)},
		&cli.BoolFlag{Name: "debug", Usage: "log file and line", Sources: cli.EnvVars(config.EnvDebug)},
	}
}

func searchFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "frontier", Usage: "open set: linear or heap", Sources: cli.EnvVars(config.EnvFrontier)},
		&cli.StringFlag{Name: "parent", Usage: "predecessor policy: rolling or discovery", Sources: cli.EnvVars(config.EnvParent)},
		&cli.StringFlag{Name: "heuristic", Usage: "squared_euclidean, manhattan, chebyshev or zero", Sources: cli.EnvVars(config.EnvHeuristic)},
		&cli.StringFlag{Name: "conn", Usage: "neighbor connectivity: conn8 or conn4", Sources: cli.EnvVars(config.EnvConn)},
		&cli.Int64Flag{Name: "max-expansions", Usage: "stop after this many expansions (0 = unlimited)", Sources: cli.EnvVars(config.EnvMaxExpansions)},
		&cli.BoolFlag{Name: "precheck", Usage: "skip the search when the goal is outside the start's region", Sources: cli.EnvVars(config.EnvPrecheck)},
		&cli.BoolFlag{Name: "json", Usage: "print the route as JSON"},
	}
}

func endpointFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "start", Usage: "start cell as x,y (defaults to the layout's start)"},
		&cli.StringFlag{Name: "goal", Usage: "goal cell as x,y (defaults to the layout's goal)"},
	}
}

// settings layers the flags that were set on top of the base configuration.
func (a *app) settings(cmd *cli.Command) (config.Config, error) {
	c := a.base
	var err error

	if cmd.IsSet("map") {
		c.MapPath = cmd.String("map")
	}
	if cmd.IsSet("layout") {
		c.LayoutPath = cmd.String("layout")
	}
	if cmd.IsSet("palette") {
		c.PalettePath = cmd.String("palette")
	}
	if cmd.IsSet("debug") {
		c.Debug = cmd.Bool("debug")
	}
	if cmd.IsSet("frontier") {
		if c.Frontier, err = search.ParseFrontier(cmd.String("frontier")); err != nil {
			return c, err
		}
	}
	if cmd.IsSet("parent") {
		if c.Parent, err = search.ParseParentPolicy(cmd.String("parent")); err != nil {
			return c, err
		}
	}
	if cmd.IsSet("heuristic") {
		c.Heuristic = cmd.String("heuristic")
	}
	if cmd.IsSet("conn") {
		if c.Connectivity, err = grid.ParseConnectivity(cmd.String("conn")); err != nil {
			return c, err
		}
	}
	if cmd.IsSet("max-expansions") {
		c.MaxExpansions = int(cmd.Int64("max-expansions"))
	}
	if cmd.IsSet("precheck") {
		c.Precheck = cmd.Bool("precheck")
	}

	return c, c.Validate()
}

// source is a loaded map with the endpoints it may carry.
type source struct {
	name        string
	grid        *grid.Grid
	start, goal *grid.Coordinate
}

func loadSource(c config.Config) (*source, error) {
	switch {
	case c.LayoutPath != "":
		m, err := classify.LoadMapConfig(c.LayoutPath)
		if err != nil {
			return nil, err
		}
		g, err := m.Grid()
		if err != nil {
			return nil, err
		}
		return &source{name: m.Name, grid: g, start: m.Start, goal: m.Goal}, nil

	case c.MapPath != "":
		palette := classify.DefaultPalette()
		if c.PalettePath != "" {
			p, err := classify.LoadPalette(c.PalettePath)
			if err != nil {
				return nil, err
			}
			palette = p
		}
		g, err := classify.LoadPNG(c.MapPath, palette)
		if err != nil {
			return nil, err
		}
		return &source{name: c.MapPath, grid: g}, nil
	}
	return nil, errors.New("one of --map or --layout is required")
}

// endpoints resolves --start and --goal, falling back to the source's own.
func endpoints(cmd *cli.Command, src *source) (start, goal grid.Coordinate, err error) {
	pick := func(flag string, def *grid.Coordinate) (grid.Coordinate, error) {
		if v := cmd.String(flag); v != "" {
			return grid.ParseCoordinate(v)
		}
		if def != nil {
			return *def, nil
		}
		return grid.Coordinate{}, fmt.Errorf("--%s is required", flag)
	}
	if start, err = pick("start", src.start); err != nil {
		return
	}
	goal, err = pick("goal", src.goal)
	return
}

func (a *app) route(ctx context.Context, cmd *cli.Command) error {
	c, err := a.settings(cmd)
	if err != nil {
		return err
	}
	logger := c.Logger(a.diag)

	src, err := loadSource(c)
	if err != nil {
		return err
	}
	start, goal, err := endpoints(cmd, src)
	if err != nil {
		return err
	}

	opts, err := c.SearchOptions()
	if err != nil {
		return err
	}
	opts = append(opts, search.WithContext(ctx), search.WithLogger(logger))

	res, searchErr := search.Search(src.grid, start, goal, opts...)
	if res == nil {
		return searchErr
	}

	route := report.NewRoute(start, goal, res)
	if cmd.Bool("json") {
		err = route.WriteJSON(a.out)
	} else {
		err = route.WriteText(a.out)
	}
	if searchErr != nil {
		return searchErr
	}
	return err
}

func (a *app) analyze(ctx context.Context, cmd *cli.Command) error {
	c, err := a.settings(cmd)
	if err != nil {
		return err
	}
	src, err := loadSource(c)
	if err != nil {
		return err
	}
	g := src.grid

	if _, err := fmt.Fprintf(a.out, "map: %s (%dx%d)\n", src.name, g.Width(), g.Height()); err != nil {
		return err
	}
	if err := report.WriteHistogram(a.out, g.Histogram()); err != nil {
		return err
	}
	if err := report.WriteRegions(a.out, g.Regions(c.Connectivity), int(cmd.Int64("top"))); err != nil {
		return err
	}

	if cmd.String("start") == "" && src.start == nil {
		return nil
	}
	start, goal, err := endpoints(cmd, src)
	if err != nil {
		return err
	}
	if !g.InBounds(start) || !g.InBounds(goal) {
		return fmt.Errorf("%s or %s: %w", start, goal, grid.ErrOutOfRange)
	}
	verdict := "no"
	if g.Connected(start, goal, c.Connectivity) {
		verdict = "yes"
	}
	_, err = fmt.Fprintf(a.out, "reachable %s -> %s: %s\n", start, goal, verdict)
	return err
}

func (a *app) serveMCP(ctx context.Context, cmd *cli.Command) error {
	c, err := a.settings(cmd)
	if err != nil {
		return err
	}
	logger := c.Logger(a.diag)
	srv := transportmcp.NewServer(c, logger)

	if c.MapPath != "" || c.LayoutPath != "" {
		src, err := loadSource(c)
		if err != nil {
			return err
		}
		start, goal := src.start, src.goal
		if v := cmd.String("start"); v != "" {
			p, err := grid.ParseCoordinate(v)
			if err != nil {
				return err
			}
			start = &p
		}
		if v := cmd.String("goal"); v != "" {
			p, err := grid.ParseCoordinate(v)
			if err != nil {
				return err
			}
			goal = &p
		}
		srv.Register(src.name, src.grid, start, goal)
	}

	logger.Printf("starting %s v%s (mode: mcp)", cmd.Root().Name, Version)
	return srv.ServeStdio()
}
