// Package config loads orienteer settings from the environment.
//
// Values are read from ORIENTEER_* variables after an optional .env file has
// been merged into the process environment (variables already set win).
// Unset variables fall back to the search defaults. Malformed values are
// reported as ErrInvalidConfig rather than silently ignored.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/katalvlaran/orienteer/grid"
	"github.com/katalvlaran/orienteer/heuristic"
	"github.com/katalvlaran/orienteer/search"
)

// ErrInvalidConfig indicates a malformed or contradictory setting.
var ErrInvalidConfig = errors.New("config: invalid value")

// Environment variable names.
const (
	EnvMap           = "ORIENTEER_MAP"
	EnvLayout        = "ORIENTEER_LAYOUT"
	EnvPalette       = "ORIENTEER_PALETTE"
	EnvFrontier      = "ORIENTEER_FRONTIER"
	EnvParent        = "ORIENTEER_PARENT"
	EnvHeuristic     = "ORIENTEER_HEURISTIC"
	EnvConn          = "ORIENTEER_CONN"
	EnvMaxExpansions = "ORIENTEER_MAX_EXPANSIONS"
	EnvPrecheck      = "ORIENTEER_PRECHECK"
	EnvDebug         = "ORIENTEER_DEBUG"
)

// Config holds the settings shared by the CLI commands and the MCP server.
type Config struct {
	MapPath       string              // PNG map classified with the palette
	LayoutPath    string              // JSON text layout, alternative to MapPath
	PalettePath   string              // optional JSON palette overrides
	Frontier      search.FrontierKind // open-set implementation
	Parent        search.ParentPolicy // predecessor assignment policy
	Heuristic     string              // estimator name, see heuristic.Names
	Connectivity  grid.Connectivity   // neighbor connectivity
	MaxExpansions int                 // 0 means unlimited
	Precheck      bool                // flood-fill reachability check before searching
	Debug         bool                // file:line in log output
}

// Default returns the reference search configuration with no map source.
func Default() Config {
	return Config{
		Frontier:     search.FrontierLinear,
		Parent:       search.ParentRolling,
		Heuristic:    "squared_euclidean",
		Connectivity: grid.Conn8,
	}
}

// Load merges the given .env files (".env" when none) into the environment
// and reads the configuration from it. A missing .env file is not an error.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("config: load env file: %w", err)
	}
	return FromLookup(os.LookupEnv)
}

// Read parses a single .env file without touching the process environment.
func Read(path string) (Config, error) {
	vals, err := godotenv.Read(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	return FromLookup(func(key string) (string, bool) {
		v, ok := vals[key]
		return v, ok
	})
}

// FromLookup builds a Config from a variable lookup such as os.LookupEnv.
func FromLookup(lookup func(string) (string, bool)) (Config, error) {
	c := Default()
	get := func(key string) string {
		v, _ := lookup(key)
		return strings.TrimSpace(v)
	}

	c.MapPath = get(EnvMap)
	c.LayoutPath = get(EnvLayout)
	c.PalettePath = get(EnvPalette)

	var err error
	if c.Frontier, err = search.ParseFrontier(get(EnvFrontier)); err != nil {
		return Config{}, invalid(EnvFrontier, err)
	}
	if c.Parent, err = search.ParseParentPolicy(get(EnvParent)); err != nil {
		return Config{}, invalid(EnvParent, err)
	}
	if v := get(EnvHeuristic); v != "" {
		c.Heuristic = v
	}
	if c.Connectivity, err = grid.ParseConnectivity(get(EnvConn)); err != nil {
		return Config{}, invalid(EnvConn, err)
	}
	if v := get(EnvMaxExpansions); v != "" {
		if c.MaxExpansions, err = strconv.Atoi(v); err != nil {
			return Config{}, invalid(EnvMaxExpansions, err)
		}
	}
	if c.Precheck, err = parseBool(get(EnvPrecheck)); err != nil {
		return Config{}, invalid(EnvPrecheck, err)
	}
	if c.Debug, err = parseBool(get(EnvDebug)); err != nil {
		return Config{}, invalid(EnvDebug, err)
	}

	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks cross-field constraints.
func (c Config) Validate() error {
	if c.MapPath != "" && c.LayoutPath != "" {
		return fmt.Errorf("%w: set either a map or a layout, not both", ErrInvalidConfig)
	}
	if c.MaxExpansions < 0 {
		return fmt.Errorf("%w: max expansions must not be negative, got %d", ErrInvalidConfig, c.MaxExpansions)
	}
	if _, err := heuristic.ByName(c.Heuristic); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// SearchOptions maps c onto search options.
func (c Config) SearchOptions() ([]search.Option, error) {
	fn, err := heuristic.ByName(c.Heuristic)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	opts := []search.Option{
		search.WithFrontier(c.Frontier),
		search.WithParentPolicy(c.Parent),
		search.WithHeuristic(fn),
		search.WithConnectivity(c.Connectivity),
		search.WithMaxExpansions(c.MaxExpansions),
	}
	if c.Precheck {
		opts = append(opts, search.WithReachabilityCheck())
	}
	return opts, nil
}

// Logger returns a logger writing to w with the "[orienteer] " prefix;
// Debug adds the calling file and line.
func (c Config) Logger(w io.Writer) *log.Logger {
	flags := log.LstdFlags
	if c.Debug {
		flags |= log.Lshortfile
	}
	return log.New(w, "[orienteer] ", flags)
}

func invalid(key string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrInvalidConfig, key, err)
}

func parseBool(v string) (bool, error) {
	if v == "" {
		return false, nil
	}
	return strconv.ParseBool(v)
}
