// Package report renders search results for people and for programs.
//
// Text output prints one line per path cell, goal first, followed by a
// summary line. JSON output carries the same data as a single object.
// Nothing here draws the map; the route is listed, not visualized.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/katalvlaran/orienteer/grid"
	"github.com/katalvlaran/orienteer/search"
	"github.com/katalvlaran/orienteer/terrain"
)

// Step is one cell of a reported route.
type Step struct {
	X       int    `json:"x"`
	Y       int    `json:"y"`
	Terrain string `json:"terrain"`
	G       int64  `json:"g"`
	H       int64  `json:"h"`
}

// Route is the serializable form of one search.
type Route struct {
	Start    grid.Coordinate `json:"start"`
	Goal     grid.Coordinate `json:"goal"`
	Status   string          `json:"status"`
	Found    bool            `json:"found"`
	Cost     int64           `json:"cost"`
	Expanded int             `json:"expanded"`
	Enqueued int             `json:"enqueued"`
	Relaxed  int             `json:"relaxed,omitempty"`
	Steps    []Step          `json:"steps"`
}

// NewRoute copies res into a Route. A nil res yields an empty, not-found route.
func NewRoute(start, goal grid.Coordinate, res *search.Result) Route {
	r := Route{Start: start, Goal: goal, Steps: []Step{}}
	if res == nil {
		r.Status = search.StatusExhausted.String()
		return r
	}
	r.Status = res.Status.String()
	r.Found = res.Found
	r.Cost = res.Cost
	r.Expanded = res.Expanded
	r.Enqueued = res.Enqueued
	r.Relaxed = res.Relaxed
	for _, c := range res.Path {
		r.Steps = append(r.Steps, Step{X: c.Pos.X, Y: c.Pos.Y, Terrain: c.Terrain.String(), G: c.G, H: c.H})
	}
	return r
}

// FormatCell renders c as "(x,y) terrain g=G h=H".
func FormatCell(c grid.Cell) string {
	return fmt.Sprintf("%s %s g=%d h=%d", c.Pos, c.Terrain, c.G, c.H)
}

// Summary is the one-line digest printed after the steps.
func (r Route) Summary() string {
	if !r.Found {
		return fmt.Sprintf("no route %s -> %s: status=%s expanded=%d enqueued=%d",
			r.Start, r.Goal, r.Status, r.Expanded, r.Enqueued)
	}
	return fmt.Sprintf("route %s -> %s: steps=%d cost=%d expanded=%d enqueued=%d",
		r.Start, r.Goal, len(r.Steps), r.Cost, r.Expanded, r.Enqueued)
}

// WriteText prints every step, goal first, then the summary.
func (r Route) WriteText(w io.Writer) error {
	var b strings.Builder
	for _, s := range r.Steps {
		fmt.Fprintf(&b, "(%d,%d) %s g=%d h=%d\n", s.X, s.Y, s.Terrain, s.G, s.H)
	}
	b.WriteString(r.Summary())
	b.WriteByte('\n')

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteJSON encodes r as indented JSON.
func (r Route) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// WriteHistogram prints "category count" lines in category order, skipping
// categories that do not occur.
func WriteHistogram(w io.Writer, hist map[terrain.Category]int) error {
	cats := make([]terrain.Category, 0, len(hist))
	for c, n := range hist {
		if n > 0 {
			cats = append(cats, c)
		}
	}
	sort.Slice(cats, func(i, j int) bool { return cats[i] < cats[j] })

	for _, c := range cats {
		if _, err := fmt.Fprintf(w, "%-14s %d\n", c, hist[c]); err != nil {
			return err
		}
	}
	return nil
}

// WriteRegions prints the number of regions and the sizes of the largest
// ones, at most limit (all when limit <= 0).
func WriteRegions(w io.Writer, regions [][]grid.Coordinate, limit int) error {
	sizes := make([]int, len(regions))
	for i, r := range regions {
		sizes[i] = len(r)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(sizes)))
	if limit > 0 && len(sizes) > limit {
		sizes = sizes[:limit]
	}

	if _, err := fmt.Fprintf(w, "regions: %d\n", len(regions)); err != nil {
		return err
	}
	for i, n := range sizes {
		if _, err := fmt.Fprintf(w, "  #%d %d cells\n", i+1, n); err != nil {
			return err
		}
	}
	return nil
}
