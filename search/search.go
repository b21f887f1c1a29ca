package search

import (
	"fmt"

	"github.com/katalvlaran/orienteer/grid"
	"github.com/katalvlaran/orienteer/heuristic"
)

// FindPath runs a search with the reference configuration and returns the
// route as cells from goal to start (goal first, start last). The result is
// empty when the goal cannot be reached.
//
// Start and goal must lie inside g; anything else is a contract violation
// and panics with an error wrapping grid.ErrOutOfRange.
func FindPath(g *grid.Grid, start, goal grid.Coordinate) []grid.Cell {
	res, err := Search(g, start, goal)
	if err != nil {
		// Only contract violations can fail with default options.
		panic(err)
	}
	return res.Path
}

// Search runs a best-first search from start to goal on g, mutating the
// cells of g in place (H for every cell, G and Prev for settled cells).
//
// Returns:
//
//   - a Result whose Status tells how the search ended. An unreachable goal
//     is not an error: Found is false and Path is empty.
//   - err: ErrNilGrid, ErrOptionViolation, a wrapped grid.ErrOutOfRange for
//     bad endpoints, ErrExpansionLimit, or the context error. On the last
//     two the partial Result is still returned.
//
// Complexity with FrontierLinear: O(n²) for n expansions plus O(W×H) for the
// heuristic pass. FrontierHeap brings the loop to O(n log n).
func Search(g *grid.Grid, start, goal grid.Coordinate, opts ...Option) (*Result, error) {
	// 1) Build options and catch any invalid ones immediately.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 2) Validate inputs.
	if g == nil {
		return nil, ErrNilGrid
	}
	if !g.InBounds(start) {
		return nil, fmt.Errorf("search: start %s: %w", start, grid.ErrOutOfRange)
	}
	if !g.InBounds(goal) {
		return nil, fmt.Errorf("search: goal %s: %w", goal, grid.ErrOutOfRange)
	}

	cfg.Logger.Printf("search: start=%s goal=%s frontier=%s parent=%s conn=%s",
		start, goal, cfg.Frontier, cfg.Parent, cfg.Conn)

	// 3) Optional flood fill: no point expanding a region that cannot hold the goal.
	if cfg.CheckReachability && !g.Connected(start, goal, cfg.Conn) {
		cfg.Logger.Printf("search: goal %s outside the region of %s", goal, start)
		return &Result{Status: StatusUnreachable}, nil
	}

	r := &runner{
		g:     g,
		start: start,
		goal:  goal,
		opts:  cfg,
		open:  newFrontier(cfg.Frontier, 64),
		seen:  make(map[grid.Coordinate]struct{}, 64),
		res:   &Result{Status: StatusExhausted},
	}
	r.init()
	err := r.process()

	cfg.Logger.Printf("search: status=%s expanded=%d enqueued=%d path=%d cost=%d",
		r.res.Status, r.res.Expanded, r.res.Enqueued, len(r.res.Path), r.res.Cost)

	return r.res, err
}

// runner holds the mutable state of a single search.
type runner struct {
	g           *grid.Grid
	start, goal grid.Coordinate
	opts        Options
	open        frontier
	seen        map[grid.Coordinate]struct{}
	prev        grid.Coordinate // rolling "previously expanded" coordinate
	res         *Result
}

// init writes the heuristic for the goal and seeds both sets with the start.
func (r *runner) init() {
	heuristic.SetAll(r.g, r.goal, r.opts.Heuristic)

	s := r.g.At(r.start)
	s.G = 0
	s.Prev = r.start
	r.prev = r.start

	r.enqueue(*s)
}

// enqueue copies c into the open set and marks its coordinate seen.
func (r *runner) enqueue(c grid.Cell) {
	r.open.Push(c)
	r.seen[c.Pos] = struct{}{}
	r.res.Enqueued++
	r.opts.OnEnqueue(c)
}

// process is the expansion loop. It stops when the goal is dequeued, the
// open set is empty, the expansion cap is reached, or the context is done.
func (r *runner) process() error {
	ctx := r.opts.Ctx
	for r.open.Len() > 0 {
		// cancellation check (once per expansion)
		select {
		case <-ctx.Done():
			r.res.Status = StatusCancelled
			return ctx.Err()
		default:
		}

		if r.opts.MaxExpansions > 0 && r.res.Expanded >= r.opts.MaxExpansions {
			r.res.Status = StatusLimited
			return fmt.Errorf("%w: %d cells settled", ErrExpansionLimit, r.res.Expanded)
		}

		current := r.open.PopBest()
		if current.Pos == r.goal {
			return r.finish()
		}

		if r.opts.Parent == ParentDiscovery {
			r.expandDiscovery(current.Pos)
		} else {
			r.expandRolling(current.Pos)
		}
	}

	r.res.Status = StatusExhausted
	return nil
}

// expandRolling settles pos from the rolling previous cell, then enqueues
// its unseen neighbors.
func (r *runner) expandRolling(pos grid.Coordinate) {
	r.settleRolling(pos)
	r.prev = pos
	r.res.Expanded++
	r.opts.OnExpand(r.g.Get(pos))

	for _, n := range r.g.Neighbors(pos, r.opts.Conn) {
		if _, ok := r.seen[n]; ok {
			continue
		}
		nc := r.g.Get(n)
		if nc.Terrain.Forbidden() {
			continue
		}
		r.enqueue(nc)
	}
}

// settleRolling assigns Prev and G of pos under the rolling policy.
// The start keeps G = 0 and is its own predecessor.
func (r *runner) settleRolling(pos grid.Coordinate) {
	if pos == r.start {
		return
	}
	cell := r.g.At(pos)
	cell.Prev = r.prev
	cell.G = cell.Terrain.Cost() + r.g.Get(r.prev).G
}

// expandDiscovery settles pos (its G and Prev were fixed while it was open)
// and discovers or relaxes its neighbors.
func (r *runner) expandDiscovery(pos grid.Coordinate) {
	cell := r.g.Get(pos)
	r.res.Expanded++
	r.opts.OnExpand(cell)

	for _, n := range r.g.Neighbors(pos, r.opts.Conn) {
		nc := r.g.At(n)
		if nc.Terrain.Forbidden() {
			continue
		}
		g := cell.G + nc.Terrain.Cost()

		if _, ok := r.seen[n]; !ok {
			nc.G = g
			nc.Prev = pos
			r.enqueue(*nc)
			continue
		}

		// Seen before: only members still open may improve. Settled cells
		// keep their links so the chain back to the start stays acyclic.
		if g >= nc.G {
			continue
		}
		updated := *nc
		updated.G = g
		updated.Prev = pos
		if r.open.Update(updated) {
			*nc = updated
			r.res.Relaxed++
		}
	}
}

// finish settles the goal and reconstructs the path.
func (r *runner) finish() error {
	if r.opts.Parent == ParentRolling {
		r.settleRolling(r.goal)
	}

	path, err := Reconstruct(r.g, r.start, r.goal)
	if err != nil {
		return err
	}
	r.res.Path = path
	r.res.Cost = path[0].G
	r.res.Found = true
	r.res.Status = StatusFound

	return nil
}
