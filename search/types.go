package search

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/katalvlaran/orienteer/grid"
	"github.com/katalvlaran/orienteer/heuristic"
)

// Sentinel errors returned by the search package.
var (
	// ErrNilGrid indicates that a nil *grid.Grid was passed to Search.
	ErrNilGrid = errors.New("search: grid is nil")

	// ErrOptionViolation indicates that an Option received an invalid value.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrExpansionLimit indicates the search stopped at the WithMaxExpansions cap.
	ErrExpansionLimit = errors.New("search: expansion limit reached")

	// ErrBrokenChain indicates predecessor links do not lead back to the start.
	ErrBrokenChain = errors.New("search: predecessor chain does not reach start")
)

// FrontierKind selects the open-set implementation.
type FrontierKind int

const (
	// FrontierLinear scans a slice for the best member on every pick.
	FrontierLinear FrontierKind = iota
	// FrontierHeap keeps members in a binary heap keyed on (F, insertion order).
	FrontierHeap
)

// String returns "linear" or "heap".
func (k FrontierKind) String() string {
	if k == FrontierHeap {
		return "heap"
	}
	return "linear"
}

// ParseFrontier resolves "linear" or "heap"; empty selects FrontierLinear.
func ParseFrontier(s string) (FrontierKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "linear":
		return FrontierLinear, nil
	case "heap":
		return FrontierHeap, nil
	}
	return FrontierLinear, fmt.Errorf("%w: unknown frontier %q", ErrOptionViolation, s)
}

// ParentPolicy selects when predecessors and accumulated costs are assigned.
type ParentPolicy int

const (
	// ParentRolling assigns on expansion, from the previously expanded cell.
	ParentRolling ParentPolicy = iota
	// ParentDiscovery assigns on discovery and relaxes while the cell is open.
	ParentDiscovery
)

// String returns "rolling" or "discovery".
func (p ParentPolicy) String() string {
	if p == ParentDiscovery {
		return "discovery"
	}
	return "rolling"
}

// ParseParentPolicy resolves "rolling" or "discovery"; empty selects ParentRolling.
func ParseParentPolicy(s string) (ParentPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "rolling":
		return ParentRolling, nil
	case "discovery":
		return ParentDiscovery, nil
	}
	return ParentRolling, fmt.Errorf("%w: unknown parent policy %q", ErrOptionViolation, s)
}

// Status describes how a search ended.
type Status int

const (
	// StatusFound means the goal was dequeued and a path reconstructed.
	StatusFound Status = iota
	// StatusExhausted means the open set emptied before reaching the goal.
	StatusExhausted
	// StatusUnreachable means the reachability pre-check ruled the goal out.
	StatusUnreachable
	// StatusLimited means the expansion cap stopped the search.
	StatusLimited
	// StatusCancelled means the context was done before the search ended.
	StatusCancelled
)

var statusNames = [...]string{"found", "exhausted", "unreachable", "limited", "cancelled"}

// String returns the lower-case status name.
func (s Status) String() string {
	if s < 0 || int(s) >= len(statusNames) {
		return fmt.Sprintf("status(%d)", int(s))
	}
	return statusNames[s]
}

// Result holds the outcome of one search.
//   - Path: cells from goal to start (goal first); empty unless Found.
//   - Cost: G of the goal cell when Found.
//   - Expanded: number of cells settled, the goal excluded.
//   - Enqueued: number of cells ever pushed into the open set, start included.
//   - Relaxed: open members whose G was lowered (ParentDiscovery only).
type Result struct {
	Path     []grid.Cell
	Cost     int64
	Expanded int
	Enqueued int
	Relaxed  int
	Found    bool
	Status   Status
}

// Option configures a search via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation by Search.
type Option func(*Options)

// Options holds the parameters and callbacks of one search.
type Options struct {
	// Ctx is checked once per expansion.
	Ctx context.Context

	// Frontier selects the open-set implementation.
	Frontier FrontierKind

	// Parent selects the predecessor assignment policy.
	Parent ParentPolicy

	// Heuristic estimates the remaining cost; written into every cell up front.
	Heuristic heuristic.Func

	// Conn selects neighbor connectivity.
	Conn grid.Connectivity

	// MaxExpansions, if > 0, caps the number of settled cells.
	MaxExpansions int

	// CheckReachability runs a flood fill before searching and skips the
	// search when the goal lies outside the start's region.
	CheckReachability bool

	// Logger receives start and finish summaries.
	Logger *log.Logger

	// OnExpand is called after a cell is settled, with its final G and Prev.
	OnExpand func(c grid.Cell)

	// OnEnqueue is called for every copy pushed into the open set.
	OnEnqueue func(c grid.Cell)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns the reference configuration:
//   - context.Background(), so a search runs to completion
//   - FrontierLinear, ParentRolling, squared Euclidean heuristic, Conn8
//   - no expansion cap, no reachability pre-check
//   - discarding logger and no-op hooks
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		Frontier:  FrontierLinear,
		Parent:    ParentRolling,
		Heuristic: heuristic.SquaredEuclidean,
		Conn:      grid.Conn8,
		Logger:    log.New(io.Discard, "", 0),
		OnExpand:  func(grid.Cell) {},
		OnEnqueue: func(grid.Cell) {},
	}
}

// WithContext sets a context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithFrontier selects the open-set implementation.
func WithFrontier(kind FrontierKind) Option {
	return func(o *Options) {
		if kind != FrontierLinear && kind != FrontierHeap {
			o.err = fmt.Errorf("%w: frontier kind %d", ErrOptionViolation, int(kind))
			return
		}
		o.Frontier = kind
	}
}

// WithParentPolicy selects the predecessor assignment policy.
func WithParentPolicy(p ParentPolicy) Option {
	return func(o *Options) {
		if p != ParentRolling && p != ParentDiscovery {
			o.err = fmt.Errorf("%w: parent policy %d", ErrOptionViolation, int(p))
			return
		}
		o.Parent = p
	}
}

// WithHeuristic replaces the squared Euclidean estimator.
func WithHeuristic(fn heuristic.Func) Option {
	return func(o *Options) {
		if fn != nil {
			o.Heuristic = fn
		}
	}
}

// WithConnectivity selects Conn8 (default) or Conn4 neighbors.
func WithConnectivity(conn grid.Connectivity) Option {
	return func(o *Options) {
		if conn != grid.Conn8 && conn != grid.Conn4 {
			o.err = fmt.Errorf("%w: connectivity %d", ErrOptionViolation, int(conn))
			return
		}
		o.Conn = conn
	}
}

// WithMaxExpansions caps the number of settled cells.
//
//	n > 0:  stop with ErrExpansionLimit after n expansions
//	n == 0: no cap
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithReachabilityCheck enables the flood-fill pre-check.
func WithReachabilityCheck() Option {
	return func(o *Options) {
		o.CheckReachability = true
	}
}

// WithLogger routes start and finish summaries to l.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnExpand registers a callback run after each cell is settled.
func WithOnExpand(fn func(c grid.Cell)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithOnEnqueue registers a callback run for each cell pushed into the open set.
func WithOnEnqueue(fn func(c grid.Cell)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}
