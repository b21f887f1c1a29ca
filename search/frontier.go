package search

import (
	"container/heap"

	"github.com/katalvlaran/orienteer/grid"
)

// SelectBest returns the index of the open-set member with the smallest
// G+H. Ties go to the first minimal element in left-to-right order.
// Complexity: O(n). Panics if open is empty.
func SelectBest(open []grid.Cell) int {
	if len(open) == 0 {
		panic("search: SelectBest on empty open set")
	}
	best := 0
	bestScore := open[0].F()
	for i := 1; i < len(open); i++ {
		if score := open[i].F(); score < bestScore {
			best = i
			bestScore = score
		}
	}
	return best
}

// frontier is the open set: cells discovered but not yet expanded.
type frontier interface {
	Len() int
	// Push appends a copy of c.
	Push(c grid.Cell)
	// PopBest removes and returns the member with the smallest F,
	// earliest inserted on ties.
	PopBest() grid.Cell
	// Update replaces the member at c.Pos, keeping its insertion rank.
	// Reports false if no such member is open.
	Update(c grid.Cell) bool
}

func newFrontier(kind FrontierKind, capacity int) frontier {
	if kind == FrontierHeap {
		return &heapFrontier{byPos: make(map[grid.Coordinate]*heapItem, capacity)}
	}
	return &linearFrontier{cells: make([]grid.Cell, 0, capacity)}
}

// linearFrontier keeps members in insertion order and scans for the best.
type linearFrontier struct {
	cells []grid.Cell
}

func (f *linearFrontier) Len() int { return len(f.cells) }

func (f *linearFrontier) Push(c grid.Cell) { f.cells = append(f.cells, c) }

func (f *linearFrontier) PopBest() grid.Cell {
	i := SelectBest(f.cells)
	c := f.cells[i]
	// order-preserving removal keeps the tie-break stable
	f.cells = append(f.cells[:i], f.cells[i+1:]...)
	return c
}

func (f *linearFrontier) Update(c grid.Cell) bool {
	for i := range f.cells {
		if f.cells[i].Pos == c.Pos {
			f.cells[i] = c
			return true
		}
	}
	return false
}

// heapItem is one open-set member inside heapFrontier.
type heapItem struct {
	cell  grid.Cell
	seq   uint64 // insertion sequence, the tie-breaker
	index int    // position in the heap slice, maintained by Swap
}

// cellPQ is a min-heap of *heapItem ordered by (F, seq).
type cellPQ []*heapItem

// Len returns the number of items in the heap.
func (pq cellPQ) Len() int { return len(pq) }

// Less orders by score, then by insertion sequence.
func (pq cellPQ) Less(i, j int) bool {
	fi, fj := pq[i].cell.F(), pq[j].cell.F()
	if fi != fj {
		return fi < fj
	}
	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements and keeps their indices current.
func (pq cellPQ) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

// Push adds x onto the heap. Called by heap.Push; x must be *heapItem.
func (pq *cellPQ) Push(x interface{}) {
	item := x.(*heapItem)
	item.index = len(*pq)
	*pq = append(*pq, item)
}

// Pop removes the last element. Called by heap.Pop.
func (pq *cellPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*pq = old[:n-1]

	return item
}

// heapFrontier is a drop-in replacement for linearFrontier with the same
// selection order.
type heapFrontier struct {
	pq    cellPQ
	byPos map[grid.Coordinate]*heapItem
	next  uint64
}

func (f *heapFrontier) Len() int { return f.pq.Len() }

func (f *heapFrontier) Push(c grid.Cell) {
	item := &heapItem{cell: c, seq: f.next}
	f.next++
	heap.Push(&f.pq, item)
	f.byPos[c.Pos] = item
}

func (f *heapFrontier) PopBest() grid.Cell {
	if f.pq.Len() == 0 {
		panic("search: PopBest on empty open set")
	}
	item := heap.Pop(&f.pq).(*heapItem)
	delete(f.byPos, item.cell.Pos)
	return item.cell
}

func (f *heapFrontier) Update(c grid.Cell) bool {
	item, ok := f.byPos[c.Pos]
	if !ok {
		return false
	}
	item.cell = c
	heap.Fix(&f.pq, item.index)
	return true
}
