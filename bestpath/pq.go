package bestpath

import "github.com/katalvlaran/delvepath/layout"

// entry is one scheduled coordinate with its best cumulative cost so far.
// index tracks the entry's heap position so an improvement can re-key it in
// place via heap.Fix instead of pushing a duplicate.
type entry struct {
	coord layout.Coord
	cost  float64
	index int // position in costPQ, -1 once popped
}

// costPQ is an indexed max-heap of *entry: greatest cost pops first, equal
// costs pop in ascending coordinate order so the relaxation sequence is
// deterministic regardless of insertion order.
type costPQ []*entry

// Len returns the number of scheduled entries.
func (pq costPQ) Len() int { return len(pq) }

// Less orders by descending cost, then ascending coordinate.
func (pq costPQ) Less(i, j int) bool {
	if pq[i].cost != pq[j].cost {
		return pq[i].cost > pq[j].cost
	}

	return pq[i].coord.Less(pq[j].coord)
}

// Swap exchanges two entries and keeps their heap indices current.
func (pq costPQ) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

// Push appends x; called by heap.Push, x must be *entry.
func (pq *costPQ) Push(x interface{}) {
	e := x.(*entry)
	e.index = len(*pq)
	*pq = append(*pq, e)
}

// Pop removes and returns the highest-priority entry; called by heap.Pop.
func (pq *costPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	e := old[n-1]
	e.index = -1
	*pq = old[:n-1]

	return e
}
