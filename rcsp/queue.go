package rcsp

// queueItem is a frontier entry: a label handle with its ordering keys copied
// in, so the heap never reads the arena.
type queueItem struct {
	handle int
	dist   float64
	cost   float64
}

// labelPQ is a min-heap of queueItem ordered by distance, then cost, then
// handle (discovery order). Dominated labels stay in the heap and are skipped
// when popped ("lazy deletion").
type labelPQ []queueItem

// Len returns the number of items in the heap.
func (pq labelPQ) Len() int { return len(pq) }

// Less orders by distance, then cost, then discovery.
func (pq labelPQ) Less(i, j int) bool {
	a, b := pq[i], pq[j]
	if a.dist != b.dist {
		return a.dist < b.dist
	}
	if a.cost != b.cost {
		return a.cost < b.cost
	}

	return a.handle < b.handle
}

// Swap swaps two elements in the heap.
func (pq labelPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap. Called by heap.Push.
func (pq *labelPQ) Push(x any) { *pq = append(*pq, x.(queueItem)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *labelPQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
