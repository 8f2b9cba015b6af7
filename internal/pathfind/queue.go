package pathfind

// PriorityQueue is a binary min-heap ordered by a caller-supplied comparison.
// cmp returns a negative number when a must leave the queue before b.
//
// Equal elements come out in whatever order the heap mechanics produce; the
// queue is not stable. Callers that need deterministic ties add a secondary
// key to cmp.
type PriorityQueue[T any] struct {
	items []T
	cmp   func(a, b T) int
}

// NewPriorityQueue creates an empty queue using cmp for ordering.
func NewPriorityQueue[T any](cmp func(a, b T) int) *PriorityQueue[T] {
	return &PriorityQueue[T]{cmp: cmp}
}

// Len returns the number of queued items.
func (pq *PriorityQueue[T]) Len() int { return len(pq.items) }

// Enqueue inserts item and sifts it up to its heap position.
func (pq *PriorityQueue[T]) Enqueue(item T) {
	pq.items = append(pq.items, item)
	ci := len(pq.items) - 1
	for ci > 0 {
		pi := (ci - 1) / 2
		if pq.cmp(pq.items[ci], pq.items[pi]) >= 0 {
			break
		}
		pq.items[ci], pq.items[pi] = pq.items[pi], pq.items[ci]
		ci = pi
	}
}

// Dequeue removes and returns the minimum item. It panics on an empty queue.
func (pq *PriorityQueue[T]) Dequeue() T {
	if len(pq.items) == 0 {
		panic("pathfind: Dequeue on empty PriorityQueue")
	}
	li := len(pq.items) - 1
	front := pq.items[0]
	pq.items[0] = pq.items[li]
	var zero T
	pq.items[li] = zero // release references held by the popped slot
	pq.items = pq.items[:li]
	li--

	pi := 0
	for {
		ci := pi*2 + 1
		if ci > li {
			break
		}
		if rc := ci + 1; rc <= li && pq.cmp(pq.items[rc], pq.items[ci]) < 0 {
			ci = rc
		}
		if pq.cmp(pq.items[pi], pq.items[ci]) <= 0 {
			break
		}
		pq.items[pi], pq.items[ci] = pq.items[ci], pq.items[pi]
		pi = ci
	}
	return front
}

// Reset empties the queue but keeps its backing array for reuse.
func (pq *PriorityQueue[T]) Reset() {
	var zero T
	for i := range pq.items {
		pq.items[i] = zero
	}
	pq.items = pq.items[:0]
}
