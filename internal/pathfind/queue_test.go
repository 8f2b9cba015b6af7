package pathfind

import (
	"cmp"
	"math/rand"
	"slices"
	"testing"
)

func TestPriorityQueue_DequeuesInOrder(t *testing.T) {
	rng := rand.New(rand.NewSource(7)) // #nosec G404 -- test data
	pq := NewPriorityQueue(cmp.Compare[int])
	var want []int
	for i := 0; i < 500; i++ {
		v := rng.Intn(100) // plenty of duplicates
		want = append(want, v)
		pq.Enqueue(v)
	}
	slices.Sort(want)

	if pq.Len() != len(want) {
		t.Fatalf("expected len %d, got %d", len(want), pq.Len())
	}
	for i, w := range want {
		if got := pq.Dequeue(); got != w {
			t.Fatalf("dequeue %d: expected %d got %d", i, w, got)
		}
	}
	if pq.Len() != 0 {
		t.Fatalf("expected empty queue, got len %d", pq.Len())
	}
}

func TestPriorityQueue_InterleavedOps(t *testing.T) {
	pq := NewPriorityQueue(cmp.Compare[int])
	pq.Enqueue(5)
	pq.Enqueue(3)
	if got := pq.Dequeue(); got != 3 {
		t.Fatalf("expected 3 got %d", got)
	}
	pq.Enqueue(1)
	pq.Enqueue(4)
	for _, w := range []int{1, 4, 5} {
		if got := pq.Dequeue(); got != w {
			t.Fatalf("expected %d got %d", w, got)
		}
	}
}

func TestPriorityQueue_DequeueEmptyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on empty dequeue")
		}
	}()
	NewPriorityQueue(cmp.Compare[int]).Dequeue()
}

func TestPriorityQueue_ResetKeepsWorking(t *testing.T) {
	pq := NewPriorityQueue(cmp.Compare[int])
	pq.Enqueue(2)
	pq.Enqueue(1)
	pq.Reset()
	if pq.Len() != 0 {
		t.Fatalf("expected empty after reset, got %d", pq.Len())
	}
	pq.Enqueue(9)
	if got := pq.Dequeue(); got != 9 {
		t.Fatalf("expected 9 got %d", got)
	}
}

func TestCompareNodes_SeqBreaksTies(t *testing.T) {
	pq := NewPriorityQueue(compareNodes)
	pq.Enqueue(searchNode{cell: Cell{2, 0}, g: 1, h: 1, seq: 2})
	pq.Enqueue(searchNode{cell: Cell{1, 0}, g: 2, h: 0, seq: 1})
	pq.Enqueue(searchNode{cell: Cell{0, 0}, g: 0, h: 1, seq: 3})

	if got := pq.Dequeue().cell; got != (Cell{0, 0}) {
		t.Fatalf("lowest f should come first, got %v", got)
	}
	if got := pq.Dequeue().cell; got != (Cell{1, 0}) {
		t.Fatalf("equal f should pop in insertion order, got %v", got)
	}
}
