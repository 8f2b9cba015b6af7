package pathfind

import (
	"context"
	"strings"
	"testing"
)

func TestSearchLog_RecordsOutcomes(t *testing.T) {
	sl := NewSearchLog(false)
	g := NewGrid(4, 4, WithSearchLog(sl))
	g.SetWalkable(Cell{3, 3}, false)

	g.FindPath(Cell{0, 0}, Cell{9, 9})
	g.FindPath(Cell{0, 0}, Cell{3, 3})
	g.FindPath(Cell{0, 0}, Cell{2, 2})

	if n := sl.Count("reject", "out_of_bounds"); n != 1 {
		t.Fatalf("expected 1 out_of_bounds entry, got %d", n)
	}
	if n := sl.Count("reject", "blocked_endpoint"); n != 1 {
		t.Fatalf("expected 1 blocked_endpoint entry, got %d", n)
	}
	found := sl.Filter("search", "found")
	if len(found) != 1 {
		t.Fatalf("expected 1 found entry, got %d", len(found))
	}
	if found[0].NumVal != 4 {
		t.Fatalf("found entry should carry the path cost 4, got %.1f", found[0].NumVal)
	}
	if !strings.Contains(found[0].String(), "(0,0)->(2,2) len=5") {
		t.Fatalf("unexpected entry text: %s", found[0])
	}
	if sl.Count("open", "") != 0 {
		t.Fatal("stale-skip events are verbose-only")
	}
}

func TestSearchLog_NoPathAndSequence(t *testing.T) {
	sl := NewSearchLog(true)
	g := NewGrid(3, 1, WithSearchLog(sl))
	g.SetWalkable(Cell{1, 0}, false)
	g.FindPath(Cell{0, 0}, Cell{2, 0})

	entries := sl.Entries()
	if len(entries) == 0 || entries[len(entries)-1].Key != "no_path" {
		t.Fatalf("expected trailing no_path entry, got %v", entries)
	}
	for i, e := range entries {
		if e.Seq != i+1 {
			t.Fatalf("entry %d has seq %d", i, e.Seq)
		}
	}
	sl.Reset()
	if len(sl.Entries()) != 0 {
		t.Fatal("expected empty log after reset")
	}
}

func TestSearchLog_NilIsNoop(t *testing.T) {
	var sl *SearchLog
	sl.Add("search", "found", "x", 1)
	sl.AddVerbose("open", "stale_skip", "x", 1)
	g := NewGrid(2, 2)
	if _, ok := g.FindPath(Cell{0, 0}, Cell{1, 1}); !ok {
		t.Fatal("grid without a log must still search")
	}
}

func TestGrid_SetSearchLog(t *testing.T) {
	g := NewGrid(3, 3)
	sl := NewSearchLog(false)
	g.SetSearchLog(sl)
	g.FindPath(Cell{0, 0}, Cell{2, 2})
	g.SetSearchLog(nil)
	g.FindPath(Cell{0, 0}, Cell{2, 2})
	if n := sl.Count("search", "found"); n != 1 {
		t.Fatalf("expected only the first search logged, got %d", n)
	}
}

func TestSearch_RejectWithoutLogDoesNotAllocate(t *testing.T) {
	g := NewGrid(4, 4)
	g.SetWalkable(Cell{3, 3}, false)
	ctx := context.Background()
	allocs := testing.AllocsPerRun(50, func() {
		g.Search(ctx, Cell{-1, 0}, Cell{1, 1})
		g.Search(ctx, Cell{0, 0}, Cell{3, 3})
	})
	if allocs != 0 {
		t.Fatalf("rejected searches without a log should not allocate, got %.1f allocs", allocs)
	}
}
