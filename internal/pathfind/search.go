package pathfind

import (
	"context"
	"fmt"
	"math"
	"slices"
)

// cancelCheckInterval is how many pops happen between context checks.
const cancelCheckInterval = 64

// Result is the outcome of one search.
type Result struct {
	Path     []Cell  // start to goal inclusive; nil when not found
	Cost     float64 // summed step costs of Path
	Expanded int     // distinct cells expanded during the search
	Visited  []Cell  // distinct expanded cells in first-expansion order
	Found    bool
}

type step struct {
	dx, dy   int
	diagonal bool
}

var steps = [8]step{
	{1, 0, false}, {-1, 0, false}, {0, 1, false}, {0, -1, false},
	{1, 1, true}, {1, -1, true}, {-1, 1, true}, {-1, -1, true},
}

func movesFor(cfg Config) []step {
	if cfg.AllowDiagonal {
		return steps[:]
	}
	return steps[:4]
}

// stepCost returns the cost of moving from cur by s, or false when the move
// leaves the grid, enters a blocked cell, or cuts a blocked corner.
// Callers hold the read lock.
func (g *Grid) stepCost(cur Cell, s step, cfg Config) (Cell, float64, bool) {
	next := Cell{X: cur.X + s.dx, Y: cur.Y + s.dy}
	if !g.walkableLocked(next) {
		return next, 0, false
	}
	if !s.diagonal {
		return next, 1, true
	}
	// No squeezing between two orthogonal cells when either is blocked.
	if !g.walkableLocked(Cell{X: cur.X + s.dx, Y: cur.Y}) || !g.walkableLocked(Cell{X: cur.X, Y: cur.Y + s.dy}) {
		return next, 0, false
	}
	return next, cfg.DiagonalCost, true
}

// searchNode is one open-set entry. Several nodes may exist for the same
// cell; all but the cheapest are stale and skipped when popped.
type searchNode struct {
	cell Cell
	g, h float64
	seq  uint64 // insertion order, breaks f ties deterministically
}

func compareNodes(a, b searchNode) int {
	fa, fb := a.g+a.h, b.g+b.h
	switch {
	case fa < fb:
		return -1
	case fa > fb:
		return 1
	case a.seq < b.seq:
		return -1
	case a.seq > b.seq:
		return 1
	}
	return 0
}

// link is a parent-table entry; set is false for "no predecessor".
type link struct {
	from Cell
	set  bool
}

// scratch holds the per-search tables. One search owns one scratch.
type scratch struct {
	gScore []float64
	parent []link
	closed []bool
	open   *PriorityQueue[searchNode]
}

func (g *Grid) acquireScratch() *scratch {
	n := g.width * g.height
	sc, _ := g.scratch.Get().(*scratch)
	if sc == nil || len(sc.gScore) != n {
		sc = &scratch{
			gScore: make([]float64, n),
			parent: make([]link, n),
			closed: make([]bool, n),
			open:   NewPriorityQueue(compareNodes),
		}
	}
	for i := range sc.gScore {
		sc.gScore[i] = math.Inf(1)
		sc.parent[i] = link{}
		sc.closed[i] = false
	}
	sc.open.Reset()
	return sc
}

func (g *Grid) releaseScratch(sc *scratch) {
	g.scratch.Put(sc)
}

// FindPath returns the cheapest path from start to goal, inclusive of both.
// The bool is false when either endpoint is out of bounds or blocked, or the
// goal is unreachable; that is the only failure mode.
func (g *Grid) FindPath(start, goal Cell) ([]Cell, bool) {
	res, _ := g.Search(context.Background(), start, goal)
	return res.Path, res.Found
}

// Search runs A* from start to goal and reports the path with search stats.
// The error is non-nil only when ctx is done before the search completes.
func (g *Grid) Search(ctx context.Context, start, goal Cell) (Result, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var route string
	if g.log != nil {
		route = fmt.Sprintf("%v->%v", start, goal)
	}
	if !g.InBounds(start) || !g.InBounds(goal) {
		g.log.Add("reject", "out_of_bounds", route, 0)
		return Result{}, nil
	}
	if !g.walkableLocked(start) || !g.walkableLocked(goal) {
		g.log.Add("reject", "blocked_endpoint", route, 0)
		return Result{}, nil
	}

	cfg := g.cfg
	moves := movesFor(cfg)
	sc := g.acquireScratch()
	defer g.releaseScratch(sc)

	var seq uint64
	sc.gScore[g.index(start)] = 0
	sc.open.Enqueue(searchNode{cell: start, g: 0, h: cfg.Heuristic.Estimate(start, goal, cfg.DiagonalCost)})

	var res Result
	pops := 0
	for sc.open.Len() > 0 {
		pops++
		if pops%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				g.log.Add("search", "cancelled", route, float64(res.Expanded))
				return res, err
			}
		}

		cur := sc.open.Dequeue()
		ci := g.index(cur.cell)
		if cur.g > sc.gScore[ci] {
			if g.log != nil {
				g.log.AddVerbose("open", "stale_skip", cur.cell.String(), cur.g)
			}
			continue
		}

		if cur.cell == goal {
			res.Path = sc.reconstruct(g, goal)
			// Equals gScore[goal] unless a cell on the chain was reopened
			// after the goal was queued.
			res.Cost = PathCost(res.Path, cfg.DiagonalCost)
			res.Found = true
			if g.log != nil {
				g.log.Add("search", "found", fmt.Sprintf("%s len=%d", route, len(res.Path)), res.Cost)
			}
			return res, nil
		}

		// A cell reached again at a lower g is expanded again, but only
		// counted the first time.
		if !sc.closed[ci] {
			sc.closed[ci] = true
			res.Expanded++
			res.Visited = append(res.Visited, cur.cell)
		}

		for _, s := range moves {
			next, cost, ok := g.stepCost(cur.cell, s, cfg)
			if !ok {
				continue
			}
			ni := g.index(next)
			tentative := sc.gScore[ci] + cost
			if tentative < sc.gScore[ni] {
				sc.gScore[ni] = tentative
				sc.parent[ni] = link{from: cur.cell, set: true}
				seq++
				sc.open.Enqueue(searchNode{
					cell: next,
					g:    tentative,
					h:    cfg.Heuristic.Estimate(next, goal, cfg.DiagonalCost),
					seq:  seq,
				})
			}
		}
	}

	g.log.Add("search", "no_path", route, float64(res.Expanded))
	return res, nil
}

// reconstruct follows parent links back from goal until a cell with no
// predecessor, then reverses into start-to-goal order.
func (sc *scratch) reconstruct(g *Grid, goal Cell) []Cell {
	path := []Cell{goal}
	for l := sc.parent[g.index(goal)]; l.set; l = sc.parent[g.index(l.from)] {
		path = append(path, l.from)
	}
	slices.Reverse(path)
	return path
}

// PathCost sums the step costs along path: 1 per orthogonal step and
// diagonalCost per diagonal step.
func PathCost(path []Cell, diagonalCost float64) float64 {
	total := 0.0
	for i := 1; i < len(path); i++ {
		if path[i].X != path[i-1].X && path[i].Y != path[i-1].Y {
			total += diagonalCost
		} else {
			total++
		}
	}
	return total
}
