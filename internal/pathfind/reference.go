package pathfind

import "math"

// Dijkstra computes the cheapest start-to-goal cost under the grid's movement
// rules with a plain O(n²) uniform-cost scan. It shares no queue or
// heuristic code with Search and exists to cross-check its results.
func Dijkstra(g *Grid, start, goal Cell) (float64, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.walkableLocked(start) || !g.walkableLocked(goal) {
		return 0, false
	}
	cfg := g.cfg
	n := g.width * g.height
	dist := make([]float64, n)
	done := make([]bool, n)
	for i := range dist {
		dist[i] = math.Inf(1)
	}
	dist[g.index(start)] = 0

	for {
		best := -1
		for i := 0; i < n; i++ {
			if !done[i] && !math.IsInf(dist[i], 1) && (best < 0 || dist[i] < dist[best]) {
				best = i
			}
		}
		if best < 0 {
			return 0, false
		}
		cur := Cell{X: best % g.width, Y: best / g.width}
		if cur == goal {
			return dist[best], true
		}
		done[best] = true
		for _, s := range movesFor(cfg) {
			next, cost, ok := g.stepCost(cur, s, cfg)
			if !ok {
				continue
			}
			ni := g.index(next)
			if d := dist[best] + cost; d < dist[ni] {
				dist[ni] = d
			}
		}
	}
}
