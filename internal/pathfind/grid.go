// Package pathfind implements A* shortest-path search over a rectangular
// occupancy grid with optional 8-directional movement.
package pathfind

import (
	"fmt"
	"sync"
)

// DefaultDiagonalCost is the cost of one diagonal step (≈ √2).
const DefaultDiagonalCost = 1.41421356

// Cell is an integer grid coordinate.
type Cell struct {
	X, Y int
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Config holds the search settings read by every FindPath call.
type Config struct {
	AllowDiagonal bool
	Heuristic     Heuristic
	DiagonalCost  float64
}

// DefaultConfig is 4-directional movement with the Manhattan heuristic.
func DefaultConfig() Config {
	return Config{
		AllowDiagonal: false,
		Heuristic:     Manhattan,
		DiagonalCost:  DefaultDiagonalCost,
	}
}

// Grid is a width×height walkability map plus search configuration.
//
// Searches hold the read lock for their whole run, so occupancy and config
// writes wait for in-flight searches and never interleave with one.
type Grid struct {
	mu       sync.RWMutex
	width    int
	height   int
	walkable []bool // row-major, true = traversable
	cfg      Config
	lastPath []Cell

	log     *SearchLog
	scratch sync.Pool
}

// Option configures a Grid at construction.
type Option func(*Grid)

// WithDiagonal enables or disables the four diagonal moves.
func WithDiagonal(allow bool) Option {
	return func(g *Grid) { g.cfg.AllowDiagonal = allow }
}

// WithHeuristic selects the search heuristic.
func WithHeuristic(h Heuristic) Option {
	return func(g *Grid) { g.cfg.Heuristic = h }
}

// WithDiagonalCost sets the diagonal step cost (also the Octile parameter).
func WithDiagonalCost(cost float64) Option {
	return func(g *Grid) { g.cfg.DiagonalCost = cost }
}

// WithSearchLog records search events into sl.
func WithSearchLog(sl *SearchLog) Option {
	return func(g *Grid) { g.log = sl }
}

// NewGrid creates a grid with every cell walkable.
// It panics if width or height is not positive.
func NewGrid(width, height int, opts ...Option) *Grid {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("pathfind: invalid grid size %dx%d", width, height))
	}
	g := &Grid{
		width:    width,
		height:   height,
		walkable: make([]bool, width*height),
		cfg:      DefaultConfig(),
	}
	for i := range g.walkable {
		g.walkable[i] = true
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether c lies inside the grid.
func (g *Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.Y >= 0 && c.X < g.width && c.Y < g.height
}

func (g *Grid) index(c Cell) int { return c.Y*g.width + c.X }

// Walkable reports whether c is traversable. Out-of-bounds cells are not.
func (g *Grid) Walkable(c Cell) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.walkableLocked(c)
}

func (g *Grid) walkableLocked(c Cell) bool {
	if !g.InBounds(c) {
		return false
	}
	return g.walkable[g.index(c)]
}

// SetWalkable updates one cell. It returns false, writing nothing, when c is
// out of bounds.
func (g *Grid) SetWalkable(c Cell, walkable bool) bool {
	if !g.InBounds(c) {
		return false
	}
	g.mu.Lock()
	g.walkable[g.index(c)] = walkable
	g.mu.Unlock()
	return true
}

// Fill sets every cell to walkable.
func (g *Grid) Fill(walkable bool) {
	g.mu.Lock()
	for i := range g.walkable {
		g.walkable[i] = walkable
	}
	g.mu.Unlock()
}

// Walls returns every blocked cell in row-major order.
func (g *Grid) Walls() []Cell {
	g.mu.RLock()
	defer g.mu.RUnlock()
	var out []Cell
	for i, ok := range g.walkable {
		if !ok {
			out = append(out, Cell{X: i % g.width, Y: i / g.width})
		}
	}
	return out
}

// Config returns the current search settings.
func (g *Grid) Config() Config {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.cfg
}

// SetConfig replaces the search settings.
func (g *Grid) SetConfig(cfg Config) {
	g.mu.Lock()
	g.cfg = cfg
	g.mu.Unlock()
}

// SetLastPath retains path for visualization. Pass nil to clear it.
func (g *Grid) SetLastPath(path []Cell) {
	g.mu.Lock()
	g.lastPath = path
	g.mu.Unlock()
}

// LastPath returns the path stored by SetLastPath.
func (g *Grid) LastPath() []Cell {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.lastPath
}

// SetSearchLog replaces the search event log. Pass nil to stop logging.
func (g *Grid) SetSearchLog(sl *SearchLog) {
	g.mu.Lock()
	g.log = sl
	g.mu.Unlock()
}
