package pathfind

import (
	"fmt"
	"math"
	"strings"
)

// Heuristic selects the remaining-cost estimate used by the search.
type Heuristic uint8

const (
	Manhattan Heuristic = iota // |dx|+|dy|; overestimates when diagonals are on
	Euclidean                  // straight-line distance
	Octile                     // exact cost on an open 8-connected grid
	heuristicCount             // sentinel
)

// String returns the lower-case name of the heuristic.
func (h Heuristic) String() string {
	switch h {
	case Manhattan:
		return "manhattan"
	case Euclidean:
		return "euclidean"
	case Octile:
		return "octile"
	default:
		return fmt.Sprintf("heuristic(%d)", uint8(h))
	}
}

// Next returns the heuristic after h, wrapping around.
func (h Heuristic) Next() Heuristic {
	return (h + 1) % heuristicCount
}

// ParseHeuristic maps a name (case-insensitive) to a Heuristic.
func ParseHeuristic(s string) (Heuristic, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "manhattan":
		return Manhattan, nil
	case "euclidean":
		return Euclidean, nil
	case "octile":
		return Octile, nil
	}
	return Manhattan, fmt.Errorf("unknown heuristic %q (supported: manhattan, euclidean, octile)", s)
}

// Estimate returns the heuristic distance between a and b.
// diagonalCost only affects Octile.
func (h Heuristic) Estimate(a, b Cell, diagonalCost float64) float64 {
	dx := absInt(a.X - b.X)
	dy := absInt(a.Y - b.Y)
	switch h {
	case Euclidean:
		return math.Sqrt(float64(dx*dx + dy*dy))
	case Octile:
		lo, hi := min(dx, dy), max(dx, dy)
		return float64(lo)*diagonalCost + float64(hi-lo)
	default:
		return float64(dx + dy)
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
