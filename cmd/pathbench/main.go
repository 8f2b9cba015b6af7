package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"math"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/atotto/clipboard"

	"github.com/Garsondee/gridpath/internal/pathfind"
	"github.com/Garsondee/gridpath/internal/render"
	"github.com/Garsondee/gridpath/internal/tilemap"
)

// costEps is the tolerance when comparing A* costs with the reference.
const costEps = 1e-9

type runStats struct {
	runIndex int
	seed     int64
	start    pathfind.Cell
	goal     pathfind.Cell

	result   pathfind.Result
	refFound bool
	refCost  float64
	duration time.Duration

	staleSkips int
	logEntries []pathfind.SearchLogEntry
}

// mismatch reports whether A* disagrees with the reference search.
func (rs runStats) mismatch() bool {
	if rs.result.Found != rs.refFound {
		return true
	}
	return rs.refFound && math.Abs(rs.result.Cost-rs.refCost) > costEps
}

type benchConfig struct {
	runs     int
	width    int
	height   int
	density  float64
	seedBase int64
	seedStep int64
	verbose  bool
	opts     []pathfind.Option
}

func main() {
	var runs, width, height, pngScale int
	var density, diagCost float64
	var seedBase, seedStep int64
	var diagonal, copyReport, verbose bool
	var heuristic, mapFile, pngFile string

	flag.IntVar(&runs, "runs", 20, "number of random grids to search")
	flag.IntVar(&width, "width", 32, "grid width in cells")
	flag.IntVar(&height, "height", 32, "grid height in cells")
	flag.Float64Var(&density, "density", 0.25, "fraction of cells blocked, 0..0.9")
	flag.Int64Var(&seedBase, "seed-base", 42, "base RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.BoolVar(&diagonal, "diagonal", false, "allow 8-directional movement")
	flag.StringVar(&heuristic, "heuristic", "manhattan", "manhattan, euclidean or octile")
	flag.Float64Var(&diagCost, "diag-cost", pathfind.DefaultDiagonalCost, "cost of one diagonal step")
	flag.StringVar(&mapFile, "map", "", "ASCII map file; searches S to G once")
	flag.StringVar(&pngFile, "png", "", "write the first run to this PNG file")
	flag.IntVar(&pngScale, "png-scale", 16, "PNG pixels per cell")
	flag.BoolVar(&copyReport, "copy", false, "copy the report to the clipboard")
	flag.BoolVar(&verbose, "verbose", false, "print search log entries")
	flag.Parse()

	h, err := pathfind.ParseHeuristic(heuristic)
	if err != nil {
		fail("%v", err)
	}
	if diagCost <= 0 {
		fail("-diag-cost must be > 0")
	}
	cfg := benchConfig{
		runs:     runs,
		width:    width,
		height:   height,
		density:  density,
		seedBase: seedBase,
		seedStep: seedStep,
		verbose:  verbose,
		opts: []pathfind.Option{
			pathfind.WithDiagonal(diagonal),
			pathfind.WithHeuristic(h),
			pathfind.WithDiagonalCost(diagCost),
		},
	}

	var all []runStats
	var grids []*pathfind.Grid
	if mapFile != "" {
		m, err := tilemap.Load(mapFile)
		if err != nil {
			fail("%v", err)
		}
		g, rs := runMap(m, cfg)
		all, grids = []runStats{rs}, []*pathfind.Grid{g}
	} else {
		if err := cfg.validate(); err != nil {
			fail("%v", err)
		}
		for i := 0; i < cfg.runs; i++ {
			seed := cfg.seedBase + int64(i)*cfg.seedStep
			g, start, goal := randomGrid(seed, cfg)
			all = append(all, runSearch(i+1, seed, g, start, goal, cfg.verbose))
			grids = append(grids, g)
		}
	}

	var report strings.Builder
	fmt.Fprintf(&report, "=== Path Benchmark ===\n")
	fmt.Fprintf(&report, "grid=%dx%d density=%.2f heuristic=%s diagonal=%v diag_cost=%.5f\n",
		grids[0].Width(), grids[0].Height(), cfg.density, h, diagonal, diagCost)
	if h == pathfind.Manhattan && diagonal {
		fmt.Fprintf(&report, "note: manhattan overestimates with diagonal moves; cost mismatches are expected\n")
	}
	fmt.Fprintln(&report)
	for _, rs := range all {
		printRun(&report, rs)
	}
	printAggregate(&report, all)
	fmt.Print(report.String())

	if pngFile != "" {
		rs := all[0]
		if err := render.SavePNG(pngFile, grids[0], rs.result, rs.start, rs.goal, pngScale); err != nil {
			fail("%v", err)
		}
		fmt.Printf("wrote %s\n", pngFile)
	}
	if copyReport {
		if err := clipboard.WriteAll(report.String()); err != nil {
			fmt.Printf("warning: clipboard: %v\n", err)
		}
	}
}

func fail(format string, args ...any) {
	fmt.Printf("error: "+format+"\n", args...)
	os.Exit(2)
}

func (c benchConfig) validate() error {
	switch {
	case c.runs <= 0:
		return fmt.Errorf("-runs must be > 0")
	case c.width <= 1 || c.height <= 1:
		return fmt.Errorf("-width and -height must be > 1")
	case c.density < 0 || c.density > 0.9:
		return fmt.Errorf("-density must be within 0..0.9")
	}
	return nil
}

// randomGrid blocks cells with probability density, keeping the top-left
// start and bottom-right goal open.
func randomGrid(seed int64, cfg benchConfig) (*pathfind.Grid, pathfind.Cell, pathfind.Cell) {
	rng := rand.New(rand.NewSource(seed))
	g := pathfind.NewGrid(cfg.width, cfg.height, cfg.opts...)
	start := pathfind.Cell{}
	goal := pathfind.Cell{X: cfg.width - 1, Y: cfg.height - 1}
	for y := 0; y < cfg.height; y++ {
		for x := 0; x < cfg.width; x++ {
			c := pathfind.Cell{X: x, Y: y}
			if c == start || c == goal {
				continue
			}
			if rng.Float64() < cfg.density {
				g.SetWalkable(c, false)
			}
		}
	}
	return g, start, goal
}

// runMap searches between the map's markers, defaulting to opposite corners.
func runMap(m *tilemap.Map, cfg benchConfig) (*pathfind.Grid, runStats) {
	g := m.Grid(cfg.opts...)
	start, goal := pathfind.Cell{}, pathfind.Cell{X: m.Cols - 1, Y: m.Rows - 1}
	if m.HasStart {
		start = m.Start
	}
	if m.HasGoal {
		goal = m.Goal
	}
	return g, runSearch(1, 0, g, start, goal, cfg.verbose)
}

func runSearch(runIndex int, seed int64, g *pathfind.Grid, start, goal pathfind.Cell, verbose bool) runStats {
	sl := pathfind.NewSearchLog(verbose)
	g.SetSearchLog(sl)
	defer g.SetSearchLog(nil)

	began := time.Now()
	res, _ := g.Search(context.Background(), start, goal)
	elapsed := time.Since(began)

	refCost, refFound := pathfind.Dijkstra(g, start, goal)
	rs := runStats{
		runIndex:   runIndex,
		seed:       seed,
		start:      start,
		goal:       goal,
		result:     res,
		refFound:   refFound,
		refCost:    refCost,
		duration:   elapsed,
		staleSkips: sl.Count("open", "stale_skip"),
	}
	if verbose {
		rs.logEntries = sl.Entries()
	}
	return rs
}

func printRun(w io.Writer, rs runStats) {
	res := rs.result
	fmt.Fprintf(w, "--- Run %d (seed=%d) %v -> %v ---\n", rs.runIndex, rs.seed, rs.start, rs.goal)
	fmt.Fprintf(w, "found=%v length=%d cost=%s reference=%s expanded=%d duration=%s",
		res.Found, len(res.Path), costString(res.Found, res.Cost), costString(rs.refFound, rs.refCost),
		res.Expanded, rs.duration.Round(time.Microsecond))
	if rs.mismatch() {
		fmt.Fprint(w, " MISMATCH")
	}
	fmt.Fprintln(w)
	for _, e := range rs.logEntries {
		fmt.Fprintf(w, "  %s\n", e)
	}
}

func printAggregate(w io.Writer, all []runStats) {
	found, mismatches, expanded, staleSkips := 0, 0, 0, 0
	var total time.Duration
	for _, rs := range all {
		if rs.result.Found {
			found++
		}
		if rs.mismatch() {
			mismatches++
		}
		expanded += rs.result.Expanded
		staleSkips += rs.staleSkips
		total += rs.duration
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "=== Aggregate ===")
	fmt.Fprintf(w, "runs=%d found=%d/%d (%.0f%%) mismatches=%d\n",
		len(all), found, len(all), percent(found, len(all)), mismatches)
	fmt.Fprintf(w, "avg_per_run: expanded=%.1f stale_skips=%.1f duration=%s\n",
		avg(expanded, len(all)), avg(staleSkips, len(all)), avgDuration(total, len(all)))
}

func costString(found bool, cost float64) string {
	if !found {
		return "n/a"
	}
	return fmt.Sprintf("%.3f", cost)
}

func avg(sum int, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

func percent(part, n int) float64 {
	return avg(part*100, n)
}

func avgDuration(total time.Duration, n int) time.Duration {
	if n <= 0 {
		return 0
	}
	return (total / time.Duration(n)).Round(time.Microsecond)
}
