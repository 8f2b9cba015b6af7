// Package editor holds the interactive wall/start/goal editing state shared
// by the window and terminal front-ends.
package editor

import (
	"context"
	"fmt"
	"strings"

	"github.com/Garsondee/gridpath/internal/pathfind"
	"github.com/Garsondee/gridpath/internal/tilemap"
)

// Mode selects what a click does.
type Mode uint8

const (
	ModeWall  Mode = iota // toggle walls
	ModeStart             // move the start marker
	ModeGoal              // move the goal marker
)

func (m Mode) String() string {
	switch m {
	case ModeStart:
		return "start"
	case ModeGoal:
		return "goal"
	default:
		return "wall"
	}
}

// Editor owns a grid plus the start/goal markers and the last search result.
type Editor struct {
	Grid   *pathfind.Grid
	Start  pathfind.Cell
	Goal   pathfind.Cell
	Mode   Mode
	Result pathfind.Result // zero until FindPath runs
	Log    *StatusLog
}

// New creates an editor with start at the top-left corner and goal at the
// bottom-right corner.
func New(g *pathfind.Grid) *Editor {
	e := &Editor{
		Grid: g,
		Goal: pathfind.Cell{X: g.Width() - 1, Y: g.Height() - 1},
		Log:  NewStatusLog(),
	}
	e.Log.Add("wall mode: click cells to toggle walls", false)
	return e
}

// FromMap builds the grid from m and takes the start and goal markers from
// it when present. A default corner marker that lands on a wall moves to the
// first open cell in scan order.
func FromMap(m *tilemap.Map, opts ...pathfind.Option) *Editor {
	e := New(m.Grid(opts...))
	if m.HasStart {
		e.Start = m.Start
	} else if !e.Grid.Walkable(e.Start) {
		c, ok := e.firstWalkable(false)
		e.Start = e.relocate("start", e.Start, c, ok)
	}
	if m.HasGoal {
		e.Goal = m.Goal
	} else if !e.Grid.Walkable(e.Goal) {
		c, ok := e.firstWalkable(true)
		e.Goal = e.relocate("goal", e.Goal, c, ok)
	}
	return e
}

// firstWalkable scans row-major, from the end when fromEnd is set.
func (e *Editor) firstWalkable(fromEnd bool) (pathfind.Cell, bool) {
	w, h := e.Grid.Width(), e.Grid.Height()
	for i := 0; i < w*h; i++ {
		j := i
		if fromEnd {
			j = w*h - 1 - i
		}
		if c := (pathfind.Cell{X: j % w, Y: j / w}); e.Grid.Walkable(c) {
			return c, true
		}
	}
	return pathfind.Cell{}, false
}

// relocate moves a default marker off a wall, or warns when the map has no
// open cell at all.
func (e *Editor) relocate(name string, from, to pathfind.Cell, ok bool) pathfind.Cell {
	if !ok {
		e.Log.Add(fmt.Sprintf("%s %v is blocked and the map has no open cell", name, from), true)
		return from
	}
	e.Log.Add(fmt.Sprintf("%s %v is blocked; using %v", name, from, to), true)
	return to
}

// SetMode switches the click behaviour.
func (e *Editor) SetMode(m Mode) {
	e.Mode = m
	switch m {
	case ModeStart:
		e.Log.Add("start mode: click a cell to place the start", false)
	case ModeGoal:
		e.Log.Add("goal mode: click a cell to place the goal", false)
	default:
		e.Log.Add("wall mode: click cells to toggle walls", false)
	}
}

// Click applies the current mode to c and reports whether anything changed.
// Walls never land on the markers and markers never land on walls.
func (e *Editor) Click(c pathfind.Cell) bool {
	if !e.Grid.InBounds(c) {
		return false
	}
	switch e.Mode {
	case ModeWall:
		if c == e.Start || c == e.Goal {
			return false
		}
		e.Grid.SetWalkable(c, !e.Grid.Walkable(c))
	case ModeStart:
		if !e.Grid.Walkable(c) || c == e.Start {
			return false
		}
		e.Start = c
		e.Log.Add(fmt.Sprintf("start set: %v", c), false)
	case ModeGoal:
		if !e.Grid.Walkable(c) || c == e.Goal {
			return false
		}
		e.Goal = c
		e.Log.Add(fmt.Sprintf("goal set: %v", c), false)
	}
	e.ClearPath()
	return true
}

// Paint sets c to a wall without toggling, for drag-painting in wall mode.
func (e *Editor) Paint(c pathfind.Cell) bool {
	if e.Mode != ModeWall || c == e.Start || c == e.Goal || !e.Grid.Walkable(c) {
		return false
	}
	if !e.Grid.SetWalkable(c, false) {
		return false
	}
	e.ClearPath()
	return true
}

// ClearPath drops the current result and the grid's retained path.
func (e *Editor) ClearPath() {
	e.Result = pathfind.Result{}
	e.Grid.SetLastPath(nil)
}

// FindPath searches from Start to Goal and records the outcome.
func (e *Editor) FindPath() bool {
	e.ClearPath()
	res, _ := e.Grid.Search(context.Background(), e.Start, e.Goal)
	e.Result = res
	cfg := e.Grid.Config()
	if !res.Found {
		e.Log.Add("no path: blocked by walls or unreachable", true)
		return false
	}
	e.Grid.SetLastPath(res.Path)
	e.Log.Add(fmt.Sprintf("path found: %d cells, cost %.2f, expanded %d", len(res.Path), res.Cost, res.Expanded), false)
	e.Log.Add(fmt.Sprintf("heuristic: %s | diagonal: %s", cfg.Heuristic, onOff(cfg.AllowDiagonal)), false)
	e.Log.Add("path: "+e.PathString(), false)
	return true
}

// ClearWalls makes every cell walkable again.
func (e *Editor) ClearWalls() {
	e.Grid.Fill(true)
	e.ClearPath()
	e.Log.Add("walls cleared", false)
}

// ToggleDiagonal flips 8-directional movement.
func (e *Editor) ToggleDiagonal() {
	cfg := e.Grid.Config()
	cfg.AllowDiagonal = !cfg.AllowDiagonal
	e.Grid.SetConfig(cfg)
	e.ClearPath()
	if cfg.AllowDiagonal {
		e.Log.Add("diagonal movement: ON (8 directions)", false)
	} else {
		e.Log.Add("diagonal movement: OFF (4 directions)", false)
	}
}

// CycleHeuristic switches to the next heuristic.
func (e *Editor) CycleHeuristic() {
	cfg := e.Grid.Config()
	cfg.Heuristic = cfg.Heuristic.Next()
	e.Grid.SetConfig(cfg)
	e.ClearPath()
	e.Log.Add(fmt.Sprintf("heuristic: %s", cfg.Heuristic), false)
}

// PathString formats the current path as "(0,0) -> (1,0) -> ...".
func (e *Editor) PathString() string {
	return FormatPath(e.Result.Path)
}

// FormatPath joins cells with arrows.
func FormatPath(path []pathfind.Cell) string {
	parts := make([]string, len(path))
	for i, c := range path {
		parts[i] = c.String()
	}
	return strings.Join(parts, " -> ")
}

func onOff(v bool) string {
	if v {
		return "ON"
	}
	return "OFF"
}
