// Package tilemap turns tile-based map data into grid occupancy.
package tilemap

import (
	"fmt"

	"github.com/Garsondee/gridpath/internal/pathfind"
)

// TileKind identifies what occupies a tile.
type TileKind uint8

const (
	TileFloor    TileKind = iota // Open ground
	TileWall                     // Structural wall
	TileWater                    // Deep water
	TileWindow                   // Intact window, can't pass
	TileDoorOpen                 // Open door, passable
	TileRubble                   // Light debris, passable
	tileKindCount                // number of kinds; not a valid kind
)

var tileKindNames = [tileKindCount]string{"floor", "wall", "water", "window", "door_open", "rubble"}

func (k TileKind) String() string {
	if k >= tileKindCount {
		return fmt.Sprintf("TileKind(%d)", uint8(k))
	}
	return tileKindNames[k]
}

// blocksMovement returns true if the tile is impassable.
func blocksMovement(k TileKind) bool {
	switch k {
	case TileWall, TileWater, TileWindow:
		return true
	default:
		return false
	}
}

// Map is a cols×rows field of tiles with optional start/goal markers.
type Map struct {
	Cols  int
	Rows  int
	Tiles []TileKind

	Start    pathfind.Cell
	Goal     pathfind.Cell
	HasStart bool
	HasGoal  bool
}

// NewMap creates a map of floor tiles.
func NewMap(cols, rows int) *Map {
	return &Map{
		Cols:  cols,
		Rows:  rows,
		Tiles: make([]TileKind, cols*rows),
	}
}

func (m *Map) inBounds(col, row int) bool {
	return col >= 0 && col < m.Cols && row >= 0 && row < m.Rows
}

// At returns the tile kind at (col, row); out-of-bounds reads as floor.
func (m *Map) At(col, row int) TileKind {
	if !m.inBounds(col, row) {
		return TileFloor
	}
	return m.Tiles[row*m.Cols+col]
}

// Set writes a tile. Out-of-bounds writes and unknown kinds are ignored.
func (m *Map) Set(col, row int, k TileKind) {
	if !m.inBounds(col, row) || k >= tileKindCount {
		return
	}
	m.Tiles[row*m.Cols+col] = k
}

// HasTile reports whether an obstacle sits at (col, row).
func (m *Map) HasTile(col, row int) bool {
	return blocksMovement(m.At(col, row))
}

// Source is any tile layer that can answer "is there an obstacle here".
type Source interface {
	HasTile(x, y int) bool
}

// Adapter maps grid cell (0,0) onto tile Origin and copies occupancy across.
type Adapter struct {
	Origin pathfind.Cell
}

// GridToTile converts a grid cell to tile coordinates.
func (a Adapter) GridToTile(c pathfind.Cell) (int, int) {
	return a.Origin.X + c.X, a.Origin.Y + c.Y
}

// TileToGrid converts tile coordinates to a grid cell. It returns false when
// the tile falls outside g.
func (a Adapter) TileToGrid(g *pathfind.Grid, tx, ty int) (pathfind.Cell, bool) {
	c := pathfind.Cell{X: tx - a.Origin.X, Y: ty - a.Origin.Y}
	if !g.InBounds(c) {
		return pathfind.Cell{}, false
	}
	return c, true
}

// Populate sets every grid cell walkable unless src has a tile there.
func (a Adapter) Populate(g *pathfind.Grid, src Source) {
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			c := pathfind.Cell{X: x, Y: y}
			tx, ty := a.GridToTile(c)
			g.SetWalkable(c, !src.HasTile(tx, ty))
		}
	}
}

// UpdateCell refreshes the grid cell under tile (tx, ty). It returns false
// when the tile is outside the grid.
func (a Adapter) UpdateCell(g *pathfind.Grid, src Source, tx, ty int) bool {
	c, ok := a.TileToGrid(g, tx, ty)
	if !ok {
		return false
	}
	g.SetWalkable(c, !src.HasTile(tx, ty))
	return true
}

// Grid builds a grid sized to m and populated from it.
func (m *Map) Grid(opts ...pathfind.Option) *pathfind.Grid {
	g := pathfind.NewGrid(m.Cols, m.Rows, opts...)
	Adapter{}.Populate(g, m)
	return g
}
