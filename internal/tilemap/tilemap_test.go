package tilemap

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Garsondee/gridpath/internal/pathfind"
)

func TestNewMap_DefaultFloor(t *testing.T) {
	m := NewMap(4, 3)
	for row := 0; row < m.Rows; row++ {
		for col := 0; col < m.Cols; col++ {
			assert.Equal(t, TileFloor, m.At(col, row))
			assert.False(t, m.HasTile(col, row))
		}
	}
}

func TestMap_BlockingKinds(t *testing.T) {
	m := NewMap(6, 1)
	for i, k := range []TileKind{TileWall, TileWater, TileWindow, TileDoorOpen, TileRubble, TileFloor} {
		m.Set(i, 0, k)
	}
	assert.True(t, m.HasTile(0, 0), "wall")
	assert.True(t, m.HasTile(1, 0), "water")
	assert.True(t, m.HasTile(2, 0), "window")
	assert.False(t, m.HasTile(3, 0), "open door")
	assert.False(t, m.HasTile(4, 0), "rubble")
	assert.False(t, m.HasTile(5, 0), "floor")
	m.Set(9, 9, TileWall) // ignored
	assert.Equal(t, TileFloor, m.At(9, 9))
}

func TestAdapter_PopulateWithOrigin(t *testing.T) {
	m := NewMap(6, 6)
	m.Set(3, 2, TileWall)
	m.Set(0, 0, TileWall) // outside the mapped window

	g := pathfind.NewGrid(3, 3)
	a := Adapter{Origin: pathfind.Cell{X: 2, Y: 1}}
	a.Populate(g, m)

	assert.False(t, g.Walkable(pathfind.Cell{X: 1, Y: 1}), "tile (3,2) maps to grid (1,1)")
	assert.Len(t, g.Walls(), 1)

	tx, ty := a.GridToTile(pathfind.Cell{X: 1, Y: 1})
	assert.Equal(t, [2]int{3, 2}, [2]int{tx, ty})

	_, ok := a.TileToGrid(g, 0, 0)
	assert.False(t, ok, "tile left of origin is outside the grid")
}

func TestAdapter_UpdateCell(t *testing.T) {
	m := NewMap(3, 3)
	g := m.Grid()
	a := Adapter{}

	m.Set(1, 1, TileWater)
	require.True(t, a.UpdateCell(g, m, 1, 1))
	assert.False(t, g.Walkable(pathfind.Cell{X: 1, Y: 1}))

	m.Set(1, 1, TileDoorOpen)
	require.True(t, a.UpdateCell(g, m, 1, 1))
	assert.True(t, g.Walkable(pathfind.Cell{X: 1, Y: 1}))

	assert.False(t, a.UpdateCell(g, m, 5, 5))
}

func TestParse_MarkersAndWalls(t *testing.T) {
	src := "; demo\nS..#\n.#.#\n...G\n"
	m, err := Parse(strings.NewReader(src))
	require.NoError(t, err)

	assert.Equal(t, 4, m.Cols)
	assert.Equal(t, 3, m.Rows)
	require.True(t, m.HasStart)
	require.True(t, m.HasGoal)
	assert.Equal(t, pathfind.Cell{X: 0, Y: 0}, m.Start)
	assert.Equal(t, pathfind.Cell{X: 3, Y: 2}, m.Goal)

	g := m.Grid()
	assert.Len(t, g.Walls(), 3)
	path, ok := g.FindPath(m.Start, m.Goal)
	require.True(t, ok)
	assert.Len(t, path, 6)
}

func TestParse_RaggedRowsPadded(t *testing.T) {
	m, err := Parse(strings.NewReader("#\n###\n"))
	require.NoError(t, err)
	assert.Equal(t, 3, m.Cols)
	assert.False(t, m.HasTile(2, 0))
	assert.True(t, m.HasTile(2, 1))
}

func TestParse_Errors(t *testing.T) {
	_, err := Parse(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrEmptyMap)

	_, err = Parse(strings.NewReader("..X\n"))
	assert.ErrorIs(t, err, ErrUnknownGlyph)
	assert.Contains(t, err.Error(), "line 1 col 3")

	_, err = Parse(strings.NewReader("S.\n.S\n"))
	assert.ErrorIs(t, err, ErrDuplicateMarker)
}

func TestFormat_RendersPath(t *testing.T) {
	m, err := Parse(strings.NewReader("S.#\n..#\n..G\n"))
	require.NoError(t, err)
	g := m.Grid()
	g.SetWalkable(pathfind.Cell{X: 2, Y: 1}, true)

	path, ok := g.FindPath(m.Start, m.Goal)
	require.True(t, ok)
	out := Format(g, path, m.Start, m.Goal)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, byte('S'), lines[0][0])
	assert.Equal(t, byte('#'), lines[0][2])
	assert.Equal(t, byte('G'), lines[2][2])
	assert.Equal(t, len(path)-2, strings.Count(out, "*"))
}

func TestLoad_FileAndErrors(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "ok.txt")
	require.NoError(t, os.WriteFile(good, []byte("S.#\n..G\n"), 0o644))
	m, err := Load(good)
	require.NoError(t, err)
	assert.Equal(t, 3, m.Cols)
	assert.Equal(t, pathfind.Cell{X: 2, Y: 1}, m.Goal)

	bad := filepath.Join(dir, "bad.txt")
	require.NoError(t, os.WriteFile(bad, []byte("S?\n"), 0o644))
	_, err = Load(bad)
	assert.ErrorIs(t, err, ErrUnknownGlyph)

	_, err = Load(filepath.Join(dir, "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestTileKind_StringAndSetRejectsUnknown(t *testing.T) {
	assert.Equal(t, "floor", TileFloor.String())
	assert.Equal(t, "door_open", TileDoorOpen.String())
	assert.Equal(t, "rubble", TileRubble.String())
	assert.Equal(t, "TileKind(6)", tileKindCount.String())

	m := NewMap(2, 2)
	m.Set(1, 1, TileWall)
	m.Set(1, 1, tileKindCount)
	assert.Equal(t, TileWall, m.At(1, 1), "unknown kinds must not overwrite a tile")
}
