package editor

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Garsondee/gridpath/internal/pathfind"
	"github.com/Garsondee/gridpath/internal/tilemap"
)

func cell(x, y int) pathfind.Cell { return pathfind.Cell{X: x, Y: y} }

func TestNew_DefaultMarkers(t *testing.T) {
	e := New(pathfind.NewGrid(5, 4))
	assert.Equal(t, cell(0, 0), e.Start)
	assert.Equal(t, cell(4, 3), e.Goal)
	assert.Equal(t, ModeWall, e.Mode)
}

func TestFromMap_UsesMarkers(t *testing.T) {
	m, err := tilemap.Parse(strings.NewReader("..#G\n.S#.\n....\n"))
	require.NoError(t, err)
	e := FromMap(m, pathfind.WithDiagonal(true))
	assert.Equal(t, cell(1, 1), e.Start)
	assert.Equal(t, cell(3, 0), e.Goal)
	assert.False(t, e.Grid.Walkable(cell(2, 0)))
	assert.True(t, e.Grid.Config().AllowDiagonal)
	require.True(t, e.FindPath())
	assert.Equal(t, "path: "+e.PathString(), e.Log.Last().Message)
}

func TestFromMap_BlockedDefaultCornersMove(t *testing.T) {
	m, err := tilemap.Parse(strings.NewReader("#..\n...\n.##\n"))
	require.NoError(t, err)
	e := FromMap(m)
	assert.Equal(t, cell(1, 0), e.Start)
	assert.Equal(t, cell(0, 2), e.Goal)
	assert.True(t, e.Log.Last().Warn)
	assert.Equal(t, "goal (2,2) is blocked; using (0,2)", e.Log.Last().Message)
	require.True(t, e.FindPath())
}

func TestFromMap_AllBlockedWarns(t *testing.T) {
	m, err := tilemap.Parse(strings.NewReader("##\n##\n"))
	require.NoError(t, err)
	e := FromMap(m)
	assert.Equal(t, cell(0, 0), e.Start)
	assert.Equal(t, "goal (1,1) is blocked and the map has no open cell", e.Log.Last().Message)
}

func TestClick_WallModeToggles(t *testing.T) {
	e := New(pathfind.NewGrid(3, 3))
	require.True(t, e.Click(cell(1, 1)))
	assert.False(t, e.Grid.Walkable(cell(1, 1)))
	require.True(t, e.Click(cell(1, 1)))
	assert.True(t, e.Grid.Walkable(cell(1, 1)))

	assert.False(t, e.Click(e.Start), "walls never cover the start")
	assert.False(t, e.Click(e.Goal), "walls never cover the goal")
	assert.False(t, e.Click(cell(-1, 0)))
}

func TestClick_MarkersAvoidWalls(t *testing.T) {
	e := New(pathfind.NewGrid(3, 3))
	e.Click(cell(1, 1))

	e.SetMode(ModeStart)
	assert.False(t, e.Click(cell(1, 1)))
	require.True(t, e.Click(cell(0, 2)))
	assert.Equal(t, cell(0, 2), e.Start)

	e.SetMode(ModeGoal)
	require.True(t, e.Click(cell(2, 0)))
	assert.Equal(t, cell(2, 0), e.Goal)
	assert.Equal(t, "goal set: (2,0)", e.Log.Last().Message)
}

func TestFindPath_RecordsResult(t *testing.T) {
	e := New(pathfind.NewGrid(3, 3))
	require.True(t, e.FindPath())
	assert.Len(t, e.Result.Path, 5)
	assert.Equal(t, e.Result.Path, e.Grid.LastPath())
	assert.Equal(t, "(0,0) -> (1,0) -> (2,0) -> (2,1) -> (2,2)", e.PathString())

	// Any edit invalidates the path.
	e.Click(cell(1, 1))
	assert.Nil(t, e.Result.Path)
	assert.Nil(t, e.Grid.LastPath())
}

func TestFindPath_NoPathWarns(t *testing.T) {
	e := New(pathfind.NewGrid(3, 3))
	for y := 0; y < 3; y++ {
		e.Click(cell(1, y))
	}
	assert.False(t, e.FindPath())
	assert.True(t, e.Log.Last().Warn)
}

func TestToggleDiagonalAndHeuristic(t *testing.T) {
	e := New(pathfind.NewGrid(3, 3))
	e.ToggleDiagonal()
	e.CycleHeuristic()
	e.CycleHeuristic()
	cfg := e.Grid.Config()
	assert.True(t, cfg.AllowDiagonal)
	assert.Equal(t, pathfind.Octile, cfg.Heuristic)

	require.True(t, e.FindPath())
	assert.Equal(t, []pathfind.Cell{cell(0, 0), cell(1, 1), cell(2, 2)}, e.Result.Path)
}

func TestPaint_OnlyBlocks(t *testing.T) {
	e := New(pathfind.NewGrid(3, 3))
	require.True(t, e.Paint(cell(1, 0)))
	assert.False(t, e.Paint(cell(1, 0)), "painting an existing wall is a no-op")
	assert.False(t, e.Grid.Walkable(cell(1, 0)))

	e.SetMode(ModeGoal)
	assert.False(t, e.Paint(cell(2, 0)), "paint only works in wall mode")
}

func TestClearWalls(t *testing.T) {
	e := New(pathfind.NewGrid(4, 4))
	e.Click(cell(1, 1))
	e.Click(cell(2, 2))
	e.ClearWalls()
	assert.Empty(t, e.Grid.Walls())
}

func TestStatusLog_RingBuffer(t *testing.T) {
	sl := NewStatusLog()
	assert.Equal(t, StatusEntry{}, sl.Last())
	for i := 0; i < statusMaxEntries+5; i++ {
		sl.Add(fmt.Sprintf("msg %d", i), false)
	}
	recent := sl.Recent()
	require.Len(t, recent, statusMaxEntries)
	assert.Equal(t, "msg 5", recent[0].Message)
	assert.Equal(t, fmt.Sprintf("msg %d", statusMaxEntries+4), sl.Last().Message)
	assert.Equal(t, statusMaxEntries+5, sl.Last().Seq)
}
