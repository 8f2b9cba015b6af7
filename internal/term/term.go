// Package term is the tcell front-end for the grid editor. Each grid cell
// takes one terminal column; the rows below the grid show the editor mode
// and the most recent status message.
package term

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/Garsondee/gridpath/internal/editor"
	"github.com/Garsondee/gridpath/internal/pathfind"
)

const (
	glyphFloor   = '.'
	glyphWall    = '#'
	glyphVisited = ':'
	glyphPath    = '*'
	glyphStart   = 'S'
	glyphGoal    = 'G'
)

var (
	styleFloor   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleWall    = tcell.StyleDefault.Foreground(tcell.ColorMaroon).Background(tcell.ColorMaroon)
	styleVisited = tcell.StyleDefault.Foreground(tcell.ColorTeal)
	stylePath    = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleStart   = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleGoal    = tcell.StyleDefault.Foreground(tcell.ColorBlue).Bold(true)
	styleStatus  = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleWarn    = tcell.StyleDefault.Foreground(tcell.ColorOrange)
)

// App drives an editor.Editor from a tcell screen.
type App struct {
	screen tcell.Screen
	ed     *editor.Editor
	cursor pathfind.Cell

	// onFound runs after a successful search, typically a Chime.
	onFound func()
}

// New creates an App drawing to an initialised screen.
func New(screen tcell.Screen, ed *editor.Editor) *App {
	return &App{screen: screen, ed: ed}
}

// SetOnFound registers fn to run whenever FindPath succeeds.
func (a *App) SetOnFound(fn func()) {
	a.onFound = fn
}

// Cursor returns the highlighted cell.
func (a *App) Cursor() pathfind.Cell {
	return a.cursor
}

// Run draws and handles events until the user quits or ctx is done.
func (a *App) Run(ctx context.Context) error {
	events := make(chan tcell.Event)
	quit := make(chan struct{})
	defer close(quit)

	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	for {
		a.Draw()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if a.HandleEvent(ev) {
				return nil
			}
		}
	}
}

// HandleEvent applies one input event and reports whether the app should quit.
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.screen.Sync()
	case *tcell.EventKey:
		return a.handleKey(ev)
	}
	return false
}

func (a *App) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyUp:
		a.moveCursor(0, -1)
	case tcell.KeyDown:
		a.moveCursor(0, 1)
	case tcell.KeyLeft:
		a.moveCursor(-1, 0)
	case tcell.KeyRight:
		a.moveCursor(1, 0)
	case tcell.KeyEnter:
		a.findPath()
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return true
		case ' ':
			a.ed.Click(a.cursor)
		case 'w':
			a.ed.SetMode(editor.ModeWall)
		case 's':
			a.ed.SetMode(editor.ModeStart)
		case 'g':
			a.ed.SetMode(editor.ModeGoal)
		case 'f':
			a.findPath()
		case 'c':
			a.ed.ClearWalls()
		case 'd':
			a.ed.ToggleDiagonal()
		case 'h':
			a.ed.CycleHeuristic()
		}
	}
	return false
}

func (a *App) moveCursor(dx, dy int) {
	next := pathfind.Cell{X: a.cursor.X + dx, Y: a.cursor.Y + dy}
	if a.ed.Grid.InBounds(next) {
		a.cursor = next
	}
}

func (a *App) findPath() {
	if a.ed.FindPath() && a.onFound != nil {
		a.onFound()
	}
}

// Draw renders the grid with the status lines below it.
func (a *App) Draw() {
	a.screen.Clear()
	g := a.ed.Grid

	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			c := pathfind.Cell{X: x, Y: y}
			if g.Walkable(c) {
				a.screen.SetContent(x, y, glyphFloor, nil, styleFloor)
			} else {
				a.screen.SetContent(x, y, glyphWall, nil, styleWall)
			}
		}
	}
	for _, c := range a.ed.Result.Visited {
		a.screen.SetContent(c.X, c.Y, glyphVisited, nil, styleVisited)
	}
	for _, c := range a.ed.Result.Path {
		a.screen.SetContent(c.X, c.Y, glyphPath, nil, stylePath)
	}
	a.screen.SetContent(a.ed.Start.X, a.ed.Start.Y, glyphStart, nil, styleStart)
	a.screen.SetContent(a.ed.Goal.X, a.ed.Goal.Y, glyphGoal, nil, styleGoal)

	// Cursor shows as the reversed cell under it.
	r, _, st, _ := a.screen.GetContent(a.cursor.X, a.cursor.Y)
	a.screen.SetContent(a.cursor.X, a.cursor.Y, r, nil, st.Reverse(true))

	cfg := g.Config()
	a.drawString(0, g.Height()+1, styleStatus, fmt.Sprintf("mode:%s  heuristic:%s  diagonal:%v  cursor:%v",
		a.ed.Mode, cfg.Heuristic, cfg.AllowDiagonal, a.cursor))
	if last := a.ed.Log.Last(); last.Message != "" {
		st := styleStatus
		if last.Warn {
			st = styleWarn
		}
		a.drawString(0, g.Height()+2, st, last.Message)
	}
	a.drawString(0, g.Height()+3, styleFloor, "arrows move  space click  w/s/g mode  f find  c clear  d diag  h heur  q quit")

	a.screen.Show()
}

func (a *App) drawString(x, y int, style tcell.Style, s string) {
	for _, r := range s {
		a.screen.SetContent(x, y, r, nil, style)
		x++
	}
}
