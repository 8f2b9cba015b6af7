// Package viz is the ebiten front-end for the grid editor.
package viz

import (
	"fmt"
	"image/color"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/Garsondee/gridpath/internal/editor"
	"github.com/Garsondee/gridpath/internal/pathfind"
)

// borderWidth is the pixel gap between the window edge and the grid.
const borderWidth = 24

// revealPerTick is how many closed cells the search replay uncovers per tick.
const revealPerTick = 4

var (
	colBackground = color.RGBA{R: 14, G: 16, B: 20, A: 255}
	colFloor      = color.RGBA{R: 58, G: 64, B: 72, A: 255}
	colWall       = color.RGBA{R: 170, G: 50, B: 50, A: 255}
	colGridLine   = color.RGBA{R: 0, G: 0, B: 0, A: 90}
	colVisited    = color.RGBA{R: 60, G: 120, B: 190, A: 110}
	colPath       = color.RGBA{R: 240, G: 200, B: 40, A: 255}
	colStart      = color.RGBA{R: 60, G: 200, B: 90, A: 255}
	colGoal       = color.RGBA{R: 70, G: 120, B: 255, A: 255}
	colHover      = color.RGBA{R: 255, G: 255, B: 255, A: 40}
)

var face = text.NewGoXFace(basicfont.Face7x13)

// Visualizer implements ebiten.Game on top of an editor.Editor.
type Visualizer struct {
	ed     *editor.Editor
	cellPx int

	width  int
	height int
	gridW  int // grid area in pixels
	gridH  int
	offX   int
	offY   int

	showHUD  bool
	prevKeys map[ebiten.Key]bool
	keyDown  func(ebiten.Key) bool

	// Mouse drag state: the first click decides whether a drag paints.
	prevMouseLeft bool
	dragPaint     bool
	dragCell      pathfind.Cell
	hover         pathfind.Cell
	hoverOK       bool

	// Search replay: how many of Result.Visited are drawn.
	revealed int

	copyText func(string) error
}

// New creates a visualizer drawing each cell cellPx pixels wide.
func New(ed *editor.Editor, cellPx int) *Visualizer {
	gw := ed.Grid.Width() * cellPx
	gh := ed.Grid.Height() * cellPx
	return &Visualizer{
		ed:       ed,
		cellPx:   cellPx,
		width:    borderWidth + gw + borderWidth + logPanelWidth,
		height:   max(borderWidth+gh+borderWidth, logMinHeight),
		gridW:    gw,
		gridH:    gh,
		offX:     borderWidth,
		offY:     borderWidth,
		showHUD:  true,
		prevKeys: make(map[ebiten.Key]bool),
		keyDown:  ebiten.IsKeyPressed,
		copyText: clipboard.WriteAll,
	}
}

// WindowSize returns the window size matching Layout.
func (v *Visualizer) WindowSize() (int, int) {
	return v.width, v.height
}

// Update handles input and advances the search replay.
func (v *Visualizer) Update() error {
	v.handleInput()
	if n := len(v.ed.Result.Visited); v.revealed < n {
		v.revealed = min(n, v.revealed+revealPerTick)
	}
	return nil
}

// screenToCell converts window pixels to a grid cell.
func (v *Visualizer) screenToCell(mx, my int) (pathfind.Cell, bool) {
	if mx < v.offX || my < v.offY {
		return pathfind.Cell{}, false
	}
	c := pathfind.Cell{X: (mx - v.offX) / v.cellPx, Y: (my - v.offY) / v.cellPx}
	return c, v.ed.Grid.InBounds(c)
}

// pressed reports an edge-triggered key press and records the key state.
func (v *Visualizer) pressed(cur map[ebiten.Key]bool, k ebiten.Key) bool {
	cur[k] = v.keyDown(k)
	return cur[k] && !v.prevKeys[k]
}

// handleInput processes editor keypresses (edge-triggered) and mouse edits.
func (v *Visualizer) handleInput() {
	v.handleKeys()
	v.handleMouse()
}

func (v *Visualizer) handleKeys() {
	currentKeys := map[ebiten.Key]bool{}

	modeKeys := [...]struct {
		key  ebiten.Key
		mode editor.Mode
	}{
		{ebiten.Key1, editor.ModeWall},
		{ebiten.Key2, editor.ModeStart},
		{ebiten.Key3, editor.ModeGoal},
	}
	for _, mk := range modeKeys {
		if v.pressed(currentKeys, mk.key) {
			v.ed.SetMode(mk.mode)
		}
	}

	// pressed records key state, so sample both before combining.
	enter := v.pressed(currentKeys, ebiten.KeyEnter)
	find := v.pressed(currentKeys, ebiten.KeyF)
	if enter || find {
		v.ed.FindPath()
		v.revealed = 0
	}
	if v.pressed(currentKeys, ebiten.KeyC) {
		v.ed.ClearWalls()
	}
	if v.pressed(currentKeys, ebiten.KeyD) {
		v.ed.ToggleDiagonal()
	}
	if v.pressed(currentKeys, ebiten.KeyH) {
		v.ed.CycleHeuristic()
	}
	if v.pressed(currentKeys, ebiten.KeyY) {
		v.copyPath()
	}
	if v.pressed(currentKeys, ebiten.KeyTab) {
		v.showHUD = !v.showHUD
	}
	v.prevKeys = currentKeys
}

func (v *Visualizer) handleMouse() {
	mx, my := ebiten.CursorPosition()
	v.hover, v.hoverOK = v.screenToCell(mx, my)

	down := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	switch {
	case down && !v.prevMouseLeft && v.hoverOK:
		v.ed.Click(v.hover)
		v.dragCell = v.hover
		v.dragPaint = v.ed.Mode == editor.ModeWall && !v.ed.Grid.Walkable(v.hover)
	case down && v.dragPaint && v.hoverOK && v.hover != v.dragCell:
		v.ed.Paint(v.hover)
		v.dragCell = v.hover
	case !down:
		v.dragPaint = false
	}
	v.prevMouseLeft = down
}

// copyPath puts the current path on the system clipboard.
func (v *Visualizer) copyPath() {
	if len(v.ed.Result.Path) == 0 {
		v.ed.Log.Add("nothing to copy: find a path first", true)
		return
	}
	if err := v.copyText(v.ed.PathString()); err != nil {
		v.ed.Log.Add(fmt.Sprintf("clipboard: %v", err), true)
		return
	}
	v.ed.Log.Add(fmt.Sprintf("copied %d cells to clipboard", len(v.ed.Result.Path)), false)
}

func (v *Visualizer) Draw(screen *ebiten.Image) {
	screen.Fill(colBackground)
	v.drawGrid(screen)
	v.drawSearch(screen)
	v.drawMarkers(screen)

	// Grid border frame.
	ox, oy := float32(v.offX), float32(v.offY)
	vector.StrokeRect(screen, ox-1, oy-1, float32(v.gridW)+2, float32(v.gridH)+2, 2.0,
		color.RGBA{R: 90, G: 100, B: 120, A: 255}, false)

	v.drawStatusPanel(screen, v.offX+v.gridW+borderWidth)
	if v.showHUD {
		v.drawHUD(screen)
	}
}

func (v *Visualizer) cellRect(c pathfind.Cell) (float32, float32, float32) {
	s := float32(v.cellPx)
	return float32(v.offX) + float32(c.X)*s, float32(v.offY) + float32(c.Y)*s, s
}

func (v *Visualizer) cellCentre(c pathfind.Cell) (float32, float32) {
	x, y, s := v.cellRect(c)
	return x + s/2, y + s/2
}

func (v *Visualizer) drawGrid(screen *ebiten.Image) {
	g := v.ed.Grid
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			c := pathfind.Cell{X: x, Y: y}
			col := colFloor
			if !g.Walkable(c) {
				col = colWall
			}
			px, py, s := v.cellRect(c)
			vector.FillRect(screen, px, py, s, s, col, false)
		}
	}
	drawGridLines(screen, v.offX, v.offY, v.gridW, v.gridH, v.cellPx, colGridLine)

	if v.hoverOK {
		px, py, s := v.cellRect(v.hover)
		vector.FillRect(screen, px, py, s, s, colHover, false)
	}
}

// drawSearch replays the closed set, then draws the path once it is fully revealed.
func (v *Visualizer) drawSearch(screen *ebiten.Image) {
	res := v.ed.Result
	for _, c := range res.Visited[:min(v.revealed, len(res.Visited))] {
		px, py, s := v.cellRect(c)
		vector.FillRect(screen, px+1, py+1, s-2, s-2, colVisited, false)
	}
	path := v.ed.Grid.LastPath()
	if v.revealed < len(res.Visited) || len(path) == 0 {
		return
	}
	w := max(float32(v.cellPx)/5, 2)
	for i := 1; i < len(path); i++ {
		x0, y0 := v.cellCentre(path[i-1])
		x1, y1 := v.cellCentre(path[i])
		vector.StrokeLine(screen, x0, y0, x1, y1, w, colPath, true)
	}
	for _, c := range path {
		cx, cy := v.cellCentre(c)
		vector.FillCircle(screen, cx, cy, w, colPath, true)
	}
}

func (v *Visualizer) drawMarkers(screen *ebiten.Image) {
	r := float32(v.cellPx) * 0.35
	sx, sy := v.cellCentre(v.ed.Start)
	vector.FillCircle(screen, sx, sy, r, colStart, true)
	gx, gy := v.cellCentre(v.ed.Goal)
	vector.FillCircle(screen, gx, gy, r, colGoal, true)
}

func (v *Visualizer) drawHUD(screen *ebiten.Image) {
	cfg := v.ed.Grid.Config()
	lines := []string{
		fmt.Sprintf("mode: %s   [1] wall [2] start [3] goal", v.ed.Mode),
		fmt.Sprintf("heuristic: %s [H]   diagonal: %v [D]", cfg.Heuristic, cfg.AllowDiagonal),
		"[Enter/F] find  [C] clear walls  [Y] copy path  [Tab] HUD",
	}
	if v.hoverOK {
		lines = append(lines, fmt.Sprintf("cursor: %v", v.hover))
	}

	const lineH = 15
	const padX, padY = 6, 4
	maxLen := 0
	for _, l := range lines {
		maxLen = max(maxLen, len(l))
	}
	boxW := float32(maxLen*7 + padX*2)
	boxH := float32(len(lines)*lineH + padY*2)
	bx := float32(v.offX + 4)
	by := float32(v.offY+v.gridH) - boxH - 4

	vector.FillRect(screen, bx, by, boxW, boxH, color.RGBA{R: 6, G: 8, B: 12, A: 210}, false)
	vector.StrokeRect(screen, bx, by, boxW, boxH, 1.0, color.RGBA{R: 70, G: 90, B: 120, A: 180}, false)
	for i, line := range lines {
		drawText(screen, line, int(bx)+padX, int(by)+padY+i*lineH, color.White)
	}
}

func drawText(dst *ebiten.Image, s string, x, y int, col color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(col)
	text.Draw(dst, s, face, op)
}

func drawGridLines(screen *ebiten.Image, offX, offY, w, h, spacing int, c color.Color) {
	if spacing <= 0 {
		return
	}
	ox, oy := float32(offX), float32(offY)
	for x := 0; x <= w; x += spacing {
		xf := ox + float32(x)
		vector.StrokeLine(screen, xf, oy, xf, oy+float32(h), 1.0, c, false)
	}
	for y := 0; y <= h; y += spacing {
		yf := oy + float32(y)
		vector.StrokeLine(screen, ox, yf, ox+float32(w), yf, 1.0, c, false)
	}
}

func (v *Visualizer) Layout(_, _ int) (int, int) {
	return v.width, v.height
}
