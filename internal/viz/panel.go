package viz

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	logPanelWidth = 300
	logMinHeight  = 240
	logLineHeight = 13
	logMaxChars   = (logPanelWidth - 16) / 6
)

// drawStatusPanel renders the editor's status log down the right-hand side,
// newest entry at the bottom.
func (v *Visualizer) drawStatusPanel(screen *ebiten.Image, panelX int) {
	panelH := v.height
	vector.FillRect(screen, float32(panelX), 0, float32(logPanelWidth), float32(panelH), color.RGBA{R: 10, G: 12, B: 16, A: 248}, false)
	vector.StrokeLine(screen, float32(panelX), 0, float32(panelX), float32(panelH), 1.0, color.RGBA{R: 50, G: 60, B: 80, A: 255}, false)

	vector.FillRect(screen, float32(panelX), 0, float32(logPanelWidth), 16, color.RGBA{R: 20, G: 26, B: 36, A: 255}, false)
	ebitenutil.DebugPrintAt(screen, "STATUS", panelX+8, 2)
	vector.StrokeLine(screen, float32(panelX), 16, float32(panelX+logPanelWidth), 16, 1.0, color.RGBA{R: 50, G: 70, B: 100, A: 200}, false)

	entries := v.ed.Log.Recent()
	maxVisible := (panelH - 24) / logLineHeight
	if len(entries) > maxVisible {
		entries = entries[len(entries)-maxVisible:]
	}

	y := 20
	for i, e := range entries {
		if i == len(entries)-1 {
			vector.FillRect(screen, float32(panelX+2), float32(y), float32(logPanelWidth-4), float32(logLineHeight), color.RGBA{R: 30, G: 36, B: 50, A: 160}, false)
		}
		dot := color.RGBA{R: 80, G: 180, B: 100, A: 255}
		if e.Warn {
			dot = color.RGBA{R: 220, G: 170, B: 40, A: 255}
		}
		vector.FillRect(screen, float32(panelX+5), float32(y+4), 3, 5, dot, false)
		ebitenutil.DebugPrintAt(screen, clip(fmt.Sprintf("%3d %s", e.Seq, e.Message), logMaxChars), panelX+12, y)
		y += logLineHeight
	}
}

func clip(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "~"
}
