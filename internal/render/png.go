// Package render draws grids and search results to raster images.
package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/fogleman/gg"

	"github.com/Garsondee/gridpath/internal/pathfind"
)

var (
	ColorFloor   = color.RGBA{R: 236, G: 236, B: 228, A: 255}
	ColorWall    = color.RGBA{R: 40, G: 44, B: 52, A: 255}
	ColorVisited = color.RGBA{R: 186, G: 214, B: 240, A: 255}
	ColorPath    = color.RGBA{R: 230, G: 180, B: 30, A: 255}
	ColorStart   = color.RGBA{R: 40, G: 170, B: 70, A: 255}
	ColorGoal    = color.RGBA{R: 50, G: 90, B: 210, A: 255}
	colorLine    = color.RGBA{R: 0, G: 0, B: 0, A: 40}
)

// Draw renders g with the visited cells and path from res. scale is the
// pixel size of one cell and must be at least 2.
func Draw(g *pathfind.Grid, res pathfind.Result, start, goal pathfind.Cell, scale int) (image.Image, error) {
	if scale < 2 {
		return nil, fmt.Errorf("render: scale %d too small", scale)
	}
	s := float64(scale)
	dc := gg.NewContext(g.Width()*scale, g.Height()*scale)
	dc.SetColor(ColorFloor)
	dc.Clear()

	fillCell := func(c pathfind.Cell, col color.Color) {
		dc.SetColor(col)
		dc.DrawRectangle(float64(c.X)*s, float64(c.Y)*s, s, s)
		dc.Fill()
	}

	for _, c := range res.Visited {
		fillCell(c, ColorVisited)
	}
	for _, c := range g.Walls() {
		fillCell(c, ColorWall)
	}

	// Grid lines.
	dc.SetColor(colorLine)
	dc.SetLineWidth(1)
	for x := 0; x <= g.Width(); x++ {
		dc.DrawLine(float64(x)*s, 0, float64(x)*s, float64(g.Height())*s)
	}
	for y := 0; y <= g.Height(); y++ {
		dc.DrawLine(0, float64(y)*s, float64(g.Width())*s, float64(y)*s)
	}
	dc.Stroke()

	if len(res.Path) > 1 {
		dc.SetColor(ColorPath)
		dc.SetLineWidth(s / 4)
		dc.SetLineCap(gg.LineCapRound)
		dc.SetLineJoin(gg.LineJoinRound)
		first := res.Path[0]
		dc.MoveTo(float64(first.X)*s+s/2, float64(first.Y)*s+s/2)
		for _, c := range res.Path[1:] {
			dc.LineTo(float64(c.X)*s+s/2, float64(c.Y)*s+s/2)
		}
		dc.Stroke()
	}

	dc.SetColor(ColorStart)
	dc.DrawCircle(float64(start.X)*s+s/2, float64(start.Y)*s+s/2, s/3)
	dc.Fill()
	dc.SetColor(ColorGoal)
	dc.DrawCircle(float64(goal.X)*s+s/2, float64(goal.Y)*s+s/2, s/3)
	dc.Fill()

	return dc.Image(), nil
}

// SavePNG draws the grid and writes it to filename.
func SavePNG(filename string, g *pathfind.Grid, res pathfind.Result, start, goal pathfind.Cell, scale int) error {
	img, err := Draw(g, res, start, goal, scale)
	if err != nil {
		return err
	}
	if err := gg.SavePNG(filename, img); err != nil {
		return fmt.Errorf("render: save %s: %w", filename, err)
	}
	return nil
}
