package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Garsondee/gridpath/internal/editor"
	"github.com/Garsondee/gridpath/internal/pathfind"
	"github.com/Garsondee/gridpath/internal/tilemap"
	"github.com/Garsondee/gridpath/internal/viz"
)

func main() {
	var width, height, cellPx int
	var diagonal bool
	var heuristic, mapFile string

	flag.IntVar(&width, "w", 20, "grid width in cells")
	flag.IntVar(&height, "h", 15, "grid height in cells")
	flag.IntVar(&cellPx, "cell", 32, "cell size in pixels")
	flag.BoolVar(&diagonal, "diagonal", false, "allow 8-directional movement")
	flag.StringVar(&heuristic, "heuristic", "manhattan", "manhattan, euclidean or octile")
	flag.StringVar(&mapFile, "map", "", "ASCII map file (overrides -w/-h)")
	flag.Parse()

	h, err := pathfind.ParseHeuristic(heuristic)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		os.Exit(2)
	}
	if cellPx < 4 {
		fmt.Println("error: -cell must be >= 4")
		os.Exit(2)
	}
	opts := []pathfind.Option{pathfind.WithDiagonal(diagonal), pathfind.WithHeuristic(h)}

	var ed *editor.Editor
	if mapFile != "" {
		m, err := tilemap.Load(mapFile)
		if err != nil {
			log.Fatal(err)
		}
		ed = editor.FromMap(m, opts...)
	} else {
		if width <= 0 || height <= 0 {
			fmt.Println("error: -w and -h must be > 0")
			os.Exit(2)
		}
		ed = editor.New(pathfind.NewGrid(width, height, opts...))
	}

	v := viz.New(ed, cellPx)
	ebiten.SetWindowTitle("Grid Path")
	ebiten.SetWindowSize(v.WindowSize())
	if err := ebiten.RunGame(v); err != nil {
		log.Fatal(err)
	}
}
