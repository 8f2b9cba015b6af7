package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/Garsondee/gridpath/internal/editor"
	"github.com/Garsondee/gridpath/internal/pathfind"
	"github.com/Garsondee/gridpath/internal/term"
	"github.com/Garsondee/gridpath/internal/tilemap"
)

func main() {
	var width, height int
	var diagonal, mute bool
	var heuristic, mapFile string

	flag.IntVar(&width, "w", 40, "grid width in cells")
	flag.IntVar(&height, "h", 16, "grid height in cells")
	flag.BoolVar(&diagonal, "diagonal", false, "allow 8-directional movement")
	flag.StringVar(&heuristic, "heuristic", "manhattan", "manhattan, euclidean or octile")
	flag.StringVar(&mapFile, "map", "", "ASCII map file (overrides -w/-h)")
	flag.BoolVar(&mute, "mute", false, "no tone when a path is found")
	flag.Parse()

	h, err := pathfind.ParseHeuristic(heuristic)
	if err != nil {
		fmt.Printf("error: %v\n", err)
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

	// Audio is optional; a nil Chime is silent.
	var chime *term.Chime
	if !mute {
		if chime, err = term.NewChime(660, 90*time.Millisecond); err != nil {
			log.Printf("audio init failed: %v", err)
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}

	app := term.New(screen, ed)
	app.SetOnFound(chime.Play)

	err = app.Run(context.Background())
	screen.Fini()
	if err != nil {
		log.Fatal(err)
	}
}
