package tilemap

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Garsondee/gridpath/internal/pathfind"
)

var (
	ErrEmptyMap        = errors.New("tilemap: map has no rows")
	ErrUnknownGlyph    = errors.New("tilemap: unknown glyph")
	ErrDuplicateMarker = errors.New("tilemap: duplicate marker")
)

// glyphs maps ASCII characters to tile kinds. S and G are floor with a marker.
var glyphs = map[rune]TileKind{
	'.': TileFloor,
	' ': TileFloor,
	'#': TileWall,
	'~': TileWater,
	'=': TileWindow,
	'/': TileDoorOpen,
	',': TileRubble,
	'S': TileFloor,
	'G': TileFloor,
}

// Parse reads an ASCII map. Rows shorter than the widest row are padded with
// floor. Lines starting with ';' are comments.
func Parse(r io.Reader) (*Map, error) {
	var rows [][]rune
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.HasPrefix(line, ";") {
			continue
		}
		rows = append(rows, []rune(line))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read map: %w", err)
	}
	for len(rows) > 0 && len(rows[len(rows)-1]) == 0 {
		rows = rows[:len(rows)-1]
	}
	cols := 0
	for _, row := range rows {
		cols = max(cols, len(row))
	}
	if len(rows) == 0 || cols == 0 {
		return nil, ErrEmptyMap
	}

	m := NewMap(cols, len(rows))
	for y, row := range rows {
		for x, ch := range row {
			kind, ok := glyphs[ch]
			if !ok {
				return nil, fmt.Errorf("%w %q at line %d col %d", ErrUnknownGlyph, ch, y+1, x+1)
			}
			m.Set(x, y, kind)
			switch ch {
			case 'S':
				if m.HasStart {
					return nil, fmt.Errorf("%w S at line %d col %d", ErrDuplicateMarker, y+1, x+1)
				}
				m.Start, m.HasStart = pathfind.Cell{X: x, Y: y}, true
			case 'G':
				if m.HasGoal {
					return nil, fmt.Errorf("%w G at line %d col %d", ErrDuplicateMarker, y+1, x+1)
				}
				m.Goal, m.HasGoal = pathfind.Cell{X: x, Y: y}, true
			}
		}
	}
	return m, nil
}

// Load parses the ASCII map stored in filename.
func Load(filename string) (*Map, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("tilemap: open map: %w", err)
	}
	defer f.Close()
	m, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return m, nil
}

// Format renders g as ASCII: '#' blocked, '.' open, '*' path, 'S'/'G' markers.
func Format(g *pathfind.Grid, path []pathfind.Cell, start, goal pathfind.Cell) string {
	onPath := make(map[pathfind.Cell]bool, len(path))
	for _, c := range path {
		onPath[c] = true
	}
	var sb strings.Builder
	sb.Grow((g.Width() + 1) * g.Height())
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			c := pathfind.Cell{X: x, Y: y}
			switch {
			case c == start:
				sb.WriteByte('S')
			case c == goal:
				sb.WriteByte('G')
			case !g.Walkable(c):
				sb.WriteByte('#')
			case onPath[c]:
				sb.WriteByte('*')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
