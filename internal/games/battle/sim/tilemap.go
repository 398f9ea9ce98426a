package sim

import (
	"bufio"
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/vovakirdan/tank-arcade/internal/core"
)

// Play-field geometry in pixels.
const (
	TileSize  = 16
	GridSize  = 26
	FieldSize = TileSize * GridSize
)

// TileKind is the terrain type of one grid cell.
type TileKind int

const (
	TileEmpty TileKind = iota
	TileBrick
	TileSteel
	TileWater
	TileGrass
	TileIce
)

// String returns the tile name.
func (k TileKind) String() string {
	switch k {
	case TileBrick:
		return "brick"
	case TileSteel:
		return "steel"
	case TileWater:
		return "water"
	case TileGrass:
		return "grass"
	case TileIce:
		return "ice"
	default:
		return "empty"
	}
}

// Blocks reports whether the kind contributes obstacle geometry.
func (k TileKind) Blocks() bool {
	return k == TileBrick || k == TileSteel || k == TileWater
}

// tileChars maps level file characters to tile kinds. Everything else is empty.
var tileChars = map[rune]TileKind{
	'#': TileBrick,
	'@': TileSteel,
	'~': TileWater,
	'%': TileGrass,
	'-': TileIce,
}

// Char returns the level file character for the kind.
func (k TileKind) Char() rune {
	for r, kind := range tileChars {
		if kind == k {
			return r
		}
	}
	return '.'
}

// Cell is a grid coordinate.
type Cell struct {
	Col, Row int
}

// CellAt returns the cell whose top-left corner is the pixel position p.
func CellAt(p core.Point) (Cell, bool) {
	if p.X%TileSize != 0 || p.Y%TileSize != 0 {
		return Cell{}, false
	}
	return Cell{Col: p.X / TileSize, Row: p.Y / TileSize}, true
}

// Rect returns the pixel rectangle of the cell.
func (c Cell) Rect() core.Rect {
	return core.NewRect(c.Col*TileSize, c.Row*TileSize, TileSize, TileSize)
}

// Tile is one occupied cell.
type Tile struct {
	Cell
	Kind TileKind
}

// FortressCells surround the castle; the shovel bonus rebuilds them.
var FortressCells = [8]Cell{
	{11, 23}, {11, 24}, {11, 25},
	{14, 23}, {14, 24}, {14, 25},
	{12, 23}, {13, 23},
}

// TileMap holds the destructible terrain. Cells without an entry are empty.
type TileMap struct {
	tiles     map[Cell]TileKind
	objective core.Rect
	hasObj    bool
	obstacles []core.Rect
	dirty     bool
}

// NewTileMap returns an empty map.
func NewTileMap() *TileMap {
	return &TileMap{tiles: make(map[Cell]TileKind), dirty: true}
}

// ParseLevel reads a level grid: one line per row, one character per
// column. A file with more than GridSize rows or columns, or with no rows at
// all, is rejected with ErrMalformedLevel.
func ParseLevel(data []byte) (*TileMap, error) {
	m := NewTileMap()
	scanner := bufio.NewScanner(bytes.NewReader(data))
	row := 0
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if row >= GridSize {
			if strings.TrimSpace(line) == "" {
				continue
			}
			return nil, fmt.Errorf("%w: more than %d rows", ErrMalformedLevel, GridSize)
		}
		col := 0
		for _, ch := range line {
			if col >= GridSize {
				return nil, fmt.Errorf("%w: row %d wider than %d", ErrMalformedLevel, row+1, GridSize)
			}
			if kind, ok := tileChars[ch]; ok {
				m.tiles[Cell{col, row}] = kind
			}
			col++
		}
		row++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedLevel, err)
	}
	if row == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrMalformedLevel)
	}
	return m, nil
}

// Kind returns the terrain at a cell.
func (m *TileMap) Kind(c Cell) TileKind {
	return m.tiles[c]
}

// Set places a tile; TileEmpty removes the entry.
func (m *TileMap) Set(c Cell, kind TileKind) {
	if kind == TileEmpty {
		delete(m.tiles, c)
	} else {
		m.tiles[c] = kind
	}
	m.dirty = true
}

// Len returns the number of occupied cells.
func (m *TileMap) Len() int {
	return len(m.tiles)
}

// Tiles returns every occupied cell in row-major order.
func (m *TileMap) Tiles() []Tile {
	out := make([]Tile, 0, len(m.tiles))
	for c, k := range m.tiles {
		out = append(out, Tile{Cell: c, Kind: k})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Col < out[j].Col
	})
	return out
}

// SetObjective injects the castle rectangle into the obstacle list.
func (m *TileMap) SetObjective(r core.Rect) {
	m.objective = r
	m.hasObj = true
	m.dirty = true
}

// Obstacles returns the rectangles that block tanks and bullets: the
// objective first, then Brick, Steel and Water cells in row-major order.
// The slice is shared and must not be modified.
func (m *TileMap) Obstacles() []core.Rect {
	if !m.dirty {
		return m.obstacles
	}
	m.obstacles = make([]core.Rect, 0, len(m.tiles)+1)
	if m.hasObj {
		m.obstacles = append(m.obstacles, m.objective)
	}
	for _, t := range m.Tiles() {
		if t.Kind.Blocks() {
			m.obstacles = append(m.obstacles, t.Rect())
		}
	}
	m.dirty = false
	return m.obstacles
}

// HitTile resolves a bullet of the given power striking the obstacle whose
// top-left corner is pos. Brick is removed and stops the bullet. Steel
// always stops it and is removed only when power >= 2. Anything else
// (water, the objective) does not stop it. The tile kind found is returned
// for sound effects.
func (m *TileMap) HitTile(pos core.Point, power int) (stopped bool, kind TileKind) {
	c, ok := CellAt(pos)
	if !ok {
		return false, TileEmpty
	}
	kind = m.tiles[c]
	switch kind {
	case TileBrick:
		m.Set(c, TileEmpty)
		return true, kind
	case TileSteel:
		if power >= 2 {
			m.Set(c, TileEmpty)
		}
		return true, kind
	default:
		return false, kind
	}
}

// BuildFortress overwrites the eight cells around the castle with kind.
func (m *TileMap) BuildFortress(kind TileKind) {
	for _, c := range FortressCells {
		m.Set(c, TileEmpty)
	}
	for _, c := range FortressCells {
		m.Set(c, kind)
	}
}

// String renders the map back into level file form, '.' for empty cells.
func (m *TileMap) String() string {
	var sb strings.Builder
	for row := 0; row < GridSize; row++ {
		for col := 0; col < GridSize; col++ {
			if k, ok := m.tiles[Cell{col, row}]; ok {
				sb.WriteRune(k.Char())
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
