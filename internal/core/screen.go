package core

import (
	"math"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Cell is a single character cell with its colours.
// Rune 0 marks the trailing half of a double-width character.
type Cell struct {
	Rune rune
	FG   Color
	BG   Color
}

// Screen is a 2D character buffer implementing Renderer.
// Drawing happens in logical field units; the screen scales them onto its
// cell grid, so games keep the same geometry at any terminal size.
type Screen struct {
	width     int
	height    int
	fieldW    float64
	fieldH    float64
	cells     [][]Cell
	presented int
}

var _ Renderer = (*Screen)(nil)

// NewScreen creates a screen of width x height cells showing a logical
// field of fieldW x fieldH units.
func NewScreen(width, height int, fieldW, fieldH float64) *Screen {
	s := &Screen{
		width:  max(width, 1),
		height: max(height, 1),
		fieldW: fieldW,
		fieldH: fieldH,
	}
	s.allocate()
	s.Clear(ColorBlack)
	return s
}

// allocate creates the underlying cell storage.
func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Presented returns how many frames have been presented.
func (s *Screen) Presented() int {
	return s.presented
}

// Resize changes the cell dimensions. The logical field is unchanged, so
// the next frame simply renders at the new scale.
func (s *Screen) Resize(width, height int) {
	width, height = max(width, 1), max(height, 1)
	if width == s.width && height == s.height {
		return
	}
	s.width = width
	s.height = height
	s.allocate()
	s.Clear(ColorBlack)
}

func (s *Screen) cellW() float64 {
	return s.fieldW / float64(s.width)
}

func (s *Screen) cellH() float64 {
	return s.fieldH / float64(s.height)
}

// ToCell maps a logical point to the cell containing it.
func (s *Screen) ToCell(p Point) (int, int) {
	return int(math.Floor(p.X / s.cellW())), int(math.Floor(p.Y / s.cellH()))
}

// ToLogical maps a cell to the logical point at its centre.
func (s *Screen) ToLogical(x, y int) Point {
	return Point{
		X: (float64(x) + 0.5) * s.cellW(),
		Y: (float64(y) + 0.5) * s.cellH(),
	}
}

// Clear fills the entire screen with spaces on bg.
func (s *Screen) Clear(bg Color) {
	fg := ForegroundFor(bg)
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = Cell{Rune: ' ', FG: fg, BG: bg}
		}
	}
}

// Set places a rune at the given cell, keeping the cell background.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, r rune, fg Color) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x].Rune = r
	s.cells[y][x].FG = fg
}

// Get returns the rune at the given cell.
// Returns space for out-of-bounds coordinates.
func (s *Screen) Get(x, y int) rune {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return ' '
	}
	return s.cells[y][x].Rune
}

// GetCell returns the full cell at the given position.
func (s *Screen) GetCell(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return Cell{Rune: ' '}
	}
	return s.cells[y][x]
}

// DrawText writes text on a single row and returns its logical region.
// Characters that extend beyond screen bounds are clipped.
func (s *Screen) DrawText(text string, at Point, anchor Anchor, fg Color) Rect {
	w := runewidth.StringWidth(text)
	col, row := s.ToCell(at)
	switch anchor {
	case AnchorCenter:
		col -= w / 2
	case AnchorTopRight:
		col -= w
	}

	x := col
	for _, r := range text {
		rw := runewidth.RuneWidth(r)
		if rw == 0 {
			continue
		}
		s.Set(x, row, r, fg)
		for i := 1; i < rw; i++ {
			s.Set(x+i, row, 0, fg)
		}
		x += rw
	}

	cw, ch := s.cellW(), s.cellH()
	return NewRect(float64(col)*cw, float64(row)*ch, float64(w)*cw, ch)
}

// CellReach returns half a cell's diagonal in logical units: no point is
// farther than this from the centre of the cell holding it. A circle with
// at least this radius always covers the centre of its own cell.
func (s *Screen) CellReach() float64 {
	return math.Hypot(s.cellW(), s.cellH()) / 2
}

// DrawFilledCircle fills every cell whose centre lies within the circle,
// so every filled cell maps back to a point inside it. Circles smaller
// than CellReach may fill nothing.
func (s *Screen) DrawFilledCircle(center Point, radius float64, c Color) {
	minX, minY := s.ToCell(Point{X: center.X - radius, Y: center.Y - radius})
	maxX, maxY := s.ToCell(Point{X: center.X + radius, Y: center.Y + radius})
	r2 := radius * radius

	for y := max(minY, 0); y <= min(maxY, s.height-1); y++ {
		for x := max(minX, 0); x <= min(maxX, s.width-1); x++ {
			if s.ToLogical(x, y).DistSq(center) <= r2 {
				s.fillCell(x, y, c)
			}
		}
	}
}

func (s *Screen) fillCell(x, y int, c Color) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = Cell{Rune: ' ', FG: c, BG: c}
}

// Present counts the frame; the platform reads the buffer afterwards.
func (s *Screen) Present() {
	s.presented++
}

// String converts the screen buffer to plain text, rows joined by newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		sb.WriteString(s.Row(y))
	}
	return sb.String()
}

// Row returns the specified row as a string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, c := range s.cells[y] {
		if c.Rune == 0 {
			continue
		}
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}
