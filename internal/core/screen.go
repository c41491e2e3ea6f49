package core

import (
	"strings"
	"unicode/utf8"
)

// Cell is one character of the screen buffer with its foreground color.
type Cell struct {
	Rune  rune
	Color Color
}

var blankCell = Cell{Rune: ' ', Color: ColorDefault}

// Screen is a character buffer games draw into. Row 0 is the top line.
// The host turns it into terminal output, so games never touch the terminal.
type Screen struct {
	width  int
	height int
	cells  []Cell // Row-major, width*height
}

// NewScreen creates a blank screen buffer. Negative sizes count as zero.
func NewScreen(width, height int) *Screen {
	s := &Screen{}
	s.Resize(width, height)
	return s
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Resize changes the screen dimensions. Content in the overlapping top-left
// area is kept; new cells are blank.
func (s *Screen) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	if width == s.width && height == s.height && s.cells != nil {
		return
	}

	cells := make([]Cell, width*height)
	for i := range cells {
		cells[i] = blankCell
	}
	copyW, copyH := Min(s.width, width), Min(s.height, height)
	for y := 0; y < copyH; y++ {
		copy(cells[y*width:y*width+copyW], s.cells[y*s.width:y*s.width+copyW])
	}

	s.width, s.height, s.cells = width, height, cells
}

// Clear fills the entire screen with uncolored spaces.
func (s *Screen) Clear() {
	for i := range s.cells {
		s.cells[i] = blankCell
	}
}

func (s *Screen) inBounds(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

// Set places a rune at the given position with the default color.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, r rune) {
	s.SetColored(x, y, r, ColorDefault)
}

// SetColored places a rune with a color. Out-of-bounds coordinates are ignored.
func (s *Screen) SetColored(x, y int, r rune, c Color) {
	if !s.inBounds(x, y) {
		return
	}
	s.cells[y*s.width+x] = Cell{Rune: r, Color: c}
}

// Get returns the rune at the given position, space when out of bounds.
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// GetCell returns the cell at the given position, blank when out of bounds.
func (s *Screen) GetCell(x, y int) Cell {
	if !s.inBounds(x, y) {
		return blankCell
	}
	return s.cells[y*s.width+x]
}

// DrawText writes a string horizontally starting at (x, y).
// Characters that extend beyond screen bounds are clipped.
func (s *Screen) DrawText(x, y int, text string) {
	s.DrawTextColored(x, y, text, ColorDefault)
}

// DrawTextColored writes a colored string starting at (x, y).
func (s *Screen) DrawTextColored(x, y int, text string, c Color) {
	i := 0
	for _, r := range text {
		s.SetColored(x+i, y, r, c)
		i++
	}
}

// DrawTextCentered draws text centered horizontally at the given y position.
func (s *Screen) DrawTextCentered(y int, text string) {
	s.DrawText((s.width-utf8.RuneCountInString(text))/2, y, text)
}

// DrawTextRight draws text so it ends margin columns before the right edge.
func (s *Screen) DrawTextRight(y, margin int, text string) {
	s.DrawText(s.width-margin-utf8.RuneCountInString(text), y, text)
}

// DrawRect fills a rectangular area with the given rune.
func (s *Screen) DrawRect(r Rect, fill rune) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			s.Set(x, y, fill)
		}
	}
}

// DrawBox draws a box outline using box-drawing characters.
func (s *Screen) DrawBox(r Rect) {
	right, bottom := r.Right()-1, r.Bottom()-1
	s.Set(r.X, r.Y, '┌')
	s.Set(right, r.Y, '┐')
	s.Set(r.X, bottom, '└')
	s.Set(right, bottom, '┘')

	for x := r.X + 1; x < right; x++ {
		s.Set(x, r.Y, '─')
		s.Set(x, bottom, '─')
	}
	for y := r.Y + 1; y < bottom; y++ {
		s.Set(r.X, y, '│')
		s.Set(right, y, '│')
	}
}

// DrawHLine draws a horizontal line from (x, y) with the given length.
func (s *Screen) DrawHLine(x, y, length int, r rune) {
	for i := 0; i < length; i++ {
		s.Set(x+i, y, r)
	}
}

// String converts the screen buffer to plain text, one line per row.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)
	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		s.writeRow(&sb, y)
	}
	return sb.String()
}

// Row returns the specified row as plain text. Rows off the screen are blank.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	s.writeRow(&sb, y)
	return sb.String()
}

func (s *Screen) writeRow(sb *strings.Builder, y int) {
	for _, c := range s.cells[y*s.width : (y+1)*s.width] {
		sb.WriteRune(c.Rune)
	}
}
