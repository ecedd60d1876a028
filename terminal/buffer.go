package terminal

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Buffer is a row-major grid of cells that rendering writes into
// Cells are addressed cells[y*W + x]; out of range access is ignored
type Buffer struct {
	W, H  int
	Cells []Cell
}

// NewBuffer allocates a blank buffer of the given size
func NewBuffer(w, h int) *Buffer {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	b := &Buffer{W: w, H: h, Cells: make([]Cell, w*h)}
	b.Reset()
	return b
}

// NewBufferFromLines builds a buffer from plain text rows, mostly for tests
// Width is the widest row measured in runes, short rows are padded with blanks
func NewBufferFromLines(lines ...string) *Buffer {
	w := 0
	for _, l := range lines {
		if n := len([]rune(l)); n > w {
			w = n
		}
	}
	b := NewBuffer(w, len(lines))
	for y, l := range lines {
		x := 0
		for _, ch := range l {
			b.Set(x, y, Cell{Rune: ch})
			x++
		}
	}
	return b
}

// Size returns buffer dimensions
func (b *Buffer) Size() (width, height int) {
	return b.W, b.H
}

// Reset fills the whole buffer with blank cells
func (b *Buffer) Reset() {
	empty := EmptyCell()
	for i := range b.Cells {
		b.Cells[i] = empty
	}
}

// Resize reallocates the buffer when dimensions change, content is cleared
func (b *Buffer) Resize(w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	size := w * h
	if cap(b.Cells) < size {
		b.Cells = make([]Cell, size)
	} else {
		b.Cells = b.Cells[:size]
	}
	b.W = w
	b.H = h
	b.Reset()
}

// InBounds reports whether (x, y) addresses a cell
func (b *Buffer) InBounds(x, y int) bool {
	return x >= 0 && x < b.W && y >= 0 && y < b.H
}

// Get returns the cell at (x, y), blank for out of range positions
func (b *Buffer) Get(x, y int) Cell {
	if !b.InBounds(x, y) {
		return EmptyCell()
	}
	return b.Cells[y*b.W+x]
}

// Set writes a cell at (x, y), silently ignoring out of range positions
// Overwriting either half of a wide rune blanks the other half
func (b *Buffer) Set(x, y int, c Cell) {
	if !b.InBounds(x, y) {
		return
	}
	row := b.Row(y)
	old := row[x]
	if old.IsContinuation() {
		if !c.IsContinuation() {
			if lead := leadOf(row, x); lead >= 0 {
				row[lead].Rune = ' '
			}
		}
	} else {
		for tx := x + 1; tx < b.W && row[tx].IsContinuation(); tx++ {
			row[tx].Rune = ' '
		}
	}
	row[x] = c
}

// Visible returns the cell to draw at (x, y)
// ok is false for a continuation covered by the wide rune to its left,
// a continuation with no such lead comes back as a space
func (b *Buffer) Visible(x, y int) (c Cell, ok bool) {
	c = b.Get(x, y)
	if !c.IsContinuation() {
		return c, true
	}
	if leadOf(b.Row(y), x) >= 0 {
		return c, false
	}
	c.Rune = ' '
	return c, true
}

// leadOf returns the index of the wide rune covering continuation row[x], -1 if none
func leadOf(row []Cell, x int) int {
	for lx := x - 1; lx >= 0; lx-- {
		if row[lx].IsContinuation() {
			continue
		}
		if runewidth.RuneWidth(row[lx].Rune) > x-lx {
			return lx
		}
		return -1
	}
	return -1
}

// Row returns the backing slice for row y, nil when out of range
func (b *Buffer) Row(y int) []Cell {
	if y < 0 || y >= b.H {
		return nil
	}
	return b.Cells[y*b.W : (y+1)*b.W]
}

// Lines returns the rune content of each row
// Continuation halves of wide runes are skipped, so each line reads as displayed
func (b *Buffer) Lines() []string {
	lines := make([]string, b.H)
	var sb strings.Builder
	for y := 0; y < b.H; y++ {
		sb.Reset()
		for x := 0; x < b.W; x++ {
			c, ok := b.Visible(x, y)
			if !ok {
				continue
			}
			sb.WriteRune(c.Rune)
		}
		lines[y] = sb.String()
	}
	return lines
}

// String joins Lines with newlines
func (b *Buffer) String() string {
	return strings.Join(b.Lines(), "\n")
}

// Equal compares dimensions and every cell
func (b *Buffer) Equal(other *Buffer) bool {
	if other == nil || b.W != other.W || b.H != other.H {
		return false
	}
	for i := range b.Cells {
		if b.Cells[i] != other.Cells[i] {
			return false
		}
	}
	return true
}

// Count returns how many cells hold the given rune
func (b *Buffer) Count(ch rune) int {
	n := 0
	for _, c := range b.Cells {
		if c.Rune == ch {
			n++
		}
	}
	return n
}
