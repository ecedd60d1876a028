// Package split composes cells into two-way row and column layouts.
//
// A layout is a tree: every Split holds two cells and a rule for sizing the
// first one, and either cell may itself be a Split. Rendering walks the tree
// depth first, computing each pair of sub-areas and drawing the first cell
// before the second into the same buffer.
//
//	root := split.Rows(
//		tui.NewParagraph("Hello"),
//		split.Columns(tui.NewParagraph("left"), tui.NewParagraph("right"), tui.Percentage(50)),
//		tui.Length(4),
//	)
//	split.Render(root, buf)
package split

import (
	"math"

	"github.com/lixenwraith/cellsplit/terminal"
	"github.com/lixenwraith/cellsplit/terminal/tui"
)

// Cell is a unit of layout that renders itself into an area of a buffer
type Cell = tui.Widget

// Split divides its area in two along Dir and renders First then Second
// Sizing comes from Constraint, or from Offset when Constraint is nil
type Split struct {
	Dir        tui.Direction
	First      Cell
	Second     Cell
	Constraint tui.Constraint
	Offset     float64
}

// Rows stacks top above bottom, c sizes the top row
func Rows(top, bottom Cell, c tui.Constraint) Split {
	return Split{Dir: tui.Vertical, First: top, Second: bottom, Constraint: c}
}

// Columns places left beside right, c sizes the left column
func Columns(left, right Cell, c tui.Constraint) Split {
	return Split{Dir: tui.Horizontal, First: left, Second: right, Constraint: c}
}

// RowsAt stacks top above bottom with the top row taking offset (0.0-1.0) of the height
func RowsAt(top, bottom Cell, offset float64) Split {
	return Split{Dir: tui.Vertical, First: top, Second: bottom, Offset: offset}
}

// ColumnsAt places left beside right with the left column taking offset (0.0-1.0) of the width
func ColumnsAt(left, right Cell, offset float64) Split {
	return Split{Dir: tui.Horizontal, First: left, Second: right, Offset: offset}
}

// OffsetPercent converts a fractional offset to a whole percentage
// Out of range offsets are clamped, NaN counts as 0, fractions of a percent are truncated
func OffsetPercent(offset float64) uint16 {
	if math.IsNaN(offset) || offset <= 0 {
		return 0
	}
	if offset >= 1 {
		return 100
	}
	return uint16(offset * 100)
}

// Areas returns the two sub-areas without rendering
func (s Split) Areas(area tui.Rect) (first, second tui.Rect) {
	if s.Constraint != nil {
		return tui.SplitArea(area, s.Dir, s.Constraint)
	}
	pct := OffsetPercent(s.Offset)
	return tui.SplitAreaPercent(area, s.Dir, pct, 100-pct)
}

// Render implements tui.Widget
func (s Split) Render(area tui.Rect, buf *terminal.Buffer) {
	first, second := s.Areas(area)
	renderCell(s.First, first, buf)
	renderCell(s.Second, second, buf)
}

// String describes the split for logs, e.g. "rows(4)" or "columns(0.50)"
func (s Split) String() string {
	if s.Constraint != nil {
		return s.Dir.String() + "(" + s.Constraint.String() + ")"
	}
	return s.Dir.String() + "(" + formatOffset(s.Offset) + ")"
}

func formatOffset(offset float64) string {
	pct := OffsetPercent(offset)
	digits := [...]byte{'0', '.', '0' + byte(pct/10%10), '0' + byte(pct%10)}
	if pct == 100 {
		return "1.00"
	}
	return string(digits[:])
}

func renderCell(c Cell, area tui.Rect, buf *terminal.Buffer) {
	if c == nil || area.IsEmpty() {
		return
	}
	c.Render(area, buf)
}

// Render draws root over the whole buffer
func Render(root Cell, buf *terminal.Buffer) {
	renderCell(root, tui.NewRect(0, 0, buf.W, buf.H), buf)
}
