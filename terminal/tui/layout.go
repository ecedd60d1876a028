package tui

import "strconv"

// Direction selects the axis a split divides
type Direction uint8

const (
	Vertical   Direction = iota // stacked rows, divides height
	Horizontal                  // side-by-side columns, divides width
)

func (d Direction) String() string {
	if d == Horizontal {
		return "columns"
	}
	return "rows"
}

// Constraint sizes the first region of a split from the extent available on the split axis
// Results outside [0, extent] are clamped by the splitter
type Constraint interface {
	Apply(extent int) int
	String() string
}

// Length is a fixed size in cells
type Length int

func (l Length) Apply(extent int) int {
	return clampExtent(int(l), extent)
}

func (l Length) String() string {
	return strconv.Itoa(int(l))
}

// Percentage of the extent, rounded half up, values above 100 act as 100
type Percentage uint16

func (p Percentage) Apply(extent int) int {
	if extent <= 0 {
		return 0
	}
	pct := int64(min(p, 100))
	return clampExtent(int((int64(extent)*pct+50)/100), extent)
}

func (p Percentage) String() string {
	return strconv.Itoa(int(p)) + "%"
}

// Ratio of the extent, Num/Den rounded half up
// A zero denominator yields the whole extent for a positive numerator
type Ratio struct {
	Num, Den uint32
}

func (r Ratio) Apply(extent int) int {
	if extent <= 0 || r.Num == 0 {
		return 0
	}
	if r.Den == 0 {
		return extent
	}
	num := int64(extent) * int64(r.Num)
	den := int64(r.Den)
	return clampExtent(int((2*num+den)/(2*den)), extent)
}

func (r Ratio) String() string {
	return strconv.FormatUint(uint64(r.Num), 10) + "/" + strconv.FormatUint(uint64(r.Den), 10)
}

// Fill leaves the first region empty so the second, always fill-remaining, takes everything
type Fill uint16

func (Fill) Apply(int) int {
	return 0
}

func (Fill) String() string {
	return "fill"
}

func clampExtent(n, extent int) int {
	if extent < 0 {
		extent = 0
	}
	if n < 0 {
		return 0
	}
	if n > extent {
		return extent
	}
	return n
}

// SplitArea divides area along dir, the first region sized by the constraint
// The second region takes the remaining extent, both keep the perpendicular extent
func SplitArea(area Rect, dir Direction, first Constraint) (Rect, Rect) {
	if dir == Horizontal {
		return SplitHFixed(area, first.Apply(max(area.W, 0)))
	}
	return SplitVFixed(area, first.Apply(max(area.H, 0)))
}

// SplitAreaPercent divides area with an explicit percentage for each region
// Each size is rounded on its own, the second is clamped so it never leaves area
// Percentages that sum below 100 leave uncovered cells after the second region
func SplitAreaPercent(area Rect, dir Direction, firstPct, secondPct uint16) (Rect, Rect) {
	extent := area.H
	if dir == Horizontal {
		extent = area.W
	}
	extent = max(extent, 0)

	firstSize := Percentage(firstPct).Apply(extent)
	secondSize := min(Percentage(secondPct).Apply(extent), extent-firstSize)

	first, rest := SplitArea(area, dir, Length(firstSize))
	second, _ := SplitArea(rest, dir, Length(secondSize))
	return first, second
}

// SplitHFixed splits with fixed left width, rest to right
func SplitHFixed(r Rect, leftW int) (left, right Rect) {
	w := max(r.W, 0)
	leftW = clampExtent(leftW, w)
	left = Rect{X: r.X, Y: r.Y, W: leftW, H: max(r.H, 0)}
	right = Rect{X: r.X + leftW, Y: r.Y, W: w - leftW, H: max(r.H, 0)}
	return
}

// SplitVFixed splits with fixed top height, rest to bottom
func SplitVFixed(r Rect, topH int) (top, bottom Rect) {
	h := max(r.H, 0)
	topH = clampExtent(topH, h)
	top = Rect{X: r.X, Y: r.Y, W: max(r.W, 0), H: topH}
	bottom = Rect{X: r.X, Y: r.Y + topH, W: max(r.W, 0), H: h - topH}
	return
}

// Center returns a centered rect of given size within outer, clipped to outer
func Center(outer Rect, w, h int) Rect {
	w = clampExtent(w, outer.W)
	h = clampExtent(h, outer.H)
	return Rect{
		X: outer.X + (outer.W-w)/2,
		Y: outer.Y + (outer.H-h)/2,
		W: w,
		H: h,
	}
}

// BreakpointH returns index of first breakpoint <= w
// Breakpoints should be in descending order
// Returns len(breakpoints) if w is less than all breakpoints
func BreakpointH(w int, breakpoints ...int) int {
	for i, bp := range breakpoints {
		if w >= bp {
			return i
		}
	}
	return len(breakpoints)
}

// BreakpointV returns index of first breakpoint <= h
func BreakpointV(h int, breakpoints ...int) int {
	return BreakpointH(h, breakpoints...)
}
