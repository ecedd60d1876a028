package tui

import (
	"github.com/lixenwraith/cellsplit/terminal"
)

// LineType specifies box drawing character style
type LineType uint8

const (
	LineSingle  LineType = iota // ┌─┐│└┘
	LineDouble                  // ╔═╗║╚╝
	LineRounded                 // ╭─╮│╰╯
	LineHeavy                   // ┏━┓┃┗┛
	LineNone                    // spaces (invisible border with padding)
)

// lineNames are the spellings accepted by ParseLineType
var lineNames = [...]string{
	LineSingle:  "single",
	LineDouble:  "double",
	LineRounded: "rounded",
	LineHeavy:   "heavy",
	LineNone:    "none",
}

// boxChars contains box drawing character sets indexed by LineType
var boxChars = [...][6]rune{
	LineSingle:  {'┌', '─', '┐', '│', '└', '┘'},
	LineDouble:  {'╔', '═', '╗', '║', '╚', '╝'},
	LineRounded: {'╭', '─', '╮', '│', '╰', '╯'},
	LineHeavy:   {'┏', '━', '┓', '┃', '┗', '┛'},
	LineNone:    {' ', ' ', ' ', ' ', ' ', ' '},
}

const (
	boxTL = 0 // top-left
	boxH  = 1 // horizontal
	boxTR = 2 // top-right
	boxV  = 3 // vertical
	boxBL = 4 // bottom-left
	boxBR = 5 // bottom-right
)

func (l LineType) String() string {
	if int(l) < len(lineNames) {
		return lineNames[l]
	}
	return "single"
}

// ParseLineType resolves a line style name
func ParseLineType(s string) (LineType, bool) {
	for i, name := range lineNames {
		if name == s {
			return LineType(i), true
		}
	}
	return LineSingle, false
}

// Box draws border around region edge, keeping the background underneath
func (r Region) Box(line LineType, fg terminal.RGB) {
	if r.W < 2 || r.H < 2 {
		return
	}
	if line >= LineType(len(boxChars)) {
		line = LineSingle
	}

	chars := boxChars[line]

	// Corners
	r.Rune(0, 0, chars[boxTL], fg, terminal.AttrNone)
	r.Rune(r.W-1, 0, chars[boxTR], fg, terminal.AttrNone)
	r.Rune(0, r.H-1, chars[boxBL], fg, terminal.AttrNone)
	r.Rune(r.W-1, r.H-1, chars[boxBR], fg, terminal.AttrNone)

	// Horizontal edges
	for x := 1; x < r.W-1; x++ {
		r.Rune(x, 0, chars[boxH], fg, terminal.AttrNone)
		r.Rune(x, r.H-1, chars[boxH], fg, terminal.AttrNone)
	}

	// Vertical edges
	for y := 1; y < r.H-1; y++ {
		r.Rune(0, y, chars[boxV], fg, terminal.AttrNone)
		r.Rune(r.W-1, y, chars[boxV], fg, terminal.AttrNone)
	}
}

// HLine draws horizontal line across region width at row y
func (r Region) HLine(y int, line LineType, fg terminal.RGB) {
	if y < 0 || y >= r.H {
		return
	}
	if line >= LineType(len(boxChars)) {
		line = LineSingle
	}
	ch := boxChars[line][boxH]
	for x := 0; x < r.W; x++ {
		r.Rune(x, y, ch, fg, terminal.AttrNone)
	}
}

// VLine draws vertical line across region height at column x
func (r Region) VLine(x int, line LineType, fg terminal.RGB) {
	if x < 0 || x >= r.W {
		return
	}
	if line >= LineType(len(boxChars)) {
		line = LineSingle
	}
	ch := boxChars[line][boxV]
	for y := 0; y < r.H; y++ {
		r.Rune(x, y, ch, fg, terminal.AttrNone)
	}
}

// Card draws titled border and returns inner content region
func (r Region) Card(title string, line LineType, fg terminal.RGB) Region {
	r.Box(line, fg)

	if title != "" && r.W > 4 {
		displayTitle := Truncate(title, r.W-4)
		titleX := (r.W - DisplayWidth(displayTitle) - 2) / 2
		r.Text(titleX, 0, " "+displayTitle+" ", fg, terminal.RGB{}, terminal.AttrBold)
	}

	return r.Inset(1)
}
