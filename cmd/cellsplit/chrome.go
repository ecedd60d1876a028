package main

import (
	"fmt"

	"github.com/lixenwraith/cellsplit/split"
	"github.com/lixenwraith/cellsplit/terminal"
	"github.com/lixenwraith/cellsplit/terminal/tui"
)

// Minimum size before the layout is replaced by a notice
const (
	minWidth  = 24
	minHeight = 6
)

var (
	statusBg  = terminal.MustParseHex("#283246")
	statusFg  = terminal.MustParseHex("#c8c8c8")
	accentFg  = terminal.MustParseHex("#64c8dc")
	sepFg     = terminal.MustParseHex("#505064")
	warnColor = terminal.MustParseHex("#ffb464")
)

// withChrome puts root above a one-line status bar
// Areas below minWidth x minHeight show a centered notice instead
func withChrome(root split.Cell, name string) split.Cell {
	return split.Func(func(area tui.Rect, buf *terminal.Buffer) {
		if tui.BreakpointH(area.W, minWidth) > 0 || tui.BreakpointV(area.H, minHeight) > 0 {
			tooSmall(area.W, area.H).Render(area, buf)
			return
		}
		split.Rows(root, statusBar(name, area.W, area.H), tui.Length(area.H-1)).Render(area, buf)
	})
}

func statusBar(name string, w, h int) split.Cell {
	return tui.StatusBar{
		Sections: []tui.BarSection{
			{Label: "cellsplit", LabelStyle: tui.Style{Fg: accentFg}.Bold(), Priority: 3},
			{Value: name, ValueStyle: tui.Style{Fg: statusFg}, Priority: 1},
			{Value: fmt.Sprintf("%dx%d", w, h), ValueStyle: tui.Style{Fg: statusFg}, Priority: 2},
			{Label: "q ", Value: "quit", LabelStyle: tui.Style{Fg: accentFg}, ValueStyle: tui.Style{Fg: statusFg}},
		},
		SepStyle: tui.Style{Fg: sepFg},
		Bg:       statusBg,
		Padding:  1,
	}
}

func tooSmall(w, h int) split.Cell {
	return split.Wrap(func(r tui.Region) {
		msg := fmt.Sprintf("%dx%d < %dx%d", w, h, minWidth, minHeight)
		box := tui.Center(r.Rect(), tui.DisplayWidth(msg), 1)
		r.Sub(box.X-r.X, box.Y-r.Y, box.W, box.H).Text(0, 0, msg, warnColor, terminal.RGB{}, terminal.AttrBold)
	})
}
