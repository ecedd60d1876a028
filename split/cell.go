package split

import (
	"github.com/lixenwraith/cellsplit/terminal"
	"github.com/lixenwraith/cellsplit/terminal/tui"
)

// Empty renders nothing, used to leave a slot blank
var Empty Cell = emptyCell{}

type emptyCell struct{}

func (emptyCell) Render(tui.Rect, *terminal.Buffer) {}

// Wrap adapts a region drawing function into a cell
// fn receives a region clipped to the cell's area
func Wrap(fn func(r tui.Region)) Cell {
	if fn == nil {
		return Empty
	}
	return tui.WidgetFunc(func(area tui.Rect, buf *terminal.Buffer) {
		fn(tui.NewRegion(buf, area))
	})
}

// Func adapts a plain render function into a cell
func Func(fn func(area tui.Rect, buf *terminal.Buffer)) Cell {
	if fn == nil {
		return Empty
	}
	return tui.WidgetFunc(fn)
}
