package tui

import (
	"strings"

	"github.com/lixenwraith/cellsplit/terminal"
)

// Widget renders itself into an area of a buffer
// Implementations must only write inside area
type Widget interface {
	Render(area Rect, buf *terminal.Buffer)
}

// WidgetFunc adapts a plain function into a Widget
type WidgetFunc func(area Rect, buf *terminal.Buffer)

// Render calls f(area, buf)
func (f WidgetFunc) Render(area Rect, buf *terminal.Buffer) {
	f(area, buf)
}

// Align is horizontal text alignment inside a Paragraph
type Align uint8

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// ParseAlign resolves an alignment name
func ParseAlign(s string) (Align, bool) {
	switch s {
	case "left":
		return AlignLeft, true
	case "center":
		return AlignCenter, true
	case "right":
		return AlignRight, true
	}
	return AlignLeft, false
}

// Paragraph draws lines of text from the top of its area
// Lines longer than the area are clipped unless Wrap is set
type Paragraph struct {
	Text  string
	Style Style
	Align Align
	Wrap  bool
}

// NewParagraph creates a left-aligned, unwrapped paragraph
func NewParagraph(text string) Paragraph {
	return Paragraph{Text: text}
}

// Render implements Widget
func (p Paragraph) Render(area Rect, buf *terminal.Buffer) {
	r := NewRegion(buf, area)
	if r.W == 0 || r.H == 0 {
		return
	}

	y := 0
	for _, raw := range strings.Split(p.Text, "\n") {
		lines := []string{raw}
		if p.Wrap {
			lines = WrapText(raw, r.W)
		}
		for _, line := range lines {
			if y >= r.H {
				return
			}
			switch p.Align {
			case AlignCenter:
				r.TextCenter(y, line, p.Style.Fg, p.Style.Bg, p.Style.Attr)
			case AlignRight:
				r.TextRight(y, line, p.Style.Fg, p.Style.Bg, p.Style.Attr)
			default:
				r.TextStyled(0, y, line, p.Style)
			}
			y++
		}
	}
}

// Block draws a border with an optional title and renders Inner inside it
type Block struct {
	Line       LineType
	Title      string
	BorderFg   terminal.RGB
	Background terminal.RGB
	Inner      Widget
}

// NewBlock creates a bordered block with the given line style
func NewBlock(line LineType) Block {
	return Block{Line: line}
}

// Render implements Widget
func (b Block) Render(area Rect, buf *terminal.Buffer) {
	r := NewRegion(buf, area)
	if !b.Background.IsZero() {
		r.Fill(b.Background)
	}
	inner := r.Card(b.Title, b.Line, b.BorderFg)
	if b.Inner != nil {
		b.Inner.Render(inner.Rect(), buf)
	}
}

// Filler paints every cell of its area with Rune in Style
type Filler struct {
	Rune  rune
	Style Style
}

// Render implements Widget
func (f Filler) Render(area Rect, buf *terminal.Buffer) {
	r := NewRegion(buf, area)
	ch := f.Rune
	if ch == 0 {
		ch = ' '
	}
	for y := 0; y < r.H; y++ {
		for x := 0; x < r.W; x++ {
			r.Cell(x, y, ch, f.Style.Fg, f.Style.Bg, f.Style.Attr)
		}
	}
}
