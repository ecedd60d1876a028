package tui

import "github.com/lixenwraith/cellsplit/terminal"

// BarSection represents one segment of a status bar
type BarSection struct {
	Label      string
	Value      string
	LabelStyle Style
	ValueStyle Style
	Priority   int // Higher = survives truncation
}

func (s BarSection) width() int {
	return DisplayWidth(s.Label) + DisplayWidth(s.Value)
}

// StatusBar renders sections on the first row of its area
// Lowest priority sections are dropped until the rest fit
type StatusBar struct {
	Sections  []BarSection
	Separator string // default " │ "
	SepStyle  Style
	Bg        terminal.RGB
	Align     Align
	Padding   int // Left/right padding
}

// Render implements Widget
func (b StatusBar) Render(area Rect, buf *terminal.Buffer) {
	r := NewRegion(buf, area)
	if r.W == 0 || r.H == 0 {
		return
	}

	sep := b.Separator
	if sep == "" {
		sep = " │ "
	}
	pad := max(b.Padding, 0)

	for x := 0; x < r.W; x++ {
		r.Cell(x, 0, ' ', terminal.RGB{}, b.Bg, terminal.AttrNone)
	}

	inner := r.Sub(pad, 0, r.W-2*pad, 1)
	sepW := DisplayWidth(sep)
	sections := fitSections(b.Sections, sepW, inner.W)
	if len(sections) == 0 {
		return
	}
	total := barWidth(sections, sepW)

	x := 0
	switch b.Align {
	case AlignRight:
		x = max(inner.W-total, 0)
	case AlignCenter:
		x = max((inner.W-total)/2, 0)
	}

	for i, s := range sections {
		x += inner.Text(x, 0, s.Label, s.LabelStyle.Fg, b.Bg, s.LabelStyle.Attr)
		x += inner.Text(x, 0, s.Value, s.ValueStyle.Fg, b.Bg, s.ValueStyle.Attr)
		if i < len(sections)-1 {
			x += inner.Text(x, 0, sep, b.SepStyle.Fg, b.Bg, b.SepStyle.Attr)
		}
	}
}

func barWidth(sections []BarSection, sepW int) int {
	total := 0
	for i, s := range sections {
		total += s.width()
		if i < len(sections)-1 {
			total += sepW
		}
	}
	return total
}

// fitSections removes the lowest priority section until the bar fits avail
// The first of equal-priority sections goes first, a single section is always kept
func fitSections(sections []BarSection, sepW, avail int) []BarSection {
	secs := make([]BarSection, len(sections))
	copy(secs, sections)

	for len(secs) > 1 && barWidth(secs, sepW) > avail {
		minIdx := 0
		for i, s := range secs {
			if s.Priority < secs[minIdx].Priority {
				minIdx = i
			}
		}
		secs = append(secs[:minIdx], secs[minIdx+1:]...)
	}
	return secs
}
