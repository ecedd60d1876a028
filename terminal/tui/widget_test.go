package tui

import (
	"testing"

	"github.com/lixenwraith/cellsplit/terminal"
)

func renderLines(w Widget, width, height int) []string {
	buf := terminal.NewBuffer(width, height)
	w.Render(NewRect(0, 0, width, height), buf)
	return buf.Lines()
}

func compareLines(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("Expected %d lines, got %d: %q", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Line %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestParagraph(t *testing.T) {
	tests := []struct {
		name string
		p    Paragraph
		want []string
	}{
		{
			name: "Clipped",
			p:    NewParagraph("Hello world"),
			want: []string{"Hello", "     "},
		},
		{
			name: "Multi line",
			p:    NewParagraph("ab\ncd\nef"),
			want: []string{"ab   ", "cd   "},
		},
		{
			name: "Wrapped",
			p:    Paragraph{Text: "Hello world", Wrap: true},
			want: []string{"Hello", "world"},
		},
		{
			name: "Centered",
			p:    Paragraph{Text: "a", Align: AlignCenter},
			want: []string{"  a  ", "     "},
		},
		{
			name: "Right",
			p:    Paragraph{Text: "ab", Align: AlignRight},
			want: []string{"   ab", "     "},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			compareLines(t, renderLines(tt.p, 5, 2), tt.want)
		})
	}
}

func TestParagraphStyle(t *testing.T) {
	buf := terminal.NewBuffer(3, 1)
	style := Style{Fg: terminal.RGB{R: 200}}.Bold()
	Paragraph{Text: "ab", Style: style}.Render(NewRect(0, 0, 3, 1), buf)

	c := buf.Get(1, 0)
	if c.Fg != style.Fg || c.Attrs != terminal.AttrBold {
		t.Errorf("Expected styled cell, got %+v", c)
	}
	if buf.Get(2, 0) != terminal.EmptyCell() {
		t.Errorf("Expected untouched trailing cell, got %+v", buf.Get(2, 0))
	}
}

func TestParagraphOffsetArea(t *testing.T) {
	buf := terminal.NewBuffer(6, 2)
	NewParagraph("Hi").Render(NewRect(3, 1, 3, 1), buf)

	compareLines(t, buf.Lines(), []string{"      ", "   Hi "})
}

func TestBlockWithTitleAndInner(t *testing.T) {
	b := Block{
		Line:  LineRounded,
		Title: "T",
		Inner: NewParagraph("xyz"),
	}

	compareLines(t, renderLines(b, 6, 3), []string{
		"╭ T ─╮",
		"│xyz │",
		"╰────╯",
	})
}

func TestBlockBackground(t *testing.T) {
	bg := terminal.RGB{G: 40}
	buf := terminal.NewBuffer(3, 3)
	Block{Line: LineSingle, Background: bg}.Render(NewRect(0, 0, 3, 3), buf)

	for i, c := range buf.Cells {
		if c.Bg != bg {
			t.Errorf("Cell %d: expected background %+v, got %+v", i, bg, c.Bg)
		}
	}
}

func TestFiller(t *testing.T) {
	compareLines(t, renderLines(Filler{Rune: '.'}, 3, 2), []string{"...", "..."})

	buf := terminal.NewBuffer(2, 1)
	Filler{}.Render(NewRect(0, 0, 1, 1), buf)
	if got := buf.Get(0, 0).Rune; got != ' ' {
		t.Errorf("Expected zero rune to fill with spaces, got %q", got)
	}
}

func TestWidgetFunc(t *testing.T) {
	var got Rect
	w := WidgetFunc(func(area Rect, _ *terminal.Buffer) { got = area })
	w.Render(NewRect(1, 2, 3, 4), terminal.NewBuffer(1, 1))

	if got != NewRect(1, 2, 3, 4) {
		t.Errorf("Expected area to be passed through, got %+v", got)
	}
}

func TestParseAlign(t *testing.T) {
	for name, want := range map[string]Align{"left": AlignLeft, "center": AlignCenter, "right": AlignRight} {
		got, ok := ParseAlign(name)
		if !ok || got != want {
			t.Errorf("ParseAlign(%q): expected %v, got %v (ok=%v)", name, want, got, ok)
		}
	}
	if _, ok := ParseAlign("justify"); ok {
		t.Error("Expected unknown alignment to fail")
	}
}

func TestParagraphOverWideRune(t *testing.T) {
	buf := terminal.NewBuffer(4, 1)
	NewParagraph("中中").Render(NewRect(0, 0, 4, 1), buf)
	NewParagraph("x").Render(NewRect(0, 0, 1, 1), buf)

	if got := buf.Lines()[0]; got != "x 中" {
		t.Errorf("Expected %q, got %q", "x 中", got)
	}
}
