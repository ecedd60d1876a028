package tui

import (
	"testing"

	"github.com/lixenwraith/cellsplit/terminal"
)

func TestStatusBar(t *testing.T) {
	sections := []BarSection{
		{Label: "mode ", Value: "rows", Priority: 2},
		{Value: "10x6", Priority: 0},
		{Label: "q ", Value: "quit", Priority: 1},
	}

	tests := []struct {
		name  string
		bar   StatusBar
		width int
		want  string
	}{
		{
			name:  "Left fits",
			bar:   StatusBar{Sections: sections, Separator: "|"},
			width: 24,
			want:  "mode rows|10x6|q quit   ",
		},
		{
			name:  "Right with padding",
			bar:   StatusBar{Sections: sections[:2], Separator: "|", Align: AlignRight, Padding: 1},
			width: 18,
			want:  "   mode rows|10x6 ",
		},
		{
			name:  "Drops lowest priority",
			bar:   StatusBar{Sections: sections, Separator: "|"},
			width: 17,
			want:  "mode rows|q quit ",
		},
		{
			name:  "Keeps last section clipped",
			bar:   StatusBar{Sections: sections, Separator: "|"},
			width: 6,
			want:  "mode r",
		},
		{
			name:  "Default separator",
			bar:   StatusBar{Sections: sections[1:2]},
			width: 5,
			want:  "10x6 ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := renderLines(tt.bar, tt.width, 1)
			if got[0] != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got[0])
			}
		})
	}
}

func TestStatusBarBackground(t *testing.T) {
	bg := terminal.RGB{R: 40, G: 50, B: 70}
	buf := terminal.NewBuffer(8, 2)
	StatusBar{Sections: []BarSection{{Value: "x"}}, Bg: bg}.Render(NewRect(0, 0, 8, 2), buf)

	for x := 0; x < 8; x++ {
		if buf.Get(x, 0).Bg != bg {
			t.Errorf("Cell %d: expected bar background, got %+v", x, buf.Get(x, 0).Bg)
		}
		if buf.Get(x, 1) != terminal.EmptyCell() {
			t.Errorf("Cell %d: expected second row untouched, got %+v", x, buf.Get(x, 1))
		}
	}
}
