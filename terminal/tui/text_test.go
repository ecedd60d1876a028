package tui

import (
	"testing"
)

func TestWrapText(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  []string
	}{
		{name: "Fits", text: "hello", width: 10, want: []string{"hello"}},
		{name: "Word boundary", text: "hello world", width: 7, want: []string{"hello", "world"}},
		{name: "Space at edge", text: "hello world foo", width: 11, want: []string{"hello world", "foo"}},
		{name: "Long word breaks", text: "abcdefgh", width: 3, want: []string{"abc", "def", "gh"}},
		{name: "Wide runes", text: "世界世界", width: 5, want: []string{"世界", "世界"}},
		{name: "Empty", text: "", width: 4, want: []string{""}},
		{name: "Zero width", text: "abc", width: 0, want: nil},
		{name: "Leading space before wide runes", text: " 中中", width: 3, want: []string{"中", "中"}},
		{name: "Leading space", text: " abc", width: 3, want: []string{"abc"}},
		{name: "Space run at break", text: "ab  cd", width: 2, want: []string{"ab", "cd"}},
		{name: "Carried word refilled", text: "a bc中", width: 4, want: []string{"a", "bc中"}},
		{name: "Only spaces", text: "   ", width: 2, want: []string{""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WrapText(tt.text, tt.width)
			if len(got) != len(tt.want) {
				t.Fatalf("Expected %q, got %q", tt.want, got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Line %d: expected %q, got %q", i, tt.want[i], got[i])
				}
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		text string
		max  int
		want string
	}{
		{name: "Fits", text: "abc", max: 3, want: "abc"},
		{name: "Cut", text: "abcdef", max: 4, want: "abc…"},
		{name: "Zero", text: "abc", max: 0, want: ""},
		{name: "Wide", text: "世界世界", max: 5, want: "世界…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.text, tt.max); got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestDisplayWidthAndPad(t *testing.T) {
	if got := DisplayWidth("a世"); got != 3 {
		t.Errorf("Expected width 3, got %d", got)
	}
	if got := PadRight("a世", 5); got != "a世  " {
		t.Errorf("Expected %q, got %q", "a世  ", got)
	}
}
