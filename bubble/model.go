// Package bubble hosts a split layout inside a bubbletea program.
package bubble

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lixenwraith/cellsplit/split"
	"github.com/lixenwraith/cellsplit/terminal"
)

// Model renders Root at the current window size
type Model struct {
	Root split.Cell

	width    int
	height   int
	quitting bool
}

// New creates a model; the size arrives with the first WindowSizeMsg
func New(root split.Cell) Model {
	return Model{Root: root}
}

// WithSize sets the render size without waiting for a WindowSizeMsg
func (m Model) WithSize(w, h int) Model {
	m.width, m.height = w, h
	return m
}

// Size returns the current render size
func (m Model) Size() (int, int) {
	return m.width, m.height
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyRunes:
			if msg.String() == "q" {
				m.quitting = true
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting || m.width <= 0 || m.height <= 0 {
		return ""
	}
	buf := terminal.NewBuffer(m.width, m.height)
	split.Render(m.Root, buf)
	return RenderBuffer(buf)
}

// RenderBuffer converts a buffer to lines of lipgloss-styled text
// Adjacent cells with the same style share one styled run
func RenderBuffer(buf *terminal.Buffer) string {
	var sb strings.Builder
	var run strings.Builder

	for y := 0; y < buf.H; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}

		var cur terminal.Cell
		open := false
		flush := func() {
			if !open {
				return
			}
			sb.WriteString(renderRun(cur, run.String()))
			run.Reset()
			open = false
		}

		for x := 0; x < buf.W; x++ {
			c, ok := buf.Visible(x, y)
			if !ok {
				continue
			}
			if open && !sameStyle(cur, c) {
				flush()
			}
			if !open {
				cur = c
				open = true
			}
			run.WriteRune(c.Rune)
		}
		flush()
	}
	return sb.String()
}

func sameStyle(a, b terminal.Cell) bool {
	return a.Fg == b.Fg && a.Bg == b.Bg && a.Attrs == b.Attrs
}

func renderRun(c terminal.Cell, text string) string {
	if c.Fg.IsZero() && c.Bg.IsZero() && c.Attrs&terminal.AttrStyle == 0 {
		return text
	}
	return StyleOf(c).Render(text)
}

// StyleOf maps a cell's colors and attributes to a lipgloss style
// Zero colors are left unset so the terminal default shows through
func StyleOf(c terminal.Cell) lipgloss.Style {
	s := lipgloss.NewStyle()
	if !c.Fg.IsZero() {
		s = s.Foreground(colorOf(c.Fg, c.Attrs&terminal.AttrFg256 != 0))
	}
	if !c.Bg.IsZero() {
		s = s.Background(colorOf(c.Bg, c.Attrs&terminal.AttrBg256 != 0))
	}
	return s.
		Bold(c.Attrs&terminal.AttrBold != 0).
		Faint(c.Attrs&terminal.AttrDim != 0).
		Italic(c.Attrs&terminal.AttrItalic != 0).
		Underline(c.Attrs&terminal.AttrUnderline != 0).
		Blink(c.Attrs&terminal.AttrBlink != 0).
		Reverse(c.Attrs&terminal.AttrReverse != 0)
}

// colorOf uses R as the palette index when the cell carries a 256-color flag
func colorOf(c terminal.RGB, palette bool) lipgloss.Color {
	if palette {
		return lipgloss.Color(strconv.Itoa(int(c.R)))
	}
	return lipgloss.Color(c.Hex())
}
