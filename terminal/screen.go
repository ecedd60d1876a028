// @lixen: #focus{sys[term,io,screen]}
package terminal

import (
	"sync"

	"github.com/gdamore/tcell/v2"
)

// Screen presents buffers on a full-screen tcell display
// Only the event loop goroutine should call Flush; Fini is safe from anywhere
type Screen struct {
	screen    tcell.Screen
	colorMode ColorMode

	mu          sync.Mutex
	initialized bool
	finalized   bool
}

// NewScreen creates a screen on the controlling terminal
func NewScreen(colorMode ColorMode) (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewScreenFrom(s, colorMode), nil
}

// NewScreenFrom wraps an existing tcell screen, e.g. tcell.NewSimulationScreen
func NewScreenFrom(s tcell.Screen, colorMode ColorMode) *Screen {
	return &Screen{screen: s, colorMode: colorMode}
}

// Init enters the alternate screen and hides the cursor
func (s *Screen) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}
	if err := s.screen.Init(); err != nil {
		return err
	}
	s.screen.HideCursor()
	s.screen.Clear()
	s.initialized = true
	return nil
}

// Fini restores terminal state. Safe to call multiple times
func (s *Screen) Fini() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized || s.finalized {
		return
	}
	s.finalized = true
	s.screen.Fini()
}

// Size returns current screen dimensions
func (s *Screen) Size() (width, height int) {
	return s.screen.Size()
}

// Flush copies buf to the screen and shows it
// Cells outside the screen are dropped, tcell diffs against its own front buffer
func (s *Screen) Flush(buf *Buffer) {
	sw, sh := s.screen.Size()
	for y := 0; y < buf.H && y < sh; y++ {
		for x := 0; x < buf.W && x < sw; x++ {
			c, ok := buf.Visible(x, y)
			if !ok {
				continue
			}
			s.screen.SetContent(x, y, c.Rune, nil, StyleOf(c, s.colorMode))
		}
	}
	s.screen.Show()
}

// Sync forces full redraw
func (s *Screen) Sync() {
	s.screen.Sync()
}

// PollEvent blocks until next input event, nil after Fini
func (s *Screen) PollEvent() tcell.Event {
	return s.screen.PollEvent()
}

// PostEvent queues ev for PollEvent, safe from other goroutines
func (s *Screen) PostEvent(ev tcell.Event) error {
	return s.screen.PostEvent(ev)
}

// StyleOf maps cell colors and attributes to a tcell style
// Zero colors map to the terminal default
func StyleOf(c Cell, mode ColorMode) tcell.Style {
	st := tcell.StyleDefault
	if c.Attrs&AttrFg256 != 0 {
		st = st.Foreground(tcell.PaletteColor(int(c.Fg.R)))
	} else if !c.Fg.IsZero() {
		st = st.Foreground(colorOf(c.Fg, mode))
	}
	if c.Attrs&AttrBg256 != 0 {
		st = st.Background(tcell.PaletteColor(int(c.Bg.R)))
	} else if !c.Bg.IsZero() {
		st = st.Background(colorOf(c.Bg, mode))
	}

	a := c.Attrs
	return st.
		Bold(a&AttrBold != 0).
		Dim(a&AttrDim != 0).
		Italic(a&AttrItalic != 0).
		Underline(a&AttrUnderline != 0).
		Blink(a&AttrBlink != 0).
		Reverse(a&AttrReverse != 0)
}

func colorOf(c RGB, mode ColorMode) tcell.Color {
	if mode == ColorModeTrueColor {
		return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	}
	return tcell.PaletteColor(int(RGBTo256(c)))
}
