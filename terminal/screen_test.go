package terminal

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func newSimScreen(t *testing.T, w, h int) (*Screen, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	s := NewScreenFrom(sim, ColorModeTrueColor)
	if err := s.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	sim.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s, sim
}

func TestScreenFlush(t *testing.T) {
	s, sim := newSimScreen(t, 5, 2)

	b := NewBufferFromLines("Hello", "Hi")
	green := RGB{G: 200}
	b.Set(0, 1, Cell{Rune: 'H', Fg: green, Attrs: AttrBold})
	s.Flush(b)

	for x, want := range "Hello" {
		r, _, _, _ := sim.GetContent(x, 0)
		if r != want {
			t.Errorf("Row 0 col %d: expected %q, got %q", x, want, r)
		}
	}

	r, _, st, _ := sim.GetContent(0, 1)
	if r != 'H' {
		t.Errorf("Expected 'H' at (0,1), got %q", r)
	}
	fg, _, attrs := st.Decompose()
	if fg != tcell.NewRGBColor(0, 200, 0) {
		t.Errorf("Expected green foreground, got %v", fg)
	}
	if attrs&tcell.AttrBold == 0 {
		t.Error("Expected bold attribute")
	}
}

func TestScreenFlushClipsToScreen(t *testing.T) {
	s, sim := newSimScreen(t, 2, 1)

	b := NewBufferFromLines("abcd", "efgh")
	s.Flush(b)

	r, _, _, _ := sim.GetContent(1, 0)
	if r != 'b' {
		t.Errorf("Expected 'b' at (1,0), got %q", r)
	}
	if w, h := s.Size(); w != 2 || h != 1 {
		t.Errorf("Expected 2x1 screen, got %dx%d", w, h)
	}
}

func TestStyleOfDefaults(t *testing.T) {
	st := StyleOf(EmptyCell(), ColorModeTrueColor)
	fg, bg, attrs := st.Decompose()
	if fg != tcell.ColorDefault || bg != tcell.ColorDefault {
		t.Errorf("Expected default colors for blank cell, got fg=%v bg=%v", fg, bg)
	}
	if attrs&(tcell.AttrBold|tcell.AttrReverse) != 0 {
		t.Errorf("Expected no attributes for blank cell, got %v", attrs)
	}

	st = StyleOf(Cell{Rune: 'x', Fg: RGB{R: 255}}, ColorMode256)
	fg, _, _ = st.Decompose()
	if fg != tcell.PaletteColor(196) {
		t.Errorf("Expected palette color 196, got %v", fg)
	}
}

func TestScreenFiniIdempotent(t *testing.T) {
	s, _ := newSimScreen(t, 1, 1)
	s.Fini()
	s.Fini()
}

func TestScreenPostEvent(t *testing.T) {
	s, _ := newSimScreen(t, 2, 2)
	if err := s.PostEvent(tcell.NewEventInterrupt("reload")); err != nil {
		t.Fatalf("PostEvent failed: %v", err)
	}

	// Resize events from Init may be queued ahead of the interrupt
	for i := 0; i < 8; i++ {
		if ev, ok := s.PollEvent().(*tcell.EventInterrupt); ok {
			if ev.Data() != "reload" {
				t.Errorf("Expected data %q, got %v", "reload", ev.Data())
			}
			return
		}
	}
	t.Error("Expected interrupt event")
}

func TestScreenFlushOrphanContinuation(t *testing.T) {
	s, sim := newSimScreen(t, 3, 1)
	s.Flush(NewBufferFromLines("abc"))

	b := NewBufferFromLines("abc")
	b.Set(1, 0, Cell{})
	s.Flush(b)

	if r, _, _, _ := sim.GetContent(1, 0); r != ' ' {
		t.Errorf("Expected stale 'b' replaced by a space, got %q", r)
	}
}
