// @lixen: #focus{sys[term,io,output]}
package terminal

import (
	"bufio"
	"io"
)

// Encoder writes buffers as ANSI text, one line per row
// Used for inline output where the screen is not taken over
type Encoder struct {
	writer    *bufio.Writer
	colorMode ColorMode

	// Style state for coalescing
	lastFg    RGB
	lastBg    RGB
	lastAttr  Attr
	lastValid bool
}

// NewEncoder creates an encoder writing to w
func NewEncoder(w io.Writer, colorMode ColorMode) *Encoder {
	return &Encoder{
		writer:    bufio.NewWriterSize(w, 16384),
		colorMode: colorMode,
	}
}

// Encode writes every row of buf followed by a newline and flushes
// Default-colored cells without attributes are written as plain runes
func (e *Encoder) Encode(buf *Buffer) error {
	w := e.writer
	for y := 0; y < buf.H; y++ {
		e.lastValid = false
		styled := false
		for x := 0; x < buf.W; x++ {
			c, ok := buf.Visible(x, y)
			if !ok {
				continue
			}
			if plainCell(c) {
				if styled {
					w.Write(csiSGR0)
					styled = false
					e.lastValid = false
				}
			} else {
				e.writeStyleCoalesced(w, c.Fg, c.Bg, c.Attrs)
				styled = true
			}

			r := c.Rune
			if r < 0x80 {
				w.WriteByte(byte(r))
			} else {
				w.WriteRune(r)
			}
		}
		if styled {
			w.Write(csiSGR0)
		}
		w.WriteByte('\n')
	}
	return w.Flush()
}

// plainCell reports whether a cell needs no SGR sequence
func plainCell(c Cell) bool {
	return c.Fg.IsZero() && c.Bg.IsZero() && c.Attrs&(AttrStyle|AttrFg256|AttrBg256) == 0
}

// writeStyleCoalesced emits a single combined SGR sequence when style changes
func (e *Encoder) writeStyleCoalesced(w *bufio.Writer, fg, bg RGB, attr Attr) {
	if e.lastValid && fg == e.lastFg && bg == e.lastBg && attr == e.lastAttr {
		return
	}

	// Full style after reset
	w.Write(csi)
	w.WriteByte('0')

	styleAttr := attr & AttrStyle
	for _, a := range [...]struct {
		bit  Attr
		code byte
	}{
		{AttrBold, '1'},
		{AttrDim, '2'},
		{AttrItalic, '3'},
		{AttrUnderline, '4'},
		{AttrBlink, '5'},
		{AttrReverse, '7'},
	} {
		if styleAttr&a.bit != 0 {
			w.WriteByte(';')
			w.WriteByte(a.code)
		}
	}

	if !fg.IsZero() || attr&AttrFg256 != 0 {
		e.writeFgInline(w, fg, attr)
	}
	if !bg.IsZero() || attr&AttrBg256 != 0 {
		e.writeBgInline(w, bg, attr)
	}
	w.WriteByte('m')

	e.lastFg = fg
	e.lastBg = bg
	e.lastAttr = attr
	e.lastValid = true
}

// writeFgInline writes fg color parameters (no CSI prefix, no 'm' suffix)
func (e *Encoder) writeFgInline(w *bufio.Writer, fg RGB, attr Attr) {
	w.WriteByte(';')
	if attr&AttrFg256 != 0 {
		w.Write(csiFg256[2:])
		writeInt(w, int(fg.R))
	} else if e.colorMode == ColorModeTrueColor {
		w.Write(csiFgRGB[2:])
		writeInt(w, int(fg.R))
		w.WriteByte(';')
		writeInt(w, int(fg.G))
		w.WriteByte(';')
		writeInt(w, int(fg.B))
	} else {
		w.Write(csiFg256[2:])
		writeInt(w, int(RGBTo256(fg)))
	}
}

// writeBgInline writes bg color parameters (no CSI prefix, no 'm' suffix)
func (e *Encoder) writeBgInline(w *bufio.Writer, bg RGB, attr Attr) {
	w.WriteByte(';')
	if attr&AttrBg256 != 0 {
		w.Write(csiBg256[2:])
		writeInt(w, int(bg.R))
	} else if e.colorMode == ColorModeTrueColor {
		w.Write(csiBgRGB[2:])
		writeInt(w, int(bg.R))
		w.WriteByte(';')
		writeInt(w, int(bg.G))
		w.WriteByte(';')
		writeInt(w, int(bg.B))
	} else {
		w.Write(csiBg256[2:])
		writeInt(w, int(RGBTo256(bg)))
	}
}
