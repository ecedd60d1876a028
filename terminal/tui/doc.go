// FILE: terminal/tui/doc.go
// Package tui provides immediate-mode drawing and layout primitives over a terminal.Buffer.
//
// Core abstractions:
//   - Rect: an area in buffer coordinates, produced fresh per render pass
//   - Region: a clipped drawing view onto a buffer, all drawing is relative to its origin
//   - Constraint: sizes the first half of a two-way split (Length, Percentage, Ratio, Fill)
//   - Widget: anything that renders itself into a Rect of a buffer
//
// Usage pattern:
//
//	buf := terminal.NewBuffer(w, h)
//	top, rest := tui.SplitArea(tui.NewRect(0, 0, w, h), tui.Vertical, tui.Length(1))
//	tui.NewParagraph("TITLE").Render(top, buf)
//	tui.Block{Line: tui.LineRounded, Title: "body"}.Render(rest, buf)
//	screen.Flush(buf)
//
// Nested layouts are built from widgets with the split package.
package tui
