// @focus: #sys { term }
// Package terminal provides the cell buffer that layouts render into and the
// outputs that present it.
//
// Features:
//   - Buffer: row-major grid of styled cells, the shared render surface
//   - Encoder: inline ANSI output with SGR coalescing, true color or 256-color
//   - Screen: full-screen presentation through tcell
//   - Color helpers: hex parsing, Lab blending, nearest 256-palette index
package terminal
