package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// DisplayWidth returns the number of terminal columns s occupies
func DisplayWidth(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate truncates string with … suffix if it exceeds maxW columns
func Truncate(s string, maxW int) string {
	if maxW <= 0 {
		return ""
	}
	return runewidth.Truncate(s, maxW, "…")
}

// PadRight pads string with spaces to width columns
func PadRight(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// WrapText wraps text at word boundaries to fit width
// Returns slice of lines, each no wider than width unless a single cluster is wider
// Spaces at a break and at the start of a line are dropped
func WrapText(s string, width int) []string {
	if width <= 0 {
		return nil
	}

	var lines []string
	var line []string // grapheme clusters of the current line
	lineW := 0
	lastSpace := -1

	flush := func(clusters []string) {
		end := len(clusters)
		for end > 0 && clusters[end-1] == " " {
			end--
		}
		lines = append(lines, strings.Join(clusters[:end], ""))
	}
	measure := func() {
		lineW = 0
		for _, c := range line {
			lineW += runewidth.StringWidth(c)
		}
	}

	g := uniseg.NewGraphemes(s)
	for g.Next() {
		cluster := g.Str()
		w := runewidth.StringWidth(cluster)

		if cluster == " " {
			if len(line) == 0 {
				continue
			}
			if lineW+w > width {
				flush(line)
				line = line[:0]
				lineW = 0
				lastSpace = -1
				continue
			}
			lastSpace = len(line)
			line = append(line, cluster)
			lineW += w
			continue
		}

		if lineW+w > width && len(line) > 0 {
			if lastSpace >= 0 {
				flush(line[:lastSpace])
				line = append([]string(nil), line[lastSpace+1:]...)
				measure()
			}
			if lineW+w > width && len(line) > 0 {
				flush(line)
				line = line[:0]
				lineW = 0
			}
			lastSpace = -1
		}

		line = append(line, cluster)
		lineW += w
	}

	if len(line) > 0 || len(lines) == 0 {
		flush(line)
	}
	return lines
}
