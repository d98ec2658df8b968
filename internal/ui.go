package internal

import (
	"strings"
	"unicode"
)

// Package internal: UI helpers (exported)
//
// This file provides small, self-contained UI helpers for:
// - ANSI styling (Tokyo Night–inspired colors)
// - Token grid formatting for humans
//
// Color usage
// - Enable or disable color globally via SetColorEnabled(true/false).
// - Wrap text with Style("text", Bold, Blue) to apply codes when enabled.
// - When disabled, Style returns the input unchanged.
//
// Grid formatting
// - FormatGrid renders a grid as a column-aligned table; spaces inside
//   tokens are shown as (spc) so they survive a trip through paper.
// - StripSpaces normalizes a transported row string before parsing.

// --- ANSI color/style (Tokyo Night–inspired) ---

// Default: colors enabled. Override via SetColorEnabled.
var colorEnabled = true

// ANSI escape codes (exported)
const (
	Reset  = "\x1b[0m"
	Bold   = "\x1b[1m"
	Blue   = "\x1b[38;2;122;162;247m" // Tokyo Night blue
	Cyan   = "\x1b[38;2;42;195;222m"  // Tokyo Night cyan
	Purple = "\x1b[38;2;187;154;247m" // Tokyo Night purple
	Gray   = "\x1b[38;2;136;146;176m" // Dimmed foreground
	Red    = "\x1b[38;2;247;118;142m" // Tokyo Night red
)

// SetColorEnabled toggles ANSI styling on or off.
func SetColorEnabled(on bool) {
	colorEnabled = on
}

// ColorEnabled reports whether ANSI styling is currently enabled.
func ColorEnabled() bool {
	return colorEnabled
}

// Style wraps s with the provided ANSI codes when color is enabled.
// When disabled, returns s unchanged.
//
// Example:
//
//	Style("Hello", Bold, Blue)
func Style(s string, codes ...string) string {
	if !colorEnabled {
		return s
	}
	var b strings.Builder
	for _, c := range codes {
		b.WriteString(c)
	}
	b.WriteString(s)
	b.WriteString(Reset)
	return b.String()
}

// Banner returns the styled CLI header.
func Banner(version string) string {
	return Style("PaperCoder — Token Grid Coder - "+version, Bold, Purple)
}

// --- Grid formatting helpers ---

// FormatGrid renders the grid as a column-aligned table, one row per line,
// tokens separated by " | ". Space characters inside tokens are replaced
// with (spc) so they stay visible when the grid is copied by hand.
func FormatGrid(g *Grid) string {
	processed := make([][]string, g.NumRows())
	cols := 0
	for i := range processed {
		row := g.Row(i)
		cells := make([]string, len(row))
		for j, tok := range row {
			cells[j] = strings.ReplaceAll(tok, " ", "(spc)")
		}
		processed[i] = cells
		if len(cells) > cols {
			cols = len(cells)
		}
	}

	widths := make([]int, cols)
	for _, row := range processed {
		for j, cell := range row {
			if len(cell) > widths[j] {
				widths[j] = len(cell)
			}
		}
	}

	var b strings.Builder
	for i, row := range processed {
		if i > 0 {
			b.WriteByte('\n')
		}
		for j, cell := range row {
			if j > 0 {
				b.WriteString(" | ")
			}
			b.WriteString(cell)
			b.WriteString(strings.Repeat(" ", widths[j]-len(cell)))
		}
	}
	return b.String()
}

// StripSpaces removes all Unicode whitespace from a transported row string,
// so decoding accepts visually separated input (e.g., "ab cd ef").
func StripSpaces(s string) string {
	var buf []rune
	for _, r := range s {
		if !unicode.IsSpace(r) {
			buf = append(buf, r)
		}
	}
	return string(buf)
}
