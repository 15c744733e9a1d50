// Package textutil provides unicode-aware text utilities for TUI rendering.
package textutil

import "github.com/mattn/go-runewidth"

// TruncateEllipsis is the unicode ellipsis character used for truncation.
const TruncateEllipsis = "…"

// Truncate shortens s to fit within maxWidth terminal columns, appending an
// ellipsis when anything was cut. Wide runes count as two columns.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}

	available := maxWidth - runewidth.StringWidth(TruncateEllipsis)
	if available <= 0 {
		return TruncateEllipsis
	}

	width := 0
	out := make([]rune, 0, len(s))
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if width+w > available {
			break
		}
		out = append(out, r)
		width += w
	}
	return string(out) + TruncateEllipsis
}
