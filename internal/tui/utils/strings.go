package utils

import "github.com/mattn/go-runewidth"

const ellipsis = "…"

// TruncateString shortens s to at most width cells, marking the cut with an ellipsis.
func TruncateString(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, ellipsis)
}

// FitString truncates or right-pads s to exactly width cells.
func FitString(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.FillRight(TruncateString(s, width), width)
}
