// Package textutil provides unicode-aware width helpers for row layout.
package textutil

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Ellipsis marks truncated text.
const Ellipsis = "…"

// Width returns the number of terminal columns s occupies, ignoring ANSI
// escape sequences.
func Width(s string) int {
	return lipgloss.Width(s)
}

// Truncate shortens plain text s to at most maxWidth columns, ending in an
// ellipsis when anything was cut.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	if maxWidth <= runewidth.StringWidth(Ellipsis) {
		return Ellipsis
	}
	return runewidth.Truncate(s, maxWidth, Ellipsis)
}

// SpaceBetween lays out left and right on one line of width columns. When
// both do not fit, left is truncated; right is always kept. Inputs may be
// styled; truncation then applies to the plain left text passed in plainLeft.
func SpaceBetween(left, plainLeft, right string, width int) string {
	rw := Width(right)
	avail := width - rw - 1
	if Width(left) > avail {
		left = Truncate(plainLeft, avail)
	}
	gap := width - Width(left) - rw
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}
