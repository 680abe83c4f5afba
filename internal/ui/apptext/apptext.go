// Package apptext maps style tags to terminal text styling.
package apptext

import "github.com/charmbracelet/lipgloss"

// Tag names one styling trait. Tags compose left to right.
type Tag string

const (
	Bold  Tag = "bold"
	Grey  Tag = "grey"
	Small Tag = "small"
	Red   Tag = "red"
	White Tag = "white"
)

const (
	colorGrey  = lipgloss.Color("245")
	colorRed   = lipgloss.Color("196")
	colorWhite = lipgloss.Color("255")
)

// Style returns the combined style for tags. Unknown tags are ignored; when
// two tags set a color the later one wins.
func Style(tags ...Tag) lipgloss.Style {
	s := lipgloss.NewStyle()
	for _, t := range tags {
		switch t {
		case Bold:
			s = s.Bold(true)
		case Grey:
			s = s.Foreground(colorGrey)
		case Small:
			// Terminals have one font size; small text is rendered faint.
			s = s.Faint(true)
		case Red:
			s = s.Foreground(colorRed)
		case White:
			s = s.Foreground(colorWhite)
		}
	}
	return s
}

// Render styles text with tags.
func Render(text string, tags ...Tag) string {
	return Style(tags...).Render(text)
}
