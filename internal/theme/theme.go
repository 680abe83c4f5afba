// Package theme defines the fixed color palette handed to every view.
package theme

import "github.com/charmbracelet/lipgloss"

// Palette holds the screen colors. Views receive it explicitly at
// construction; there is no global lookup and no runtime override.
type Palette struct {
	Background        lipgloss.Color
	CardBackground    lipgloss.Color
	SectionBackground lipgloss.Color
	Accent            lipgloss.Color
	Text              lipgloss.Color // body text on the light backgrounds
}

// Default returns the application palette.
func Default() Palette {
	return Palette{
		Background:        lipgloss.Color("#FFFFFF"),
		CardBackground:    lipgloss.Color("#FAFAFA"),
		SectionBackground: lipgloss.Color("#F1F1F1"),
		Accent:            lipgloss.Color("#2089DC"),
		Text:              lipgloss.Color("#222222"),
	}
}
