package ui

import (
	"github.com/charmbracelet/lipgloss"

	"rosterview/internal/theme"
)

// Fixed terminal colors not covered by the palette.
const (
	ColorDanger = "196" // Red - errors
	ColorMuted  = "241" // Gray - hints, dimmed text
	ColorText   = "252" // Light gray - normal text
	ColorWhite  = "255"
)

// Styles contains the style definitions shared by the screen and its modal.
// Build it with NewStyles so every color comes from the palette.
type Styles struct {
	accent lipgloss.Color

	Screen        lipgloss.Style // Full-screen background
	Header        lipgloss.Style // Title bar ("Schedule", "Schedule Details")
	SectionHeader lipgloss.Style // Date header above each section
	Row           lipgloss.Style // Duty row card
	RowSelected   lipgloss.Style // Duty row under the cursor
	Cursor        lipgloss.Style // Cursor marker
	Icon          lipgloss.Style // Duty icon glyph
	Empty         lipgloss.Style // "No data found"
	Spinner       lipgloss.Style // Loading spinner
	Hint          lipgloss.Style // Help text
	HelpKey       lipgloss.Style // Key names in help bars

	BoxDanger    lipgloss.Style // Error panel
	TitleWarning lipgloss.Style // Error panel title
	Details      lipgloss.Style // Error details

	ModalBox    lipgloss.Style // Detail modal frame
	DetailLabel lipgloss.Style // Left column of detail rows
	DetailValue lipgloss.Style // Right column of detail rows
}

// NewStyles derives the screen styles from p.
func NewStyles(p theme.Palette) Styles {
	return Styles{
		accent: p.Accent,
		Screen: lipgloss.NewStyle().
			Foreground(p.Text).
			Background(p.Background),
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorWhite)).
			Background(p.Accent).
			Padding(0, 1),
		SectionHeader: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Text).
			Background(p.SectionBackground).
			Padding(0, 2),
		Row: lipgloss.NewStyle().
			Foreground(p.Text).
			Background(p.CardBackground),
		RowSelected: lipgloss.NewStyle().
			Background(p.CardBackground).
			Foreground(p.Accent),
		Cursor: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Accent),
		Icon: lipgloss.NewStyle().
			Foreground(p.Accent),
		Empty: lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorMuted)).
			Italic(true).
			Padding(1, 2),
		Spinner: lipgloss.NewStyle().
			Foreground(p.Accent),
		Hint: lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorMuted)),
		HelpKey: lipgloss.NewStyle().
			Foreground(p.Accent).
			Bold(true),
		BoxDanger: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(ColorDanger)).
			Padding(1, 2).
			Margin(1),
		TitleWarning: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorDanger)),
		Details: lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorText)),
		ModalBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Accent).
			Padding(0, 1),
		DetailLabel: lipgloss.NewStyle().
			Bold(true).
			Width(20),
		DetailValue: lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorText)),
	}
}
