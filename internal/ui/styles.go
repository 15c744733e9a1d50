package ui

import "github.com/charmbracelet/lipgloss"

// Theme colors used throughout the UI
const (
	ColorPrimary     = "#154FBF" // Brand blue - header band, captions, selected value
	ColorPlaceholder = "#719EC0" // Soft blue - placeholder text, card border
	ColorOnPrimary   = "#FFFFFF" // Text on the header band
	ColorText        = "252"     // Light gray - for normal text
	ColorMuted       = "241"     // Gray - for dimmed text, hints
	ColorCursor      = "#E8EEF9" // Pale blue - highlighted option row
)

// Styles contains the card's shared style definitions.
var Styles = struct {
	Card      lipgloss.Style // Rounded card frame
	Band      lipgloss.Style // Colored header band
	Specialty lipgloss.Style // Specialty line in the band
	Doctor    lipgloss.Style // Doctor name in the band
	Patient   lipgloss.Style // Patient name block
	InfoTitle lipgloss.Style // Summary line title
	InfoValue lipgloss.Style // Summary line value
	Icons     lipgloss.Style // Icon row
	Hint      lipgloss.Style // Help/hint text
}{
	Card: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorPlaceholder)).
		Padding(0, 2).
		Margin(1, 2),
	Band: lipgloss.NewStyle().
		Background(lipgloss.Color(ColorPrimary)).
		Foreground(lipgloss.Color(ColorOnPrimary)).
		Padding(0, 1).
		MarginBottom(1),
	Specialty: lipgloss.NewStyle().
		Bold(true),
	Doctor:    lipgloss.NewStyle(),
	Patient:   lipgloss.NewStyle().Bold(true),
	InfoTitle: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimary)),
	InfoValue: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorText)),
	Icons:     lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimary)).MarginBottom(1),
	Hint:      lipgloss.NewStyle().Foreground(lipgloss.Color(ColorMuted)),
}

// valueBase is shared by the header's placeholder and selected value; each
// only overrides the color.
var valueBase = lipgloss.NewStyle().Bold(false).Underline(false)

// PickerStyles contains the picker's style definitions.
var PickerStyles = struct {
	Caption      lipgloss.Style // Label above the header
	Header       lipgloss.Style // Bordered header row
	Placeholder  lipgloss.Style // Header text without a selection
	Value        lipgloss.Style // Header text with a selection
	Arrow        lipgloss.Style // Open/closed indicator
	Option       lipgloss.Style // Option row
	OptionCursor lipgloss.Style // Option row under the cursor
}{
	Caption: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorPrimary)).
		Bold(true).
		PaddingLeft(1),
	Header: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorPrimary)).
		Padding(0, 1),
	Placeholder: valueBase.Foreground(lipgloss.Color(ColorPlaceholder)),
	Value:       valueBase.Foreground(lipgloss.Color(ColorPrimary)),
	Arrow:       lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimary)),
	Option: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorPrimary)).
		Padding(0, 2),
	OptionCursor: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorPrimary)).
		Background(lipgloss.Color(ColorCursor)).
		Bold(true).
		Padding(0, 2),
}
