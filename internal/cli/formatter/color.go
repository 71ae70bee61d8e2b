package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/cramit/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorTeal   = lipgloss.Color("#689d6a")
	ColorCoral  = lipgloss.Color("#fe8019")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorBg     = lipgloss.Color("#282828")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// SubjectColor maps a catalog color tag to its palette color. Unknown tags
// fall back to the foreground color.
func SubjectColor(c domain.Color) lipgloss.Color {
	switch c {
	case domain.ColorPurple:
		return ColorPurple
	case domain.ColorTeal:
		return ColorTeal
	case domain.ColorCoral:
		return ColorCoral
	default:
		return ColorFg
	}
}

// SubjectStyle returns a foreground style in the subject's color.
func SubjectStyle(c domain.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(SubjectColor(c))
}

// DeckStatusPill returns a colored status indicator such as "● 22 due".
func DeckStatusPill(status domain.DeckStatus, due int) string {
	switch status {
	case domain.DeckCaughtUp:
		return StyleGreen.Render("✔ Caught up")
	case domain.DeckHasDue:
		return StyleYellow.Render(fmt.Sprintf("● %d due", due))
	case domain.DeckCritical:
		return StyleRed.Render(fmt.Sprintf("▲ %d due", due))
	default:
		return StyleDim.Render(string(status))
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
