package formatter

import (
	"strings"

	"github.com/alexanderramin/cramit/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	return RenderAccentBox(title, content, ColorDim)
}

// RenderAccentBox is RenderBox with a custom border color.
func RenderAccentBox(title string, content string, border lipgloss.Color) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		inner := titleRendered + "\n\n" + content
		return boxStyle.Render(inner)
	}

	return boxStyle.Render(content)
}

// TabPill renders one subject tab. The active tab is filled with the
// subject color, inactive tabs are outlined text.
func TabPill(name string, c domain.Color, active bool) string {
	style := lipgloss.NewStyle().Padding(0, 1)
	if active {
		style = style.Bold(true).Foreground(ColorBg).Background(SubjectColor(c))
	} else {
		style = style.Foreground(ColorDim)
	}
	return style.Render(name)
}

// TabPillWidth is the rendered width of TabPill for name.
func TabPillWidth(name string) int {
	return lipgloss.Width(name) + 2
}

// Button renders a bracketed control label. Pressed controls are drawn
// inverted for the length of their press animation.
func Button(label string, pressed bool) string {
	if pressed {
		return lipgloss.NewStyle().Foreground(ColorBg).Background(ColorHeader).Render("[ " + label + " ]")
	}
	return StyleHeader.Render("[ " + label + " ]")
}

// Checkbox renders a toggle mark.
func Checkbox(on bool) string {
	if on {
		return StyleGreen.Render("[✔]")
	}
	return StyleDim.Render("[ ]")
}

// Streak renders the study streak badge.
func Streak(days int) string {
	if days <= 0 {
		return Dim("no streak yet")
	}
	unit := "days"
	if days == 1 {
		unit = "day"
	}
	return StyleYellow.Render("🔥 ") + Bold(itoa(days)) + Dim(" "+unit+" streak")
}
