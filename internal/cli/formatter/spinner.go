package formatter

import "github.com/charmbracelet/bubbles/spinner"

// NewSpinner returns the loading spinner shown on session controls.
func NewSpinner() spinner.Model {
	return spinner.New(
		spinner.WithSpinner(spinner.MiniDot),
		spinner.WithStyle(StylePurple),
	)
}
