package formatter

import "github.com/charmbracelet/x/ansi"

// StripANSI removes ANSI escape codes from s.
func StripANSI(s string) string {
	return ansi.Strip(s)
}
