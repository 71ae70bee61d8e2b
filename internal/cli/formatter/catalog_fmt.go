package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/cramit/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

func itoa(n int) string { return strconv.Itoa(n) }

// FormatSubjects renders the subject list for non-interactive output.
func FormatSubjects(subjects []domain.Subject) string {
	if len(subjects) == 0 {
		return Dim("No subjects in the catalog.") + "\n"
	}
	var b strings.Builder
	b.WriteString(Header("Subjects"))
	b.WriteString("\n")
	for _, s := range subjects {
		fmt.Fprintf(&b, "  %s  %s  %s\n",
			SubjectStyle(s.Color).Render("●"),
			lipgloss.NewStyle().Width(14).Render(Bold(s.Name)),
			Dim(fmt.Sprintf("%s · %d chapters", s.ID, len(s.Chapters))),
		)
	}
	return b.String()
}

// FormatChapters renders one subject's numbered chapter list.
func FormatChapters(s *domain.Subject) string {
	var b strings.Builder
	b.WriteString(Header(s.Name))
	b.WriteString("\n")
	for _, ch := range s.ChapterList() {
		fmt.Fprintf(&b, "  %s  %s\n", SubjectStyle(s.Color).Render(ch.Label()), ch.Name)
	}
	return b.String()
}

// DeckLine renders one deck card on a single line. Dimmed cards are drawn
// entirely in the muted color.
func DeckLine(d domain.Deck, dimmed bool) string {
	name := lipgloss.NewStyle().Width(14).Render(d.Name)
	counts := fmt.Sprintf("%3d due / %3d", d.Due, d.Total)
	if dimmed {
		return Dim("● " + name + "  " + counts + "  " + StripANSI(DeckStatusPill(d.Status, d.Due)))
	}
	return SubjectStyle(d.Color).Render("●") + " " + Bold(name) + "  " + Dim(counts) + "  " + DeckStatusPill(d.Status, d.Due)
}

// FormatDecks renders every deck. With a non-blank query, decks whose IDs
// are not in matched are dimmed.
func FormatDecks(decks []domain.Deck, matched map[string]bool, query string) string {
	if len(decks) == 0 {
		return Dim("No decks in the catalog.") + "\n"
	}
	query = strings.TrimSpace(query)

	var b strings.Builder
	b.WriteString(Header("Decks"))
	b.WriteString("\n")
	hits := 0
	for _, d := range decks {
		ok := query == "" || matched[d.ID]
		if ok {
			hits++
		}
		b.WriteString("  " + DeckLine(d, !ok) + "\n")
	}
	if query != "" {
		fmt.Fprintf(&b, "\n  %s\n", Dim(fmt.Sprintf("%d of %d decks match %q", hits, len(decks), query)))
	}
	return b.String()
}
