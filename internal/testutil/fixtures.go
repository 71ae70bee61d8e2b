package testutil

import (
	"fmt"

	"github.com/alexanderramin/cramit/internal/catalog"
	"github.com/alexanderramin/cramit/internal/domain"
)

// Subject options
type SubjectOption func(*domain.Subject)

func WithColor(c domain.Color) SubjectOption {
	return func(s *domain.Subject) {
		s.Color = c
	}
}

func WithChapters(names ...string) SubjectOption {
	return func(s *domain.Subject) {
		s.Chapters = names
	}
}

// NewTestSubject builds a subject with three numbered chapters by default.
func NewTestSubject(id, name string, opts ...SubjectOption) domain.Subject {
	s := domain.Subject{
		ID:    id,
		Name:  name,
		Color: domain.ColorPurple,
	}
	for i := 1; i <= 3; i++ {
		s.Chapters = append(s.Chapters, fmt.Sprintf("%s Chapter %d", name, i))
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// Deck options
type DeckOption func(*domain.Deck)

func WithDue(due int, status domain.DeckStatus) DeckOption {
	return func(d *domain.Deck) {
		d.Due = due
		d.Status = status
	}
}

func NewTestDeck(id, name string, opts ...DeckOption) domain.Deck {
	d := domain.Deck{
		ID:     id,
		Name:   name,
		Total:  50,
		Status: domain.DeckCaughtUp,
		Color:  domain.ColorTeal,
	}
	for _, opt := range opts {
		opt(&d)
	}
	return d
}

// NewTestCatalog assembles a catalog from the given subjects and decks with
// the default subtopic set.
func NewTestCatalog(subjects []domain.Subject, decks []domain.Deck) *catalog.Catalog {
	return &catalog.Catalog{
		Subjects:  subjects,
		Subtopics: append([]string(nil), domain.DefaultSubtopics...),
		Decks:     decks,
		Profile: domain.Profile{
			Streak: 3,
			Recommended: domain.Recommendation{
				SubjectID: "physics", Topic: "Optics", Reviews: 4, EstimatedTime: "~2m",
			},
		},
	}
}
