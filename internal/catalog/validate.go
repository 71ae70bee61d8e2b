package catalog

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/cramit/internal/domain"
)

// Validate checks structural invariants and returns all violations joined.
func (c *Catalog) Validate() error {
	var errs []error

	if len(c.Subjects) == 0 {
		errs = append(errs, errors.New("catalog has no subjects"))
	}

	seen := make(map[string]bool, len(c.Subjects))
	for i, s := range c.Subjects {
		switch {
		case s.ID == "":
			errs = append(errs, fmt.Errorf("subjects[%d]: id is required", i))
		case seen[s.ID]:
			errs = append(errs, fmt.Errorf("subjects[%d]: duplicate id %q", i, s.ID))
		}
		seen[s.ID] = true
		if s.Name == "" {
			errs = append(errs, fmt.Errorf("subjects[%d]: name is required", i))
		}
		if !domain.ValidColors[s.Color] {
			errs = append(errs, fmt.Errorf("subjects[%d]: unknown color %q", i, s.Color))
		}
		if len(s.Chapters) == 0 {
			errs = append(errs, fmt.Errorf("subjects[%d]: at least one chapter is required", i))
		}
		if len(s.Chapters) > 99 {
			errs = append(errs, fmt.Errorf("subjects[%d]: %d chapters exceed the two-digit index", i, len(s.Chapters)))
		}
	}

	deckIDs := make(map[string]bool, len(c.Decks))
	for i, d := range c.Decks {
		switch {
		case d.ID == "":
			errs = append(errs, fmt.Errorf("decks[%d]: id is required", i))
		case deckIDs[d.ID]:
			errs = append(errs, fmt.Errorf("decks[%d]: duplicate id %q", i, d.ID))
		}
		deckIDs[d.ID] = true
		if !domain.ValidDeckStatuses[d.Status] {
			errs = append(errs, fmt.Errorf("decks[%d]: unknown status %q", i, d.Status))
		}
		if !domain.ValidColors[d.Color] {
			errs = append(errs, fmt.Errorf("decks[%d]: unknown color %q", i, d.Color))
		}
		if d.Due < 0 || d.Total < 0 || d.Due > d.Total {
			errs = append(errs, fmt.Errorf("decks[%d]: due %d out of range for total %d", i, d.Due, d.Total))
		}
	}

	return errors.Join(errs...)
}

// Subject returns the subject with the given id.
func (c *Catalog) Subject(id string) (*domain.Subject, bool) {
	for i := range c.Subjects {
		if c.Subjects[i].ID == id {
			return &c.Subjects[i], true
		}
	}
	return nil, false
}
