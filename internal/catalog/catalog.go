// Package catalog loads the static study catalog: subjects with their
// chapters, the generic subtopic set, dashboard decks and the profile.
//
// The default catalog is embedded in the binary. An alternative YAML file
// with the same shape can replace it at startup.
package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/alexanderramin/cramit/internal/domain"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// Catalog is the fully parsed load-time data set.
type Catalog struct {
	Subjects  []domain.Subject
	Subtopics []string
	Decks     []domain.Deck
	Profile   domain.Profile
}

type fileSchema struct {
	Subtopics []string        `yaml:"subtopics"`
	Subjects  []subjectSchema `yaml:"subjects"`
	Decks     []deckSchema    `yaml:"decks"`
	Profile   profileSchema   `yaml:"profile"`
}

type subjectSchema struct {
	ID       string   `yaml:"id"`
	Name     string   `yaml:"name"`
	Color    string   `yaml:"color"`
	Chapters []string `yaml:"chapters"`
}

type deckSchema struct {
	ID     string `yaml:"id"`
	Name   string `yaml:"name"`
	Total  int    `yaml:"total"`
	Due    int    `yaml:"due"`
	Status string `yaml:"status"`
	Color  string `yaml:"color"`
}

type profileSchema struct {
	Streak      int `yaml:"streak"`
	Recommended struct {
		Subject       string `yaml:"subject"`
		Topic         string `yaml:"topic"`
		Reviews       int    `yaml:"reviews"`
		EstimatedTime string `yaml:"estimated_time"`
	} `yaml:"recommended"`
}

// Default returns the embedded catalog.
func Default() (*Catalog, error) {
	return Parse(defaultCatalog)
}

// Load reads a catalog from path, or returns the embedded catalog when path is empty.
func Load(path string) (*Catalog, error) {
	if strings.TrimSpace(path) == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates catalog YAML.
func Parse(data []byte) (*Catalog, error) {
	var raw fileSchema
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decoding catalog: %w", err)
	}

	cat := &Catalog{Subtopics: raw.Subtopics}
	if len(cat.Subtopics) == 0 {
		cat.Subtopics = append([]string(nil), domain.DefaultSubtopics...)
	}

	for _, s := range raw.Subjects {
		cat.Subjects = append(cat.Subjects, domain.Subject{
			ID:       s.ID,
			Name:     s.Name,
			Color:    domain.Color(s.Color),
			Chapters: s.Chapters,
		})
	}
	for _, d := range raw.Decks {
		cat.Decks = append(cat.Decks, domain.Deck{
			ID:     d.ID,
			Name:   d.Name,
			Total:  d.Total,
			Due:    d.Due,
			Status: domain.DeckStatus(d.Status),
			Color:  domain.Color(d.Color),
		})
	}
	cat.Profile = domain.Profile{
		Streak: raw.Profile.Streak,
		Recommended: domain.Recommendation{
			SubjectID:     raw.Profile.Recommended.Subject,
			Topic:         raw.Profile.Recommended.Topic,
			Reviews:       raw.Profile.Recommended.Reviews,
			EstimatedTime: raw.Profile.Recommended.EstimatedTime,
		},
	}

	if err := cat.Validate(); err != nil {
		return nil, err
	}
	return cat, nil
}
