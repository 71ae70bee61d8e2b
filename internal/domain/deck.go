package domain

import "strings"

// DeckStatus classifies how urgently a deck needs review.
type DeckStatus string

const (
	DeckCaughtUp DeckStatus = "caught-up"
	DeckHasDue   DeckStatus = "has-due"
	DeckCritical DeckStatus = "critical"
)

// ValidDeckStatuses is the canonical set of accepted deck statuses.
var ValidDeckStatuses = map[DeckStatus]bool{
	DeckCaughtUp: true,
	DeckHasDue:   true,
	DeckCritical: true,
}

// Deck is a per-subject card deck shown on the dashboard.
type Deck struct {
	ID     string
	Name   string
	Total  int
	Due    int
	Status DeckStatus
	Color  Color
}

// Recommendation is the suggested next session shown on the dashboard hero card.
type Recommendation struct {
	SubjectID     string
	Topic         string
	Reviews       int
	EstimatedTime string
}

// Profile holds the per-user dashboard header data.
type Profile struct {
	Streak      int
	Recommended Recommendation
}

// NameMatches reports whether name contains query, ignoring case and
// surrounding whitespace in the query. An empty query matches every name.
func NameMatches(name, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(name), q)
}

// NavItems is the fixed set of dashboard navigation destinations.
var NavItems = []string{"home", "explore", "stats", "profile"}
