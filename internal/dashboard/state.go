// Package dashboard holds the dashboard controller: navigation, deck cards,
// the search filter, the hero session control and the pull gesture tracker.
// Timers, logging and dialogs belong to the terminal view.
package dashboard

import (
	"strings"

	"github.com/alexanderramin/cramit/internal/domain"
)

// Session control labels.
const (
	LoadingLabel = "Loading..."
)

// NavItem is one bottom navigation entry.
type NavItem struct {
	ID      string
	Label   string
	Active  bool
	Pressed bool
}

// DeckCard is the view-model of one deck card.
type DeckCard struct {
	Deck    domain.Deck
	Dimmed  bool
	Pressed bool
	Focused bool
}

// SessionControl is the hero card's start button.
type SessionControl struct {
	Label   string
	Loading bool
	Pressed bool
}

// State is the dashboard's UI state.
type State struct {
	nav        []string
	activeNav  int
	pressedNav int

	decks       []domain.Deck
	dimmed      []bool
	cursor      int
	pressedDeck string

	query         string
	applied       string
	searchFocused bool

	profile     domain.Profile
	heroDeck    *domain.Deck
	heroHovered bool
	session     SessionControl
	dailyMix    bool
}

// New builds the dashboard over decks and profile. The first navigation
// item starts active.
func New(decks []domain.Deck, profile domain.Profile) *State {
	s := &State{
		nav:        append([]string(nil), domain.NavItems...),
		pressedNav: -1,
		decks:      decks,
		dimmed:     make([]bool, len(decks)),
		profile:    profile,
	}
	for i := range decks {
		if decks[i].ID == profile.Recommended.SubjectID {
			s.heroDeck = &s.decks[i]
			break
		}
	}
	s.session.Label = s.idleSessionLabel()
	return s
}

// Profile returns the header profile.
func (s *State) Profile() domain.Profile { return s.profile }

// SelectNav makes id the only active navigation item and starts its press
// animation. Unknown ids are ignored.
func (s *State) SelectNav(id string) bool {
	for i, n := range s.nav {
		if n == id {
			s.activeNav = i
			s.pressedNav = i
			return true
		}
	}
	return false
}

// ReleaseNav ends the navigation press animation.
func (s *State) ReleaseNav() { s.pressedNav = -1 }

// Nav returns the navigation items in fixed order.
func (s *State) Nav() []NavItem {
	out := make([]NavItem, len(s.nav))
	for i, id := range s.nav {
		out[i] = NavItem{
			ID:      id,
			Label:   strings.ToUpper(id[:1]) + id[1:],
			Active:  i == s.activeNav,
			Pressed: i == s.pressedNav,
		}
	}
	return out
}

// ActiveNav returns the active navigation id.
func (s *State) ActiveNav() string { return s.nav[s.activeNav] }

// Deck looks up a deck by id.
func (s *State) Deck(id string) (domain.Deck, bool) {
	for _, d := range s.decks {
		if d.ID == id {
			return d, true
		}
	}
	return domain.Deck{}, false
}

// MoveCursor moves the deck cursor by delta, clamped.
func (s *State) MoveCursor(delta int) {
	if len(s.decks) == 0 {
		return
	}
	s.cursor = clamp(s.cursor+delta, 0, len(s.decks)-1)
}

// FocusedDeck returns the deck under the cursor.
func (s *State) FocusedDeck() (domain.Deck, bool) {
	if len(s.decks) == 0 {
		return domain.Deck{}, false
	}
	return s.decks[s.cursor], true
}

// PressDeck starts the press animation of deck id.
func (s *State) PressDeck(id string) bool {
	if _, ok := s.Deck(id); !ok {
		return false
	}
	s.pressedDeck = id
	return true
}

// ReleaseDeck ends the press animation of deck id. A release for a deck
// that is no longer pressed is ignored.
func (s *State) ReleaseDeck(id string) {
	if s.pressedDeck == id {
		s.pressedDeck = ""
	}
}

// Cards returns the deck cards in catalog order.
func (s *State) Cards() []DeckCard {
	out := make([]DeckCard, len(s.decks))
	for i, d := range s.decks {
		out[i] = DeckCard{
			Deck:    d,
			Dimmed:  s.dimmed[i],
			Pressed: d.ID == s.pressedDeck,
			Focused: i == s.cursor,
		}
	}
	return out
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
