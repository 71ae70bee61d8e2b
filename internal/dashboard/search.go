package dashboard

import (
	"strings"

	"github.com/alexanderramin/cramit/internal/domain"
)

// Action is the effect of a dashboard shortcut key.
type Action int

const (
	ActionNone Action = iota
	ActionFocusSearch
	ActionClearSearch
)

// ShortcutFor maps a key press to its shortcut. "s" focuses the search field
// only when it does not already have focus, so typing an "s" into the field
// is never swallowed. Esc always clears.
func ShortcutFor(key string, searchFocused bool) Action {
	switch key {
	case "s":
		if searchFocused {
			return ActionNone
		}
		return ActionFocusSearch
	case "esc":
		return ActionClearSearch
	}
	return ActionNone
}

// SetQuery stores the raw search input without filtering.
func (s *State) SetQuery(q string) { s.query = q }

// Query returns the raw search input.
func (s *State) Query() string { return s.query }

// AppliedQuery returns the normalized query of the last ApplyFilter.
func (s *State) AppliedQuery() string { return s.applied }

// ApplyFilter dims every card whose name does not contain the trimmed,
// lower-cased query. An empty query restores every card.
func (s *State) ApplyFilter(q string) {
	s.applied = strings.ToLower(strings.TrimSpace(q))
	for i, d := range s.decks {
		s.dimmed[i] = !domain.NameMatches(d.Name, s.applied)
	}
}

// FocusSearch gives the search field focus. It reports false when the field
// was already focused.
func (s *State) FocusSearch() bool {
	if s.searchFocused {
		return false
	}
	s.searchFocused = true
	return true
}

// BlurSearch drops search focus and keeps the query.
func (s *State) BlurSearch() { s.searchFocused = false }

// SearchFocused reports whether the search field has focus.
func (s *State) SearchFocused() bool { return s.searchFocused }

// ClearSearch empties the field, blurs it and resets the filter.
func (s *State) ClearSearch() {
	s.query = ""
	s.searchFocused = false
	s.ApplyFilter("")
}
