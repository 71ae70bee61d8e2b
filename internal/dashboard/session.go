package dashboard

import "github.com/alexanderramin/cramit/internal/domain"

// HeroDeck returns the deck behind the recommended session, when the
// recommendation names a known deck.
func (s *State) HeroDeck() (domain.Deck, bool) {
	if s.heroDeck == nil {
		return domain.Deck{}, false
	}
	return *s.heroDeck, true
}

func (s *State) idleSessionLabel() string {
	if s.heroDeck == nil {
		return "Start"
	}
	return "Start " + s.heroDeck.Name
}

// Session returns the hero start control.
func (s *State) Session() SessionControl { return s.session }

// PressSession starts the press animation of the start control. It reports
// false while a session is already loading.
func (s *State) PressSession() bool {
	if s.session.Loading {
		return false
	}
	s.session.Pressed = true
	return true
}

// BeginLoading ends the press and shows the loading label.
func (s *State) BeginLoading() {
	s.session.Pressed = false
	s.session.Loading = true
	s.session.Label = LoadingLabel
}

// EndLoading restores the idle label.
func (s *State) EndLoading() {
	s.session.Pressed = false
	s.session.Loading = false
	s.session.Label = s.idleSessionLabel()
}

// PressDailyMix starts the daily mix press animation.
func (s *State) PressDailyMix() { s.dailyMix = true }

// ReleaseDailyMix ends the daily mix press animation.
func (s *State) ReleaseDailyMix() { s.dailyMix = false }

// DailyMixPressed reports whether the daily mix control is pressed.
func (s *State) DailyMixPressed() bool { return s.dailyMix }

// SetHeroHovered records pointer hover over the hero card and reports
// whether it changed.
func (s *State) SetHeroHovered(on bool) bool {
	if s.heroHovered == on {
		return false
	}
	s.heroHovered = on
	return true
}

// HeroHovered reports whether the pointer is over the hero card.
func (s *State) HeroHovered() bool { return s.heroHovered }
