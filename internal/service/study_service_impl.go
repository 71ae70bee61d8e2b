package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/cramit/internal/domain"
)

type studyService struct {
	decks    DeckService
	observer UseCaseObserver
}

func NewStudyService(decks DeckService, observers ...UseCaseObserver) StudyService {
	return &studyService{decks: decks, observer: useCaseObserverOrNoop(observers)}
}

func (s *studyService) OpenDeck(ctx context.Context, deckID string) (deck *domain.Deck, err error) {
	fields := map[string]any{"deck": deckID}
	done := observe(ctx, s.observer, "open-deck", fields)
	defer func() { done(err) }()

	deck, err = s.decks.GetDeck(ctx, deckID)
	if err != nil {
		return nil, err
	}
	fields["name"] = deck.Name
	return deck, nil
}

func (s *studyService) StartSession(ctx context.Context, deckID string) (deck *domain.Deck, err error) {
	fields := map[string]any{"deck": deckID}
	done := observe(ctx, s.observer, "start-session", fields)
	defer func() { done(err) }()

	deck, err = s.decks.GetDeck(ctx, deckID)
	if err != nil {
		return nil, err
	}
	fields["name"] = deck.Name
	fields["due"] = deck.Due
	return deck, nil
}

func (s *studyService) StartDailyMix(ctx context.Context) (err error) {
	fields := map[string]any{}
	done := observe(ctx, s.observer, "start-daily-mix", fields)
	defer func() { done(err) }()

	decks, err := s.decks.ListDecks(ctx)
	if err != nil {
		return err
	}
	due := 0
	for _, d := range decks {
		due += d.Due
	}
	fields["decks"] = len(decks)
	fields["due"] = due
	return nil
}

func (s *studyService) SwitchNav(ctx context.Context, navID string) (err error) {
	fields := map[string]any{"nav": navID}
	done := observe(ctx, s.observer, "switch-nav", fields)
	defer func() { done(err) }()

	for _, id := range domain.NavItems {
		if id == navID {
			return nil
		}
	}
	return fmt.Errorf("unknown navigation item %q", navID)
}
