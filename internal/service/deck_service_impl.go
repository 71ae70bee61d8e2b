package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/cramit/internal/domain"
	"github.com/alexanderramin/cramit/internal/repository"
)

type deckService struct {
	decks repository.DeckRepo
}

func NewDeckService(decks repository.DeckRepo) DeckService {
	return &deckService{decks: decks}
}

func (s *deckService) ListDecks(ctx context.Context) ([]*domain.Deck, error) {
	return s.decks.List(ctx)
}

func (s *deckService) GetDeck(ctx context.Context, id string) (*domain.Deck, error) {
	d, err := s.decks.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", domain.ErrDeckNotFound, id)
	}
	return d, err
}

// SearchDecks returns the decks whose name matches query, in catalog order.
func (s *deckService) SearchDecks(ctx context.Context, query string) ([]*domain.Deck, error) {
	decks, err := s.decks.List(ctx)
	if err != nil {
		return nil, err
	}
	matched := make([]*domain.Deck, 0, len(decks))
	for _, d := range decks {
		if domain.NameMatches(d.Name, query) {
			matched = append(matched, d)
		}
	}
	return matched, nil
}

type profileService struct {
	profiles repository.ProfileRepo
}

func NewProfileService(profiles repository.ProfileRepo) ProfileService {
	return &profileService{profiles: profiles}
}

func (s *profileService) Get(ctx context.Context) (*domain.Profile, error) {
	return s.profiles.Get(ctx)
}
