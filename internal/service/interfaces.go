package service

import (
	"context"

	"github.com/alexanderramin/cramit/internal/domain"
)

type CatalogService interface {
	ListSubjects(ctx context.Context) ([]*domain.Subject, error)
	GetSubject(ctx context.Context, id string) (*domain.Subject, error)
	ListSubtopics(ctx context.Context) ([]string, error)
}

type DeckService interface {
	ListDecks(ctx context.Context) ([]*domain.Deck, error)
	GetDeck(ctx context.Context, id string) (*domain.Deck, error)
	SearchDecks(ctx context.Context, query string) ([]*domain.Deck, error)
}

type ProfileService interface {
	Get(ctx context.Context) (*domain.Profile, error)
}

// CramService is the boundary to the session runner. Sessions are only
// recorded in the log; nothing is scheduled.
type CramService interface {
	Start(ctx context.Context, req *domain.CramRequest) error
}

// StudyService records dashboard actions that would navigate elsewhere.
type StudyService interface {
	OpenDeck(ctx context.Context, deckID string) (*domain.Deck, error)
	StartSession(ctx context.Context, deckID string) (*domain.Deck, error)
	StartDailyMix(ctx context.Context) error
	SwitchNav(ctx context.Context, navID string) error
}
