package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/cramit/internal/domain"
)

// ErrNotFound is wrapped by every lookup that matches no row.
var ErrNotFound = errors.New("not found")

type SubjectRepo interface {
	Create(ctx context.Context, s *domain.Subject, order int) error
	GetByID(ctx context.Context, id string) (*domain.Subject, error)
	List(ctx context.Context) ([]*domain.Subject, error)
}

type SubtopicRepo interface {
	Replace(ctx context.Context, labels []string) error
	List(ctx context.Context) ([]string, error)
}

type DeckRepo interface {
	Create(ctx context.Context, d *domain.Deck, order int) error
	GetByID(ctx context.Context, id string) (*domain.Deck, error)
	List(ctx context.Context) ([]*domain.Deck, error)
}

type ProfileRepo interface {
	Get(ctx context.Context) (*domain.Profile, error)
	Upsert(ctx context.Context, p *domain.Profile) error
}
