package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/cramit/internal/domain"
	"github.com/alexanderramin/cramit/internal/repository"
)

type catalogService struct {
	subjects  repository.SubjectRepo
	subtopics repository.SubtopicRepo
}

func NewCatalogService(subjects repository.SubjectRepo, subtopics repository.SubtopicRepo) CatalogService {
	return &catalogService{subjects: subjects, subtopics: subtopics}
}

func (s *catalogService) ListSubjects(ctx context.Context) ([]*domain.Subject, error) {
	return s.subjects.List(ctx)
}

func (s *catalogService) GetSubject(ctx context.Context, id string) (*domain.Subject, error) {
	subject, err := s.subjects.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", domain.ErrSubjectNotFound, id)
	}
	return subject, err
}

func (s *catalogService) ListSubtopics(ctx context.Context) ([]string, error) {
	return s.subtopics.List(ctx)
}
