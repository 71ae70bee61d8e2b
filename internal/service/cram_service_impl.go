package service

import (
	"context"
	"strings"
	"time"

	"github.com/alexanderramin/cramit/internal/domain"
	"github.com/google/uuid"
)

type cramService struct {
	observer UseCaseObserver
	now      func() time.Time
}

func NewCramService(observers ...UseCaseObserver) CramService {
	return &cramService{
		observer: useCaseObserverOrNoop(observers),
		now:      time.Now,
	}
}

// Start validates the selection, stamps the request and records it.
func (s *cramService) Start(ctx context.Context, req *domain.CramRequest) (err error) {
	fields := map[string]any{
		"subject":   req.SubjectID,
		"chapter":   req.Chapter,
		"subtopics": strings.Join(req.Subtopics, ", "),
	}
	done := observe(ctx, s.observer, "start-cram", fields)
	defer func() { done(err) }()

	if err = domain.ValidateSelection(req.Subtopics); err != nil {
		return err
	}
	if req.ID == "" {
		req.ID = uuid.New().String()
	}
	if req.RequestedAt.IsZero() {
		req.RequestedAt = s.now().UTC()
	}
	fields["request_id"] = req.ID
	fields["subtopic_count"] = len(req.Subtopics)
	return nil
}
