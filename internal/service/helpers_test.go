package service

import (
	"context"
	"sync"
	"testing"

	"github.com/alexanderramin/cramit/internal/repository"
	"github.com/alexanderramin/cramit/internal/testutil"
)

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, e)
}

func (o *recordingObserver) last() UseCaseEvent {
	o.mu.Lock()
	defer o.mu.Unlock()
	if len(o.events) == 0 {
		return UseCaseEvent{}
	}
	return o.events[len(o.events)-1]
}

type testServices struct {
	catalog CatalogService
	decks   DeckService
	profile ProfileService
	study   StudyService
	cram    CramService
	obs     *recordingObserver
}

func newTestServices(t *testing.T) testServices {
	t.Helper()
	database := testutil.NewSeededDB(t, nil)
	obs := &recordingObserver{}
	decks := NewDeckService(repository.NewSQLiteDeckRepo(database))
	return testServices{
		catalog: NewCatalogService(repository.NewSQLiteSubjectRepo(database), repository.NewSQLiteSubtopicRepo(database)),
		decks:   decks,
		profile: NewProfileService(repository.NewSQLiteProfileRepo(database)),
		study:   NewStudyService(decks, obs),
		cram:    NewCramService(obs),
		obs:     obs,
	}
}
