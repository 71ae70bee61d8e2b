package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/cramit/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogService_ListSubjects(t *testing.T) {
	svc := newTestServices(t)

	subjects, err := svc.catalog.ListSubjects(context.Background())
	require.NoError(t, err)
	require.Len(t, subjects, 3)
	assert.Equal(t, "Physics", subjects[0].Name)
}

func TestCatalogService_GetSubject_Unknown(t *testing.T) {
	svc := newTestServices(t)

	_, err := svc.catalog.GetSubject(context.Background(), "history")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSubjectNotFound)
}

func TestCatalogService_ListSubtopics(t *testing.T) {
	svc := newTestServices(t)

	labels, err := svc.catalog.ListSubtopics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSubtopics, labels)
}

func TestDeckService_SearchDecks(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()

	got, err := svc.decks.SearchDecks(ctx, "phys")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Physics", got[0].Name)

	all, err := svc.decks.SearchDecks(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 4)

	none, err := svc.decks.SearchDecks(ctx, "history")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestDeckService_GetDeck_Unknown(t *testing.T) {
	svc := newTestServices(t)

	_, err := svc.decks.GetDeck(context.Background(), "history")
	assert.ErrorIs(t, err, domain.ErrDeckNotFound)
}

func TestProfileService_Get(t *testing.T) {
	svc := newTestServices(t)

	p, err := svc.profile.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 12, p.Streak)
	assert.Equal(t, 15, p.Recommended.Reviews)
}
