package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/cramit/internal/cli/formatter"
	"github.com/alexanderramin/cramit/internal/domain"
	"github.com/alexanderramin/cramit/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// executeCmd runs a cobra command and captures stdout/stderr with the ANSI
// styling removed.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return formatter.StripANSI(buf.String()), err
}

func TestSubjectsCmd(t *testing.T) {
	env := testApp(t)
	out, err := executeCmd(t, env.app, "subjects")
	require.NoError(t, err)

	assert.Contains(t, out, "Physics")
	assert.Contains(t, out, "physics · 15 chapters")
	assert.Contains(t, out, "chemistry · 15 chapters")
	assert.Contains(t, out, "mathematics · 15 chapters")
}

func TestChaptersCmd(t *testing.T) {
	env := testApp(t)
	out, err := executeCmd(t, env.app, "chapters", "mathematics")
	require.NoError(t, err)

	assert.Contains(t, out, "01  Sets")
	assert.Contains(t, out, "15  Statistics")
}

func TestChaptersCmd_UnknownSubject(t *testing.T) {
	env := testApp(t)
	_, err := executeCmd(t, env.app, "chapters", "astronomy")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrSubjectNotFound))
}

func TestChaptersCmd_RequiresOneArg(t *testing.T) {
	env := testApp(t)
	_, err := executeCmd(t, env.app, "chapters")
	assert.Error(t, err)
}

func TestDecksCmd(t *testing.T) {
	env := testApp(t)

	out, err := executeCmd(t, env.app, "decks")
	require.NoError(t, err)
	assert.Contains(t, out, "Chemistry")
	assert.Contains(t, out, "Caught up")
	assert.Contains(t, out, "22 due")
	assert.NotContains(t, out, "decks match")

	out, err = executeCmd(t, env.app, "decks", "--query", "  PHYS ")
	require.NoError(t, err)
	assert.Contains(t, out, `1 of 4 decks match "PHYS"`)
}

func TestExploreCmd_NonInteractive(t *testing.T) {
	env := testApp(t)

	out, err := executeCmd(t, env.app, "explore")
	require.NoError(t, err)
	assert.Contains(t, out, "01  Units and Measurements")

	out, err = executeCmd(t, env.app, "explore", "--subject", "chemistry")
	require.NoError(t, err)
	assert.Contains(t, out, "01  Basic Concepts")

	out, err = executeCmd(t, env.app, "explore", "--subject", "biology")
	require.NoError(t, err)
	assert.Contains(t, out, "01  Units and Measurements", "unknown subjects fall back to the first")
}

func TestExploreCmd_DefaultSubjectFromConfig(t *testing.T) {
	env := testApp(t)
	env.app.Config.DefaultSubject = "mathematics"

	out, err := executeCmd(t, env.app, "explore")
	require.NoError(t, err)
	assert.Contains(t, out, "01  Sets")
}

func TestDashboardCmd_NonInteractive(t *testing.T) {
	env := testApp(t)
	out, err := executeCmd(t, env.app, "dashboard")
	require.NoError(t, err)

	assert.Contains(t, out, "12 days streak")
	assert.Contains(t, out, "RECOMMENDED")
	assert.Contains(t, out, "Physics · Electrostatics & Current", "the recommended subject shows its deck name")
	assert.NotContains(t, out, "physics · ")
	assert.Contains(t, out, "15 reviews · ~8m")
	assert.Contains(t, out, "Mathematics")
}

func TestRootCmd_SetupAndLogFileFlag(t *testing.T) {
	env := testApp(t)
	var seen string
	closed := 0
	env.app.Setup = func(app *App) (func() error, error) {
		seen = app.Config.LogFile
		return func() error { closed++; return nil }, nil
	}

	_, err := executeCmd(t, env.app, "--log-file", "/tmp/cramit.log", "subjects")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/cramit.log", seen)

	require.NoError(t, env.app.Close())
	require.NoError(t, env.app.Close())
	assert.Equal(t, 1, closed)
}

func TestRootCmd_SetupError(t *testing.T) {
	env := testApp(t)
	env.app.Setup = func(*App) (func() error, error) {
		return nil, errors.New("catalog unreadable")
	}

	_, err := executeCmd(t, env.app, "subjects")
	assert.EqualError(t, err, "catalog unreadable")
}

// fixedSearchDecks answers every search with one deck.
type fixedSearchDecks struct {
	service.DeckService
	hit string
}

func (f fixedSearchDecks) SearchDecks(ctx context.Context, _ string) ([]*domain.Deck, error) {
	d, err := f.GetDeck(ctx, f.hit)
	if err != nil {
		return nil, err
	}
	return []*domain.Deck{d}, nil
}

func TestDecksCmd_DimmingFollowsSearchDecks(t *testing.T) {
	env := testApp(t)
	env.app.Decks = fixedSearchDecks{DeckService: env.app.Decks, hit: "biology"}

	out, err := executeCmd(t, env.app, "decks", "--query", "zzz")
	require.NoError(t, err)
	assert.Contains(t, out, `1 of 4 decks match "zzz"`)
}
